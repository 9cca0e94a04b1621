package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// CompanyUseCase reglas de negocio de la empresa del EMPLOYER autenticado.
type CompanyUseCase struct {
	companies repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(companies repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

// Me devuelve la empresa del usuario; nil cuando no tiene.
func (uc *CompanyUseCase) Me(ctx context.Context, userID int64) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return companyToResponse(company), nil
}

// Update aplica los campos presentes del patch (strings recortados).
// Patch vacío es domain.ErrInvalidInput.
func (uc *CompanyUseCase) Update(ctx context.Context, userID int64, in dto.UpdateCompanyRequest) error {
	patch := repository.CompanyPatch{
		Name:     trimmed(in.Name),
		NIT:      trimmed(in.NIT),
		Website:  trimmed(in.Website),
		Location: trimmed(in.Location),
	}
	if patch.IsEmpty() {
		return domain.ErrInvalidInput
	}
	return uc.companies.Update(ctx, userID, patch)
}

// SetLogo guarda la URL pública del logo ya subido.
func (uc *CompanyUseCase) SetLogo(ctx context.Context, userID int64, url string) error {
	return uc.companies.SetLogoURL(ctx, userID, url)
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:       c.ID,
		UserID:   c.UserID,
		Name:     c.Name,
		NIT:      c.NIT,
		Website:  c.Website,
		Location: c.Location,
		LogoURL:  c.LogoURL,
	}
}

// trimmed recorta el valor si vino; nil se queda nil (campo no enviado).
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
