package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// CompanyPatch campos opcionales de una actualización parcial de empresa.
type CompanyPatch struct {
	Name     *string
	NIT      *string
	Website  *string
	Location *string
}

// IsEmpty informa si el patch no trae ningún campo.
func (p CompanyPatch) IsEmpty() bool {
	return p.Name == nil && p.NIT == nil && p.Website == nil && p.Location == nil
}

// CompanyRepository define el puerto de persistencia para Company.
// Las operaciones de mutación van por user_id: la empresa es 1:1 con su dueño.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) (int64, error)
	GetByUserID(ctx context.Context, userID int64) (*entity.Company, error)
	Update(ctx context.Context, userID int64, patch CompanyPatch) error
	SetLogoURL(ctx context.Context, userID int64, url string) error
}
