package usecase

import (
	"context"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// JobUseCase reglas de negocio de empleos. Toda mutación pasa por la cadena
// de propiedad Job→Company→User antes de tocar la fila.
type JobUseCase struct {
	jobs      repository.JobRepository
	companies repository.CompanyRepository
}

// NewJobUseCase construye el caso de uso con los puertos de persistencia.
func NewJobUseCase(jobs repository.JobRepository, companies repository.CompanyRepository) *JobUseCase {
	return &JobUseCase{jobs: jobs, companies: companies}
}

// Create publica un empleo para la empresa del EMPLOYER. Devuelve
// domain.ErrNoCompany si el usuario no tiene empresa asociada.
func (uc *JobUseCase) Create(ctx context.Context, userID int64, title, description string, salary *decimal.Decimal) (*dto.JobResponse, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companies.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNoCompany
	}
	job := &entity.Job{
		CompanyID:   company.ID,
		Title:       title,
		Description: description,
		Salary:      salary,
	}
	id, err := uc.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	return &dto.JobResponse{
		ID:          id,
		Title:       title,
		Description: description,
		Salary:      salary,
	}, nil
}

// List listado público paginado con datos de la empresa.
func (uc *JobUseCase) List(ctx context.Context, limit, offset int) ([]dto.JobResponse, error) {
	listings, err := uc.jobs.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return listingsToResponses(listings), nil
}

// Search búsqueda pública. El término se normaliza (sin tildes) para que
// "ingeniería" e "ingenieria" encuentren lo mismo.
func (uc *JobUseCase) Search(ctx context.Context, q string, limit, offset int) (*dto.SearchJobsResponse, error) {
	listings, err := uc.jobs.Search(ctx, normalizeSearchTerm(q), limit, offset)
	if err != nil {
		return nil, err
	}
	jobs := listingsToResponses(listings)
	return &dto.SearchJobsResponse{
		Jobs:       jobs,
		Pagination: dto.PageResponse{Limit: limit, Offset: offset, Count: len(jobs)},
	}, nil
}

// GetByID detalle público; nil cuando no existe.
func (uc *JobUseCase) GetByID(ctx context.Context, id int64) (*dto.JobResponse, error) {
	listing, err := uc.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, nil
	}
	resp := listingToResponse(listing)
	return &resp, nil
}

// Mine empleos publicados por la empresa del usuario.
func (uc *JobUseCase) Mine(ctx context.Context, userID int64) (*dto.JobListResponse, error) {
	jobs, err := uc.jobs.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, dto.JobResponse{
			ID:          j.ID,
			Title:       j.Title,
			Description: j.Description,
			Salary:      j.Salary,
			CreatedAt:   j.CreatedAt,
		})
	}
	return &dto.JobListResponse{Jobs: out}, nil
}

// Update reemplazo completo (PUT), solo por el dueño.
func (uc *JobUseCase) Update(ctx context.Context, userID, jobID int64, title, description string, salary *decimal.Decimal) error {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return domain.ErrInvalidInput
	}
	if _, err := uc.resolveOwned(ctx, jobID, userID); err != nil {
		return err
	}
	return uc.jobs.Update(ctx, jobID, repository.JobPatch{
		Title:       &title,
		Description: &description,
		Salary:      salary,
		SalarySet:   true,
	})
}

// Patch actualización parcial (PATCH), solo por el dueño. Patch vacío es
// domain.ErrInvalidInput.
func (uc *JobUseCase) Patch(ctx context.Context, userID, jobID int64, patch repository.JobPatch) error {
	if patch.IsEmpty() {
		return domain.ErrInvalidInput
	}
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return domain.ErrInvalidInput
		}
		patch.Title = &t
	}
	if patch.Description != nil {
		d := strings.TrimSpace(*patch.Description)
		if d == "" {
			return domain.ErrInvalidInput
		}
		patch.Description = &d
	}
	if _, err := uc.resolveOwned(ctx, jobID, userID); err != nil {
		return err
	}
	return uc.jobs.Update(ctx, jobID, patch)
}

// Delete elimina un empleo, solo por el dueño.
func (uc *JobUseCase) Delete(ctx context.Context, userID, jobID int64) error {
	if _, err := uc.resolveOwned(ctx, jobID, userID); err != nil {
		return err
	}
	return uc.jobs.Delete(ctx, jobID)
}

// resolveOwned centraliza la verificación de propiedad para PUT/PATCH/DELETE:
// un solo join decide, sin copias por endpoint que puedan divergir.
// Devuelve ErrNotFound si el empleo no existe y ErrForbidden si existe pero
// pertenece a otra empresa.
func (uc *JobUseCase) resolveOwned(ctx context.Context, jobID, userID int64) (*entity.Job, error) {
	job, err := uc.jobs.ResolveOwned(ctx, jobID, userID)
	if err != nil {
		return nil, err
	}
	if job != nil {
		return job, nil
	}
	exists, err := uc.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrForbidden
}

func listingToResponse(l *entity.JobListing) dto.JobResponse {
	return dto.JobResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Salary:      l.Salary,
		CreatedAt:   l.CreatedAt,
		CompanyID:   l.CompanyID,
		Company:     l.CompanyName,
		Location:    l.Location,
		Logo:        l.LogoURL,
		Website:     l.Website,
	}
}

func listingsToResponses(listings []*entity.JobListing) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, listingToResponse(l))
	}
	return out
}

// normalizeSearchTerm recorta y elimina marcas diacríticas (NFD → quitar Mn → NFC).
func normalizeSearchTerm(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return q
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, q)
	if err != nil {
		return q
	}
	return normalized
}
