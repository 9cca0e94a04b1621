package usecase

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// AdminUseCase superficie mínima de moderación (solo ADMIN): listar cuentas y
// empleos, y bajar publicaciones sin pasar por la cadena de propiedad.
type AdminUseCase struct {
	users repository.UserRepository
	jobs  repository.JobRepository
}

// NewAdminUseCase construye el caso de uso con los puertos de persistencia.
func NewAdminUseCase(users repository.UserRepository, jobs repository.JobRepository) *AdminUseCase {
	return &AdminUseCase{users: users, jobs: jobs}
}

// ListUsers usuarios paginados, más reciente primero.
func (uc *AdminUseCase) ListUsers(ctx context.Context, limit, offset int) (*dto.AdminUserListResponse, error) {
	list, err := uc.users.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.AdminUserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return &dto.AdminUserListResponse{
		Users:      out,
		Pagination: dto.PageResponse{Limit: limit, Offset: offset, Count: len(out)},
	}, nil
}

// ListJobs empleos paginados con datos de la empresa.
func (uc *AdminUseCase) ListJobs(ctx context.Context, limit, offset int) (*dto.AdminJobListResponse, error) {
	listings, err := uc.jobs.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	jobs := listingsToResponses(listings)
	return &dto.AdminJobListResponse{
		Jobs:       jobs,
		Pagination: dto.PageResponse{Limit: limit, Offset: offset, Count: len(jobs)},
	}, nil
}

// DeleteJob baja un empleo por moderación (ErrNotFound si no existe).
func (uc *AdminUseCase) DeleteJob(ctx context.Context, jobID int64) error {
	return uc.jobs.Delete(ctx, jobID)
}
