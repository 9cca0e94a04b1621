package usecase

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ApplicationUseCase postulaciones: absent → applied, y applied es terminal.
type ApplicationUseCase struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

// NewApplicationUseCase construye el caso de uso con los puertos de persistencia.
func NewApplicationUseCase(applications repository.ApplicationRepository, jobs repository.JobRepository) *ApplicationUseCase {
	return &ApplicationUseCase{applications: applications, jobs: jobs}
}

// Apply registra la postulación del usuario al empleo. El empleo debe existir
// (ErrInvalidInput si no); el duplicado devuelve ErrAlreadyApplied. El
// pre-check es solo cortesía: ante una carrera, la constraint única decide y
// exactamente una de las dos peticiones gana.
func (uc *ApplicationUseCase) Apply(ctx context.Context, userID, jobID int64) (int64, error) {
	if jobID <= 0 {
		return 0, domain.ErrInvalidInput
	}
	exists, err := uc.jobs.Exists(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domain.ErrInvalidInput
	}
	applied, err := uc.applications.ExistsByJobAndUser(ctx, jobID, userID)
	if err != nil {
		return 0, err
	}
	if applied {
		return 0, domain.ErrAlreadyApplied
	}
	return uc.applications.Create(ctx, jobID, userID)
}

// Mine devuelve las postulaciones del usuario con datos del empleo.
func (uc *ApplicationUseCase) Mine(ctx context.Context, userID int64) (*dto.ApplicationListResponse, error) {
	list, err := uc.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.ApplicationResponse{
			ID:        a.ID,
			JobID:     a.JobID,
			Title:     a.Title,
			Company:   a.CompanyName,
			CreatedAt: a.CreatedAt,
		})
	}
	return &dto.ApplicationListResponse{Applications: out}, nil
}
