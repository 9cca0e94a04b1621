package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// ApplicationRepository define el puerto de persistencia para Application.
type ApplicationRepository interface {
	// Create inserta la postulación. Devuelve domain.ErrAlreadyApplied si la
	// constraint única (job_id, user_id) la rechaza.
	Create(ctx context.Context, jobID, userID int64) (int64, error)
	ExistsByJobAndUser(ctx context.Context, jobID, userID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.ApplicationSummary, error)
}
