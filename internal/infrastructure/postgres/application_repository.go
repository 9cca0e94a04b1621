package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	q Querier
}

// NewApplicationRepository construye el adaptador de persistencia para postulaciones.
func NewApplicationRepository(q Querier) *ApplicationRepo {
	return &ApplicationRepo{q: q}
}

// Create inserta la postulación y devuelve su id. La constraint única
// (job_id, user_id) es la fuente de verdad: 23505 -> domain.ErrAlreadyApplied.
func (r *ApplicationRepo) Create(ctx context.Context, jobID, userID int64) (int64, error) {
	query := `
		INSERT INTO applications (job_id, user_id)
		VALUES ($1, $2)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, jobID, userID).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyApplied
		}
		return 0, fmt.Errorf("insert application: %w", err)
	}
	return id, nil
}

// ExistsByJobAndUser pre-check de duplicado (solo optimización de mensaje).
func (r *ApplicationRepo) ExistsByJobAndUser(ctx context.Context, jobID, userID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`,
		jobID, userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists application: %w", err)
	}
	return exists, nil
}

// ListByUser devuelve las postulaciones del usuario con datos del empleo.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.ApplicationSummary, error) {
	query := `
		SELECT a.id, a.job_id, j.title, c.name, a.created_at
		  FROM applications a
		  JOIN jobs j ON j.id = a.job_id
		  JOIN companies c ON c.id = j.company_id
		 WHERE a.user_id = $1
		 ORDER BY a.created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.ApplicationSummary
	for rows.Next() {
		var a entity.ApplicationSummary
		if err := rows.Scan(&a.ID, &a.JobID, &a.Title, &a.CompanyName, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
