package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// JobPatch campos opcionales de una actualización parcial de empleo.
// SalarySet distingue "salary no enviado" de "salary enviado como null".
type JobPatch struct {
	Title       *string
	Description *string
	Salary      *decimal.Decimal
	SalarySet   bool
}

// IsEmpty informa si el patch no trae ningún campo.
func (p JobPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && !p.SalarySet
}

// JobRepository define el puerto de persistencia para Job.
type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.JobListing, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*entity.JobListing, error)
	// Search busca por título, descripción o nombre de empresa. El término
	// llega ya normalizado (sin tildes); el SQL aplica unaccent a las columnas.
	Search(ctx context.Context, q string, limit, offset int) ([]*entity.JobListing, error)
	ListByOwner(ctx context.Context, userID int64) ([]*entity.Job, error)
	// ResolveOwned devuelve el empleo solo si el join Job→Company→User
	// confirma que userID es el dueño; nil cuando el join no produce fila.
	ResolveOwned(ctx context.Context, jobID, userID int64) (*entity.Job, error)
	Update(ctx context.Context, id int64, patch JobPatch) error
	Delete(ctx context.Context, id int64) error
}
