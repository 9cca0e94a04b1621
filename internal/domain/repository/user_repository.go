package repository

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

// UserProfilePatch campos opcionales de una actualización parcial de perfil.
// Un puntero nil significa "no tocar el campo".
type UserProfilePatch struct {
	Name  *string
	Phone *string
	Bio   *string
}

// IsEmpty informa si el patch no trae ningún campo.
func (p UserProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Bio == nil
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id int64, patch UserProfilePatch) error
	SetResumeURL(ctx context.Context, id int64, url string) error
	// SetCVURL actualiza cv_url; nil lo deja en NULL (quitar CV).
	SetCVURL(ctx context.Context, id int64, url *string) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}
