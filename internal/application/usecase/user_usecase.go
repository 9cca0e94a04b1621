package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// UserUseCase reglas de negocio del perfil del usuario autenticado.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Me devuelve los datos básicos del usuario; nil cuando no existe.
func (uc *UserUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		ResumeURL: user.ResumeURL,
	}, nil
}

// UpdateName actualiza solo el nombre (PATCH /users/me).
func (uc *UserUseCase) UpdateName(ctx context.Context, userID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.users.UpdateProfile(ctx, userID, repository.UserProfilePatch{Name: &name})
}

// Profile devuelve el perfil extendido del candidato; nil cuando no existe.
func (uc *UserUseCase) Profile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Phone: user.Phone,
		Bio:   user.Bio,
		CVURL: user.CVURL,
	}, nil
}

// UpdateProfile aplica los campos presentes (name/phone/bio). Patch vacío es
// domain.ErrInvalidInput; name enviado pero vacío también.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID int64, in dto.UpdateProfileRequest) error {
	patch := repository.UserProfilePatch{
		Name:  trimmed(in.Name),
		Phone: trimmed(in.Phone),
		Bio:   in.Bio, // bio conserva espacios del usuario
	}
	if patch.IsEmpty() {
		return domain.ErrInvalidInput
	}
	if patch.Name != nil && *patch.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.users.UpdateProfile(ctx, userID, patch)
}

// SetResume guarda la URL pública de la hoja de vida ya subida.
func (uc *UserUseCase) SetResume(ctx context.Context, userID int64, url string) error {
	return uc.users.SetResumeURL(ctx, userID, url)
}

// SetCV guarda la URL pública del CV ya subido.
func (uc *UserUseCase) SetCV(ctx context.Context, userID int64, url string) error {
	return uc.users.SetCVURL(ctx, userID, &url)
}

// ClearCV deja cv_url en NULL (quitar CV).
func (uc *UserUseCase) ClearCV(ctx context.Context, userID int64) error {
	return uc.users.SetCVURL(ctx, userID, nil)
}
