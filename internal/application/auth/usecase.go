package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// TxRunner puerto de transacciones para el registro compuesto de empresa
// (insert User + insert Company, todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		users repository.UserRepository,
		companies repository.CompanyRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticación: registro, login y registro de empresa.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	tx        TxRunner
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, companies repository.CompanyRepository, tx TxRunner) *AuthUseCase {
	return &AuthUseCase{users: users, companies: companies, tx: tx}
}

// RegisterUser crea un candidato (rol USER): hashea el password con bcrypt y
// persiste. El pre-check de email es cortesía; la constraint única decide.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.SessionUserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}
	id, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.SessionUserResponse{ID: id, Name: name, Role: entity.RoleUser}, nil
}

// Login verifica email/password y devuelve la identidad para la sesión.
// Email inexistente y password incorrecto responden igual (sin filtrar cuál).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionUserResponse, error) {
	user, err := uc.users.GetByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.SessionUserResponse{ID: user.ID, Name: user.Name, Role: user.Role}, nil
}

// RegisterCompany crea el usuario EMPLOYER y su empresa en una sola
// transacción. El logo (si vino) ya fue validado y escrito a disco antes.
func (uc *AuthUseCase) RegisterCompany(ctx context.Context, in dto.RegisterCompanyInput) (*dto.SessionUserResponse, error) {
	email := strings.TrimSpace(in.Email)
	companyName := strings.TrimSpace(in.CompanyName)
	repName := strings.TrimSpace(in.Name)
	if repName == "" {
		repName = companyName
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var userID int64
	err = uc.tx.Run(ctx, func(users repository.UserRepository, companies repository.CompanyRepository) error {
		user := &entity.User{
			Name:         repName,
			Email:        email,
			PasswordHash: string(hash),
			Role:         entity.RoleEmployer,
		}
		id, err := users.Create(ctx, user)
		if err != nil {
			return err
		}
		userID = id

		company := &entity.Company{
			UserID:   id,
			Name:     companyName,
			NIT:      nilIfEmpty(in.CompanyNIT),
			Website:  nilIfEmpty(in.CompanyWebsite),
			Location: nilIfEmpty(in.CompanyLocation),
			LogoURL:  in.LogoURL,
		}
		_, err = companies.Create(ctx, company)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.SessionUserResponse{ID: userID, Name: repName, Role: entity.RoleEmployer}, nil
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
