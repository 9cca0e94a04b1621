package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	nextID  int64
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) (int64, error) {
	if _, ok := f.byEmail[user.Email]; ok {
		return 0, domain.ErrEmailAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id int64, patch repository.UserProfilePatch) error {
	return nil
}

func (f *fakeUserRepo) SetResumeURL(_ context.Context, id int64, url string) error { return nil }

func (f *fakeUserRepo) SetCVURL(_ context.Context, id int64, url *string) error { return nil }

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	byUserID map[int64]*entity.Company
	failOn   string // nombre de empresa que fuerza error (simula fallo en tx)
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byUserID: make(map[int64]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) (int64, error) {
	if company.Name == f.failOn {
		return 0, assert.AnError
	}
	company.ID = int64(len(f.byUserID) + 1)
	f.byUserID[company.UserID] = company
	return company.ID, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID int64) (*entity.Company, error) {
	return f.byUserID[userID], nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, userID int64, patch repository.CompanyPatch) error {
	return nil
}

func (f *fakeCompanyRepo) SetLogoURL(_ context.Context, userID int64, url string) error { return nil }

// fakeTxRunner ejecuta el closure sobre los mismos fakes; si falla, revierte
// los usuarios creados durante el closure (simulando el rollback).
type fakeTxRunner struct {
	users     *fakeUserRepo
	companies *fakeCompanyRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.UserRepository, repository.CompanyRepository) error) error {
	before := make(map[string]bool, len(f.users.byEmail))
	for email := range f.users.byEmail {
		before[email] = true
	}
	if err := fn(f.users, f.companies); err != nil {
		for email := range f.users.byEmail {
			if !before[email] {
				delete(f.users.byEmail, email)
			}
		}
		return err
	}
	return nil
}

func buildAuthUC() (*auth.AuthUseCase, *fakeUserRepo, *fakeCompanyRepo) {
	users := newFakeUserRepo()
	companies := newFakeCompanyRepo()
	tx := &fakeTxRunner{users: users, companies: companies}
	return auth.NewAuthUseCase(users, companies, tx), users, companies
}

// ──────────────────────────────────────────────────────────────────────────────
// Register / Login
// ──────────────────────────────────────────────────────────────────────────────

// Registro y login con las mismas credenciales deben cerrar el círculo.
func TestRegisterLogin_RoundTrip(t *testing.T) {
	uc, users, _ := buildAuthUC()
	ctx := context.Background()

	reg, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: " Ana ", Email: " ana@mail.com ", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", reg.Name, "el nombre debe guardarse recortado")
	assert.Equal(t, entity.RoleUser, reg.Role)

	// El hash persistido no es el password en claro.
	stored := users.byEmail["ana@mail.com"]
	require.NotNil(t, stored, "el email debe guardarse recortado")
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "ana@mail.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, out.ID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Otra Ana", Email: "ana@mail.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Email inexistente y password incorrecto responden con el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _, _ := buildAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@mail.com", Password: "lo que sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@mail.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCompany_CreaUsuarioYEmpresa(t *testing.T) {
	uc, users, companies := buildAuthUC()

	out, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyInput{
		Email:           "rrhh@acme.com",
		Password:        "secreta123",
		CompanyName:     "Acme",
		CompanyLocation: "Bogotá",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployer, out.Role)
	assert.Equal(t, "Acme", out.Name, "sin representante el nombre cae al de la empresa")

	user := users.byEmail["rrhh@acme.com"]
	require.NotNil(t, user)
	company, err := companies.GetByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Acme", company.Name)
	require.NotNil(t, company.Location)
	assert.Equal(t, "Bogotá", *company.Location)
	assert.Nil(t, company.NIT, "campos opcionales vacíos deben quedar NULL")
}

// Si el insert de la empresa falla, el usuario tampoco debe quedar creado.
func TestRegisterCompany_FallaEmpresaRevierteUsuario(t *testing.T) {
	uc, users, companies := buildAuthUC()
	companies.failOn = "Explota"

	_, err := uc.RegisterCompany(context.Background(), dto.RegisterCompanyInput{
		Email:       "rrhh@explota.com",
		Password:    "secreta123",
		CompanyName: "Explota",
	})
	require.Error(t, err)
	assert.Nil(t, users.byEmail["rrhh@explota.com"],
		"la transacción debe revertir el usuario si la empresa falla")
}

func TestRegisterCompany_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildAuthUC()
	ctx := context.Background()

	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Name: "Ana", Email: "ana@mail.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterCompany(ctx, dto.RegisterCompanyInput{
		Email:       "ana@mail.com",
		Password:    "otra",
		CompanyName: "Acme",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}
