package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas. Pasar pool o tx (Querier).
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persiste una nueva empresa y devuelve su id.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) (int64, error) {
	query := `
		INSERT INTO companies (user_id, name, nit, website, location, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query,
		company.UserID, company.Name, company.NIT, company.Website, company.Location, company.LogoURL,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert company: %w", err)
	}
	return id, nil
}

// GetByUserID obtiene la empresa del usuario dueño (relación 1:1).
func (r *CompanyRepo) GetByUserID(ctx context.Context, userID int64) (*entity.Company, error) {
	query := `
		SELECT id, user_id, name, nit, website, location, logo_url
		FROM companies WHERE user_id = $1 LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&c.ID, &c.UserID, &c.Name, &c.NIT, &c.Website, &c.Location, &c.LogoURL,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by user: %w", err)
	}
	return &c, nil
}

// Update aplica solo los campos presentes del patch sobre la empresa del usuario.
func (r *CompanyRepo) Update(ctx context.Context, userID int64, patch repository.CompanyPatch) error {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.NIT != nil {
		add("nit", *patch.NIT)
	}
	if patch.Website != nil {
		add("website", *patch.Website)
	}
	if patch.Location != nil {
		add("location", *patch.Location)
	}
	if len(sets) == 0 {
		return domain.ErrInvalidInput
	}
	args = append(args, userID)
	query := fmt.Sprintf("UPDATE companies SET %s WHERE user_id = $%d", strings.Join(sets, ", "), len(args))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoCompany
	}
	return nil
}

// SetLogoURL actualiza el logo de la empresa del usuario.
func (r *CompanyRepo) SetLogoURL(ctx context.Context, userID int64, url string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE companies SET logo_url = $1 WHERE user_id = $2`, url, userID)
	if err != nil {
		return fmt.Errorf("set logo_url: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNoCompany
	}
	return nil
}
