package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para empleos. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

// Create persiste un nuevo empleo y devuelve su id.
func (r *JobRepo) Create(ctx context.Context, job *entity.Job) (int64, error) {
	query := `
		INSERT INTO jobs (company_id, title, description, salary)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.q.QueryRow(ctx, query, job.CompanyID, job.Title, job.Description, job.Salary).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}
	return id, nil
}

// GetByID obtiene el detalle público de un empleo (incluye empresa y website).
func (r *JobRepo) GetByID(ctx context.Context, id int64) (*entity.JobListing, error) {
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary, j.created_at,
		       c.name, c.location, c.logo_url, c.website
		  FROM jobs j
		  JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1
		 LIMIT 1`
	var l entity.JobListing
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.CompanyID, &l.Title, &l.Description, &l.Salary, &l.CreatedAt,
		&l.CompanyName, &l.Location, &l.LogoURL, &l.Website,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return &l, nil
}

// Exists informa si el empleo existe.
func (r *JobRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists job: %w", err)
	}
	return exists, nil
}

// List devuelve el listado público con datos de la empresa, más reciente primero.
func (r *JobRepo) List(ctx context.Context, limit, offset int) ([]*entity.JobListing, error) {
	limit, offset = clampPage(limit, offset)
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary, j.created_at,
		       c.name, c.location, c.logo_url
		  FROM jobs j
		  JOIN companies c ON c.id = j.company_id
		 ORDER BY j.created_at DESC
		 LIMIT $1 OFFSET $2`
	return r.queryListings(ctx, query, limit, offset)
}

// Search busca por título, descripción o nombre de empresa. El término llega
// normalizado (sin tildes); unaccent en columnas hace el match insensible a acentos.
func (r *JobRepo) Search(ctx context.Context, q string, limit, offset int) ([]*entity.JobListing, error) {
	limit, offset = clampPage(limit, offset)
	if q == "" {
		return r.List(ctx, limit, offset)
	}
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary, j.created_at,
		       c.name, c.location, c.logo_url
		  FROM jobs j
		  JOIN companies c ON c.id = j.company_id
		 WHERE unaccent(j.title) ILIKE $1
		    OR unaccent(j.description) ILIKE $1
		    OR unaccent(c.name) ILIKE $1
		 ORDER BY j.created_at DESC
		 LIMIT $2 OFFSET $3`
	pattern := "%" + q + "%"
	return r.queryListings(ctx, query, pattern, limit, offset)
}

func (r *JobRepo) queryListings(ctx context.Context, query string, args ...any) ([]*entity.JobListing, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()
	var list []*entity.JobListing
	for rows.Next() {
		var l entity.JobListing
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Title, &l.Description, &l.Salary, &l.CreatedAt,
			&l.CompanyName, &l.Location, &l.LogoURL); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByOwner devuelve los empleos publicados por la empresa del usuario.
func (r *JobRepo) ListByOwner(ctx context.Context, userID int64) ([]*entity.Job, error) {
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary, j.created_at
		  FROM jobs j
		  JOIN companies c ON c.id = j.company_id
		 WHERE c.user_id = $1
		 ORDER BY j.created_at DESC`
	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list jobs by owner: %w", err)
	}
	defer rows.Close()
	var list []*entity.Job
	for rows.Next() {
		var j entity.Job
		if err := rows.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Salary, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		list = append(list, &j)
	}
	return list, rows.Err()
}

// ResolveOwned devuelve el empleo solo si el join Job→Company→User confirma
// que userID es el dueño. Nil cuando el join no produce exactamente una fila.
func (r *JobRepo) ResolveOwned(ctx context.Context, jobID, userID int64) (*entity.Job, error) {
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary, j.created_at
		  FROM jobs j
		  JOIN companies c ON c.id = j.company_id
		 WHERE j.id = $1 AND c.user_id = $2
		 LIMIT 1`
	var j entity.Job
	err := r.q.QueryRow(ctx, query, jobID, userID).Scan(
		&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Salary, &j.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve owned job: %w", err)
	}
	return &j, nil
}

// Update aplica solo los campos presentes del patch. SalarySet permite poner
// salary en NULL explícitamente.
func (r *JobRepo) Update(ctx context.Context, id int64, patch repository.JobPatch) error {
	var sets []string
	var args []any
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.SalarySet {
		add("salary", patch.Salary)
	}
	if len(sets) == 0 {
		return domain.ErrInvalidInput
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un empleo (las postulaciones caen por ON DELETE CASCADE).
func (r *JobRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
