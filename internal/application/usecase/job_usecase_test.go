package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

const (
	ownerID = int64(10) // EMPLOYER dueño de la empresa
	otherID = int64(20) // otro EMPLOYER
)

// buildJobUC arma el caso de uso con un empleo publicado por ownerID.
func buildJobUC(t *testing.T) (*usecase.JobUseCase, *fakeJobRepo, int64) {
	t.Helper()
	companies := newFakeCompanyRepo()
	_, err := companies.Create(context.Background(), &entity.Company{UserID: ownerID, Name: "Acme"})
	require.NoError(t, err)
	_, err = companies.Create(context.Background(), &entity.Company{UserID: otherID, Name: "Globex"})
	require.NoError(t, err)

	jobs := newFakeJobRepo()
	jobID := jobs.add(&entity.Job{CompanyID: 1, Title: "Backend Go", Description: "API de empleos"}, ownerID)

	return usecase.NewJobUseCase(jobs, companies), jobs, jobID
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestJobCreate_SinEmpresa(t *testing.T) {
	uc := usecase.NewJobUseCase(newFakeJobRepo(), newFakeCompanyRepo())

	_, err := uc.Create(context.Background(), 99, "Título", "Descripción", nil)
	assert.ErrorIs(t, err, domain.ErrNoCompany,
		"publicar sin empresa registrada debe fallar")
}

func TestJobCreate_CamposVacios(t *testing.T) {
	uc, _, _ := buildJobUC(t)

	_, err := uc.Create(context.Background(), ownerID, "   ", "Descripción", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), ownerID, "Título", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobCreate_ConSalario(t *testing.T) {
	uc, _, _ := buildJobUC(t)

	salary := decimal.NewFromInt(4500000)
	out, err := uc.Create(context.Background(), ownerID, "  Data Engineer ", "Pipelines", &salary)
	require.NoError(t, err)
	assert.Equal(t, "Data Engineer", out.Title, "el título debe guardarse recortado")
	require.NotNil(t, out.Salary)
	assert.True(t, out.Salary.Equal(salary))
}

// ──────────────────────────────────────────────────────────────────────────────
// Cadena de propiedad en PUT/PATCH/DELETE
// ──────────────────────────────────────────────────────────────────────────────

func TestJobUpdate_DuenoActualiza(t *testing.T) {
	uc, jobs, jobID := buildJobUC(t)

	err := uc.Update(context.Background(), ownerID, jobID, "Backend Sr", "Más señor", nil)
	require.NoError(t, err)

	patch := jobs.updated[jobID]
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Backend Sr", *patch.Title)
	assert.True(t, patch.SalarySet, "PUT siempre reemplaza salary, incluso con null")
	assert.Nil(t, patch.Salary)
}

func TestJobUpdate_OtroEmployerProhibido(t *testing.T) {
	uc, _, jobID := buildJobUC(t)

	err := uc.Update(context.Background(), otherID, jobID, "Hackeado", "x", nil)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un EMPLOYER ajeno debe recibir forbidden, no not found")
}

func TestJobUpdate_Inexistente(t *testing.T) {
	uc, _, _ := buildJobUC(t)

	err := uc.Update(context.Background(), ownerID, 999, "Título", "Desc", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobPatch_PatchVacio(t *testing.T) {
	uc, _, jobID := buildJobUC(t)

	err := uc.Patch(context.Background(), ownerID, jobID, repository.JobPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un PATCH sin campos no debe tocar la fila")
}

func TestJobPatch_TituloVacioRechazado(t *testing.T) {
	uc, _, jobID := buildJobUC(t)

	empty := "   "
	err := uc.Patch(context.Background(), ownerID, jobID, repository.JobPatch{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJobPatch_SoloSalario(t *testing.T) {
	uc, jobs, jobID := buildJobUC(t)

	salary := decimal.NewFromInt(6000000)
	err := uc.Patch(context.Background(), ownerID, jobID, repository.JobPatch{Salary: &salary, SalarySet: true})
	require.NoError(t, err)

	patch := jobs.updated[jobID]
	assert.Nil(t, patch.Title, "título no enviado no debe tocarse")
	assert.True(t, patch.SalarySet)
}

func TestJobDelete_Dueno(t *testing.T) {
	uc, jobs, jobID := buildJobUC(t)

	require.NoError(t, uc.Delete(context.Background(), ownerID, jobID))
	_, ok := jobs.jobs[jobID]
	assert.False(t, ok)
}

func TestJobDelete_OtroEmployerProhibido(t *testing.T) {
	uc, jobs, jobID := buildJobUC(t)

	err := uc.Delete(context.Background(), otherID, jobID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, ok := jobs.jobs[jobID]
	assert.True(t, ok, "el empleo debe seguir existiendo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsqueda
// ──────────────────────────────────────────────────────────────────────────────

// El término llega al repositorio sin tildes para casar con unaccent en SQL.
func TestJobSearch_NormalizaTildes(t *testing.T) {
	uc, jobs, _ := buildJobUC(t)

	_, err := uc.Search(context.Background(), "  ingeniería de Petróleos ", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "ingenieria de Petroleos", jobs.lastQ)
}

func TestJobSearch_PaginacionEnRespuesta(t *testing.T) {
	uc, _, _ := buildJobUC(t)

	out, err := uc.Search(context.Background(), "go", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10, out.Pagination.Limit)
	assert.Equal(t, 20, out.Pagination.Offset)
	assert.Equal(t, 0, out.Pagination.Count)
	assert.NotNil(t, out.Jobs, "jobs debe serializar como [] y no como null")
}

func TestJobGetByID_Inexistente(t *testing.T) {
	uc, _, _ := buildJobUC(t)

	out, err := uc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, out)
}
