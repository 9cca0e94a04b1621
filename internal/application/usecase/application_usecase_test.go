package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
)

func buildApplicationUC() (*usecase.ApplicationUseCase, *fakeApplicationRepo, int64) {
	jobs := newFakeJobRepo()
	jobID := jobs.add(&entity.Job{CompanyID: 1, Title: "Backend Go", Description: "API"}, ownerID)
	applications := newFakeApplicationRepo()
	return usecase.NewApplicationUseCase(applications, jobs), applications, jobID
}

func TestApply_Exitoso(t *testing.T) {
	uc, _, jobID := buildApplicationUC()

	id, err := uc.Apply(context.Background(), 1, jobID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

// Postularse dos veces al mismo empleo produce conflicto, no una segunda fila.
func TestApply_DuplicadoRechazado(t *testing.T) {
	uc, applications, jobID := buildApplicationUC()

	_, err := uc.Apply(context.Background(), 1, jobID)
	require.NoError(t, err)

	_, err = uc.Apply(context.Background(), 1, jobID)
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	assert.Len(t, applications.applied, 1)
}

// Otro usuario sí puede postularse al mismo empleo.
func TestApply_OtroUsuarioMismoEmpleo(t *testing.T) {
	uc, _, jobID := buildApplicationUC()

	_, err := uc.Apply(context.Background(), 1, jobID)
	require.NoError(t, err)
	_, err = uc.Apply(context.Background(), 2, jobID)
	assert.NoError(t, err)
}

func TestApply_EmpleoInexistente(t *testing.T) {
	uc, _, _ := buildApplicationUC()

	_, err := uc.Apply(context.Background(), 1, 999)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_JobIDInvalido(t *testing.T) {
	uc, _, _ := buildApplicationUC()

	for _, jobID := range []int64{0, -1} {
		_, err := uc.Apply(context.Background(), 1, jobID)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestMine_ProyectaDatosDelEmpleo(t *testing.T) {
	uc, applications, _ := buildApplicationUC()
	applications.list = []*entity.ApplicationSummary{
		{ID: 1, JobID: 7, Title: "Backend Go", CompanyName: "Acme"},
	}

	out, err := uc.Mine(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, out.Applications, 1)
	assert.Equal(t, int64(7), out.Applications[0].JobID)
	assert.Equal(t, "Acme", out.Applications[0].Company)
}
