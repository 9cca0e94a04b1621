package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary_NumeroJSON(t *testing.T) {
	got, err := ParseSalary(json.RawMessage(`3500000.50`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.RequireFromString("3500000.50")))
}

func TestParseSalary_CadenaNumerica(t *testing.T) {
	got, err := ParseSalary(json.RawMessage(`"1200000"`))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.NewFromInt(1200000)))
}

func TestParseSalary_AusenteYNull(t *testing.T) {
	for name, raw := range map[string]json.RawMessage{
		"ausente":       nil,
		"null":          json.RawMessage(`null`),
		"cadena vacia":  json.RawMessage(`""`),
		"solo espacios": json.RawMessage(`"   "`),
	} {
		got, err := ParseSalary(raw)
		require.NoError(t, err, name)
		assert.Nil(t, got, name)
	}
}

// Contenido no numérico se rechaza, no se convierte en NULL en silencio.
func TestParseSalary_BasuraRechazada(t *testing.T) {
	for name, raw := range map[string]json.RawMessage{
		"texto":    json.RawMessage(`"a convenir"`),
		"booleano": json.RawMessage(`true`),
		"objeto":   json.RawMessage(`{"amount": 100}`),
		"arreglo":  json.RawMessage(`[100]`),
	} {
		got, err := ParseSalary(raw)
		assert.ErrorIs(t, err, ErrInvalidSalary, name)
		assert.Nil(t, got, name)
	}
}
