package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name               string
		limit, offset      int
		wantLimit, wantOff int
	}{
		{"dentro de rango", 25, 10, 25, 10},
		{"límite cero sube a 1", 0, 0, 1, 0},
		{"límite negativo sube a 1", -7, 0, 1, 0},
		{"límite excesivo baja a 100", 5000, 0, 100, 0},
		{"offset negativo sube a 0", 10, -3, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := clampPage(tc.limit, tc.offset)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOff, offset)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}), "FK violation no es unique violation")
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
}
