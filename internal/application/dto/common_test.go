package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Clamp(t *testing.T) {
	cases := []struct {
		name               string
		in                 PageRequest
		wantLimit, wantOff int
	}{
		{"defaults", PageRequest{}, 50, 0},
		{"límite negativo cae al default", PageRequest{Limit: -5, Offset: 10}, 50, 10},
		{"límite cero cae al default", PageRequest{Limit: 0}, 50, 0},
		{"límite dentro de rango", PageRequest{Limit: 25, Offset: 100}, 25, 100},
		{"límite en el tope", PageRequest{Limit: 100}, 100, 0},
		{"límite excesivo se recorta a 100", PageRequest{Limit: 9999}, 100, 0},
		{"offset negativo se recorta a 0", PageRequest{Limit: 10, Offset: -1}, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Clamp()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOff, tc.in.Offset)
		})
	}
}
