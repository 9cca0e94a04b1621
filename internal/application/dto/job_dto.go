package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidSalary indica que salary llegó con contenido no numérico.
var ErrInvalidSalary = errors.New("salary debe ser un número")

// CreateJobRequest entrada de POST /jobs. Salary se deja crudo para poder
// aceptar número JSON, cadena numérica o null con una sola regla (ParseSalary).
type CreateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Salary      json.RawMessage `json:"salary"`
}

// UpdateJobRequest entrada de PUT /jobs/:id (reemplazo completo).
type UpdateJobRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Salary      json.RawMessage `json:"salary"`
}

// PatchJobRequest entrada de PATCH /jobs/:id; el RawMessage nil distingue
// "salary no enviado" de "salary enviado como null".
type PatchJobRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Salary      json.RawMessage `json:"salary"`
}

// JobResponse salida de empleos en listados y detalle. Website solo viaja en
// el detalle (omitempty).
type JobResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Salary      *decimal.Decimal `json:"salary"`
	CreatedAt   time.Time        `json:"created_at"`
	CompanyID   int64            `json:"company_id,omitempty"`
	Company     string           `json:"company,omitempty"`
	Location    *string          `json:"location,omitempty"`
	Logo        *string          `json:"logo,omitempty"`
	Website     *string          `json:"website,omitempty"`
}

// SearchJobsResponse salida de GET /jobs/search.
type SearchJobsResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination PageResponse  `json:"pagination"`
}

// JobListResponse salida de GET /jobs/mine.
type JobListResponse struct {
	Jobs []JobResponse `json:"jobs"`
}

// ParseSalary convierte el valor crudo de salary en decimal o nil.
// Acepta: ausente, null, cadena vacía, número JSON o cadena numérica.
// Cualquier otro contenido devuelve ErrInvalidSalary (nada de convertir
// basura en NULL en silencio).
func ParseSalary(raw json.RawMessage) (*decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	s := string(raw)
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(raw, &unquoted); err != nil {
			return nil, ErrInvalidSalary
		}
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return nil, nil
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidSalary
	}
	return &d, nil
}
