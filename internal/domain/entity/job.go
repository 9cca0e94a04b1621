package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job representa una oferta de empleo publicada por una empresa.
// Solo el EMPLOYER dueño de la empresa puede mutarla (cadena Job→Company→User).
type Job struct {
	ID          int64
	CompanyID   int64
	Title       string
	Description string
	Salary      *decimal.Decimal // NUMERIC nullable
	CreatedAt   time.Time
}

// JobListing empleo enriquecido con datos de la empresa, para listados
// públicos y detalle. Website solo se proyecta en el detalle.
type JobListing struct {
	ID          int64
	CompanyID   int64
	Title       string
	Description string
	Salary      *decimal.Decimal
	CreatedAt   time.Time
	CompanyName string
	Location    *string
	LogoURL     *string
	Website     *string
}
