package entity

import "time"

// Application postulación de un USER a un Job. Es inmutable: la pareja
// (job_id, user_id) es única y no existe transición de retiro.
type Application struct {
	ID        int64
	JobID     int64
	UserID    int64
	CreatedAt time.Time
}

// ApplicationSummary postulación con datos del empleo, para "mis postulaciones".
type ApplicationSummary struct {
	ID          int64
	JobID       int64
	Title       string
	CompanyName string
	CreatedAt   time.Time
}
