package dto

import "time"

// CreateApplicationRequest entrada de POST /applications.
type CreateApplicationRequest struct {
	JobID int64 `json:"job_id"`
}

// ApplicationCreatedResponse salida de una postulación exitosa.
type ApplicationCreatedResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"application_id"`
}

// ApplicationResponse una postulación con datos del empleo.
type ApplicationResponse struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplicationListResponse salida de GET /applications/mine.
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
}
