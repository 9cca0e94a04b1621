package dto

// UserResponse salida de GET /users/me (sin password).
type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	ResumeURL *string `json:"resume_url"`
}

// ProfileResponse salida del perfil extendido (candidato).
type ProfileResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
	Phone *string `json:"phone"`
	Bio   *string `json:"bio"`
	CVURL *string `json:"cv_url"`
}

// UpdateUserRequest entrada de PATCH /users/me (solo el nombre).
type UpdateUserRequest struct {
	Name string `json:"name"`
}

// UpdateProfileRequest entrada de PATCH /profile/users/me; punteros nil = campo no enviado.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Bio   *string `json:"bio"`
}

// ResumeUploadResponse salida de POST /users/me/resume.
type ResumeUploadResponse struct {
	Message   string `json:"message"`
	ResumeURL string `json:"resume_url"`
}

// CVUploadResponse salida de POST /profile/users/me/cv.
type CVUploadResponse struct {
	Message string `json:"message"`
	CVURL   string `json:"cv_url"`
}
