package dto

// CompanyResponse salida de GET /companies/me.
type CompanyResponse struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	NIT      *string `json:"nit"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
	LogoURL  *string `json:"logo_url"`
}

// UpdateCompanyRequest entrada de PATCH /companies/me; punteros nil = campo no enviado.
type UpdateCompanyRequest struct {
	Name     *string `json:"name"`
	NIT      *string `json:"nit"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
}

// LogoUploadResponse salida de POST /companies/me/logo.
type LogoUploadResponse struct {
	Message string `json:"message"`
	LogoURL string `json:"logo_url"`
}
