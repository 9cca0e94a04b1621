package dto

// RegisterRequest entrada para registro de candidato (rol USER).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login (USER o EMPLOYER).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUserResponse proyección del usuario autenticado (lo que vive en la sesión).
type SessionUserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AuthResponse salida de register/login.
type AuthResponse struct {
	Message string              `json:"message"`
	User    SessionUserResponse `json:"user"`
}

// MeResponse salida de GET /auth/me; User es null sin sesión.
type MeResponse struct {
	User *SessionUserResponse `json:"user"`
}

// RegisterCompanyInput entrada para registro de empresa (ya parseada del
// multipart; el logo se sube antes y llega como URL pública o nil).
type RegisterCompanyInput struct {
	Email           string
	Password        string
	Name            string // representante; si falta se usa el nombre de la empresa
	CompanyName     string
	CompanyNIT      string
	CompanyWebsite  string
	CompanyLocation string
	LogoURL         *string
}

// RegisterCompanyResponse salida del registro de empresa.
type RegisterCompanyResponse struct {
	Message string  `json:"message"`
	UserID  int64   `json:"user_id"`
	Role    string  `json:"role"`
	LogoURL *string `json:"logo_url"`
}
