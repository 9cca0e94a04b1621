package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/pkg/session"
)

// AuthHandler maneja registro, login, logout y registro de empresa.
type AuthHandler struct {
	uc           *auth.AuthUseCase
	sessions     session.Store
	storage      ports.FileStorage
	cookieName   string
	cookieSecure bool
	ttl          time.Duration
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, sessions session.Store, storage ports.FileStorage, cookieName string, cookieSecure bool, ttl time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, sessions: sessions, storage: storage, cookieName: cookieName, cookieSecure: cookieSecure, ttl: ttl}
}

// startSession crea el token, persiste la sesión y escribe la cookie.
func (h *AuthHandler) startSession(c *fiber.Ctx, user *dto.SessionUserResponse) error {
	token := session.NewToken()
	if err := h.sessions.Set(c.Context(), token, session.Session{UserID: user.ID, Name: user.Name, Role: user.Role}); err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.ttl),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Register godoc
// @Summary      Registrar candidato
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, email y password son requeridos"})
	}
	user, err := h.uc.RegisterUser(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return internalError(c, err)
	}
	if err := h.startSession(c, user); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.AuthResponse{Message: "registro exitoso", User: *user})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	user, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return internalError(c, err)
	}
	if err := h.startSession(c, user); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.AuthResponse{Message: "bienvenido", User: *user})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(h.cookieName); token != "" {
		if err := h.sessions.Destroy(c.Context(), token); err != nil {
			return internalError(c, err)
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario de la sesión actual (o null)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MeResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	if c.Locals(LocalUserID) == nil {
		return c.JSON(dto.MeResponse{User: nil})
	}
	return c.JSON(dto.MeResponse{User: &dto.SessionUserResponse{
		ID:   GetUserID(c),
		Name: GetUserName(c),
		Role: GetRole(c),
	}})
}

// RegisterCompany godoc
// @Summary      Registrar empleador y empresa
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        email             formData  string  true   "Email del empleador"
// @Param        password          formData  string  true   "Password"
// @Param        name              formData  string  false  "Nombre del representante"
// @Param        company_name      formData  string  true   "Nombre de la empresa"
// @Param        company_nit       formData  string  false  "NIT"
// @Param        company_website   formData  string  false  "Sitio web"
// @Param        company_location  formData  string  false  "Ubicación"
// @Param        logo              formData  file    false  "Logo (png/jpeg/webp, máx 2MB)"
// @Success      201   {object}  dto.RegisterCompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register-company [post]
func (h *AuthHandler) RegisterCompany(c *fiber.Ctx) error {
	in := dto.RegisterCompanyInput{
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		Name:            c.FormValue("name"),
		CompanyName:     c.FormValue("company_name"),
		CompanyNIT:      c.FormValue("company_nit"),
		CompanyWebsite:  c.FormValue("company_website"),
		CompanyLocation: c.FormValue("company_location"),
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" || strings.TrimSpace(in.CompanyName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y company_name son requeridos"})
	}

	// El logo se valida y escribe antes de abrir la transacción; un archivo
	// malo corta aquí sin tocar la base.
	if file, err := c.FormFile("logo"); err == nil && file != nil {
		url, err := h.storage.Save(c.Context(), ports.CategoryLogo, file)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidFileType) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
			}
			if errors.Is(err, domain.ErrFileTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: err.Error()})
			}
			return internalError(c, err)
		}
		in.LogoURL = &url
	}

	user, err := h.uc.RegisterCompany(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return internalError(c, err)
	}
	if err := h.startSession(c, user); err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterCompanyResponse{
		Message: "empresa registrada",
		UserID:  user.ID,
		Role:    user.Role,
		LogoURL: in.LogoURL,
	})
}
