package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/pkg/session"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
	LocalToken    = "session_token"
)

// SessionMiddleware resuelve la cookie de sesión contra el store y deja la
// identidad en c.Locals. No rechaza nada: las rutas anónimas siguen de largo
// y los guards (RequireLogin/RequireRole) deciden después.
func SessionMiddleware(store session.Store, cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(cookieName)
		if token == "" {
			return c.Next()
		}
		s, err := store.Get(c.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session store no disponible")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if s == nil {
			// token huérfano o expirado: sigue como anónimo
			return c.Next()
		}
		c.Locals(LocalUserID, s.UserID)
		c.Locals(LocalUserName, s.Name)
		c.Locals(LocalRole, s.Role)
		c.Locals(LocalToken, token)
		return c.Next()
	}
}

// RequireLogin exige sesión activa; sin ella responde 401 NO_SESSION.
func RequireLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalUserID) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "inicia sesión para continuar"})
		}
		return c.Next()
	}
}

// RequireRole exige uno de los roles dados; corre después de RequireLogin.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalUserID) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "inicia sesión para continuar"})
		}
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes permiso para esta operación"})
	}
}

// GetUserID devuelve el UserID del contexto (0 sin sesión).
func GetUserID(c *fiber.Ctx) int64 {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(int64)
	return id
}

// GetUserName devuelve el nombre del usuario del contexto.
func GetUserName(c *fiber.Ctx) string {
	v := c.Locals(LocalUserName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetToken devuelve el token de sesión del contexto.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
