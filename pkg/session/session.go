package session

import (
	"context"

	"github.com/google/uuid"
)

// Session identidad autenticada asociada a un token opaco.
// Es el único estado que viaja entre peticiones del mismo cliente.
type Session struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // USER, EMPLOYER, ADMIN
}

// Store puerto del almacén de sesiones. Se inyecta como capacidad para que un
// despliegue distribuido pueda cambiar el store en memoria por uno compartido
// sin tocar los handlers.
type Store interface {
	// Get devuelve la sesión del token, o nil si no existe o expiró.
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, token string, s Session) error
	Destroy(ctx context.Context, token string) error
}

// NewToken genera un token de sesión opaco (UUID v4).
func NewToken() string {
	return uuid.NewString()
}
