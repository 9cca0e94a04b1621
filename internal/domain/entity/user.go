package entity

import "time"

// Roles válidos para User. El rol se asigna en el registro y es inmutable.
const (
	RoleUser     = "USER"     // candidato que se postula a empleos
	RoleEmployer = "EMPLOYER" // representante de empresa que publica empleos
	RoleAdmin    = "ADMIN"
)

// User representa una cuenta del sistema (candidato, empleador o admin).
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca en texto plano después de persistir
	Role         string // USER, EMPLOYER, ADMIN
	Phone        *string
	Bio          *string
	ResumeURL    *string
	CVURL        *string
	CreatedAt    time.Time
}
