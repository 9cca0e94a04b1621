package storage

import (
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

// Category reglas de aceptación de una clase de archivo subido.
type Category struct {
	Name         string
	AllowedTypes []string // MIME types declarados aceptados
	MaxBytes     int64
	Dir          string // subdirectorio bajo el base dir
	PublicPrefix string // prefijo de la URL pública
	FilePrefix   string // prefijo del nombre generado
	// Expected mensaje corto para el usuario cuando el tipo no es válido.
	Expected string
}

const mb = 1 << 20

// Categories construye las reglas por categoría a partir de la configuración.
// Una sola fuente de verdad: todos los call sites de subida pasan por aquí.
func Categories(cfg config.UploadsConfig) map[string]Category {
	return map[string]Category{
		ports.CategoryResume: {
			Name:         ports.CategoryResume,
			AllowedTypes: []string{"application/pdf"},
			MaxBytes:     int64(cfg.ResumeMaxMB) * mb,
			Dir:          "resumes",
			PublicPrefix: "/uploads/resumes",
			FilePrefix:   "cv_",
			Expected:     "PDF",
		},
		ports.CategoryCV: {
			Name:         ports.CategoryCV,
			AllowedTypes: []string{"application/pdf"},
			MaxBytes:     int64(cfg.CVMaxMB) * mb,
			Dir:          "cv",
			PublicPrefix: "/uploads/cv",
			FilePrefix:   "cv_",
			Expected:     "PDF",
		},
		ports.CategoryLogo: {
			Name:         ports.CategoryLogo,
			AllowedTypes: []string{"image/png", "image/jpeg", "image/webp"},
			MaxBytes:     int64(cfg.LogoMaxMB) * mb,
			Dir:          "logos",
			PublicPrefix: "/uploads/logos",
			FilePrefix:   "logo_",
			Expected:     "imagen (png, jpg, webp)",
		},
	}
}

func (c Category) allows(mimeType string) bool {
	for _, t := range c.AllowedTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}
