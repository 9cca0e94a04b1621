package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrNoCompany          = errors.New("no se encontró empresa para este usuario")
	ErrAlreadyApplied     = errors.New("ya existe una postulación para este empleo")
	ErrInvalidFileType    = errors.New("tipo de archivo no permitido")
	ErrFileTooLarge       = errors.New("el archivo excede el tamaño permitido")
)
