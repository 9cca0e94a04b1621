package ports

import (
	"context"
	"mime/multipart"
)

// Categorías de archivo subido. Cada una tiene su propia allow-list de MIME,
// tope de tamaño y directorio destino; el destino lo decide la categoría,
// nunca el cliente.
const (
	CategoryResume = "resume"
	CategoryCV     = "cv"
	CategoryLogo   = "logo"
)

// FileStorage puerto de almacenamiento de archivos subidos. Valida el archivo
// contra las reglas de la categoría ANTES de escribir un solo byte y devuelve
// la ruta pública del archivo guardado.
type FileStorage interface {
	Save(ctx context.Context, category string, file *multipart.FileHeader) (publicURL string, err error)
}
