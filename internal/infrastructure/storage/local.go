package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/pkg/config"
)

var _ ports.FileStorage = (*LocalStorage)(nil)

// LocalStorage guarda archivos subidos en disco bajo un directorio base, con
// un subdirectorio por categoría servido como estático bajo /uploads.
type LocalStorage struct {
	baseDir    string
	categories map[string]Category
}

// NewLocalStorage construye el adaptador y asegura los directorios destino.
func NewLocalStorage(cfg config.UploadsConfig) (*LocalStorage, error) {
	cats := Categories(cfg)
	for _, cat := range cats {
		if err := os.MkdirAll(filepath.Join(cfg.Dir, cat.Dir), 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", cat.Dir, err)
		}
	}
	return &LocalStorage{baseDir: cfg.Dir, categories: cats}, nil
}

// BaseDir devuelve el directorio base (para montar el estático /uploads).
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Save valida el archivo contra la categoría y lo escribe con un nombre
// generado (timestamp + sufijo aleatorio + extensión original). La validación
// ocurre antes de escribir un solo byte; el destino lo decide la categoría.
func (s *LocalStorage) Save(_ context.Context, category string, file *multipart.FileHeader) (string, error) {
	cat, ok := s.categories[category]
	if !ok {
		return "", fmt.Errorf("categoría de archivo desconocida: %s", category)
	}
	if err := s.validate(cat, file); err != nil {
		return "", err
	}

	name := generateName(cat.FilePrefix, file.Filename)
	dst := filepath.Join(s.baseDir, cat.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	// O_EXCL: si por carambola el nombre ya existe, fallar en vez de pisar.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("crear archivo destino: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, io.LimitReader(src, cat.MaxBytes)); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return cat.PublicPrefix + "/" + name, nil
}

func (s *LocalStorage) validate(cat Category, file *multipart.FileHeader) error {
	if file.Size > cat.MaxBytes {
		return fmt.Errorf("%w (máximo %d MB)", domain.ErrFileTooLarge, cat.MaxBytes/mb)
	}
	mimeType := file.Header.Get("Content-Type")
	if parsed, _, err := mime.ParseMediaType(mimeType); err == nil {
		mimeType = parsed
	}
	if !cat.allows(mimeType) {
		return fmt.Errorf("%w: se esperaba %s", domain.ErrInvalidFileType, cat.Expected)
	}
	return nil
}

// generateName arma un nombre resistente a colisiones: prefijo + epoch ms +
// sufijo uuid + extensión original en minúsculas.
func generateName(prefix, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d_%s%s", prefix, time.Now().UnixMilli(), suffix, ext)
}
