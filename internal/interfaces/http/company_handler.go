package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// CompanyHandler maneja la empresa del empleador autenticado.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	storage ports.FileStorage
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, storage ports.FileStorage) *CompanyHandler {
	return &CompanyHandler{uc: uc, storage: storage}
}

// Me godoc
// @Summary      Mi empresa
// @Tags         companies
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/me [get]
func (h *CompanyHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no tienes empresa registrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar mi empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "cualquiera de name/nit/website/location"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/me [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sin campos válidos para actualizar"})
		}
		if errors.Is(err, domain.ErrNoCompany) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no tienes empresa registrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empresa actualizada"})
}

// UploadLogo godoc
// @Summary      Subir logo de la empresa
// @Tags         companies
// @Accept       multipart/form-data
// @Produce      json
// @Param        logo  formData  file  true  "Logo (png/jpeg/webp, máx 2MB)"
// @Success      200   {object}  dto.LogoUploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/me/logo [post]
func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	file, err := c.FormFile("logo")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo logo es requerido"})
	}
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
	if err := h.uc.SetLogo(c.Context(), GetUserID(c), url); err != nil {
		if errors.Is(err, domain.ErrNoCompany) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "no tienes empresa registrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.LogoUploadResponse{Message: "logo actualizado", LogoURL: url})
}
