package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// UserHandler maneja la cuenta y el perfil del usuario autenticado.
type UserHandler struct {
	uc      *usecase.UserUseCase
	storage ports.FileStorage
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, storage ports.FileStorage) *UserHandler {
	return &UserHandler{uc: uc, storage: storage}
}

// Me godoc
// @Summary      Mis datos de cuenta
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpdateName godoc
// @Summary      Cambiar mi nombre
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "name"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/me [patch]
func (h *UserHandler) UpdateName(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateName(c.Context(), GetUserID(c), in.Name); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "nombre actualizado"})
}

// UploadResume godoc
// @Summary      Subir hoja de vida
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume  formData  file  true  "PDF, máx 10MB"
// @Success      200     {object}  dto.ResumeUploadResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/users/me/resume [post]
func (h *UserHandler) UploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo resume es requerido"})
	}
	url, err := h.storage.Save(c.Context(), ports.CategoryResume, file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: err.Error()})
		}
		return internalError(c, err)
	}
	if err := h.uc.SetResume(c.Context(), GetUserID(c), url); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.ResumeUploadResponse{Message: "hoja de vida actualizada", ResumeURL: url})
}

// Profile godoc
// @Summary      Mi perfil extendido
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profile/users/me [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar mi perfil
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "cualquiera de name/phone/bio"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/profile/users/me [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateProfile(c.Context(), GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sin campos válidos para actualizar"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "perfil actualizado"})
}

// UploadCV godoc
// @Summary      Subir CV
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv  formData  file  true  "PDF, máx 10MB"
// @Success      201  {object}  dto.CVUploadResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/profile/users/me/cv [post]
func (h *UserHandler) UploadCV(c *fiber.Ctx) error {
	file, err := c.FormFile("cv")
	if err != nil || file == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "el campo cv es requerido"})
	}
	url, err := h.storage.Save(c.Context(), ports.CategoryCV, file)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFileType) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrFileTooLarge) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: err.Error()})
		}
		return internalError(c, err)
	}
	if err := h.uc.SetCV(c.Context(), GetUserID(c), url); err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CVUploadResponse{Message: "CV actualizado", CVURL: url})
}

// ClearCV godoc
// @Summary      Quitar CV
// @Tags         profile
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/profile/users/me/cv/clear [patch]
func (h *UserHandler) ClearCV(c *fiber.Ctx) error {
	if err := h.uc.ClearCV(c.Context(), GetUserID(c)); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "CV eliminado"})
}
