package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
)

// ApplicationHandler maneja las postulaciones del candidato.
type ApplicationHandler struct {
	uc *usecase.ApplicationUseCase
}

// NewApplicationHandler construye el handler.
func NewApplicationHandler(uc *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// Apply godoc
// @Summary      Postularse a un empleo
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateApplicationRequest  true  "job_id"
// @Success      201   {object}  dto.ApplicationCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	var in dto.CreateApplicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Apply(c.Context(), GetUserID(c), in.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_JOB", Message: "el empleo no existe"})
		}
		if errors.Is(err, domain.ErrAlreadyApplied) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya te postulaste a este empleo"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApplicationCreatedResponse{Message: "postulación registrada", ApplicationID: id})
}

// Mine godoc
// @Summary      Mis postulaciones
// @Tags         applications
// @Produce      json
// @Success      200  {object}  dto.ApplicationListResponse
// @Router       /api/applications/mine [get]
func (h *ApplicationHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
