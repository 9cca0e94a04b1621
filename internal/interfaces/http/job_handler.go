package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/dto"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// JobHandler maneja las peticiones HTTP de empleos.
type JobHandler struct {
	uc *usecase.JobUseCase
}

// NewJobHandler construye el handler.
func NewJobHandler(uc *usecase.JobUseCase) *JobHandler {
	return &JobHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleos públicos
// @Tags         jobs
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(50)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {array}  dto.JobResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.Clamp()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empleos
// @Tags         jobs
// @Produce      json
// @Param        q       query  string  false  "Término (insensible a tildes)"
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.SearchJobsResponse
// @Router       /api/jobs/search [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.Clamp()
	out, err := h.uc.Search(c.Context(), c.Query("q"), page.Limit, page.Offset)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Mine godoc
// @Summary      Empleos publicados por mi empresa
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  dto.JobListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/jobs/mine [get]
func (h *JobHandler) Mine(c *fiber.Ctx) error {
	out, err := h.uc.Mine(c.Context(), GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un empleo
// @Tags         jobs
// @Produce      json
// @Param        id   path  int  true  "ID del empleo"
// @Success      200  {object}  dto.JobResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleo no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Publicar empleo
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateJobRequest  true  "title, description, salary?"
// @Success      201   {object}  dto.JobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	salary, err := dto.ParseSalary(in.Salary)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "salary debe ser un número"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in.Title, in.Description, salary)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y description son requeridos"})
		}
		if errors.Is(err, domain.ErrNoCompany) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_COMPANY", Message: "registra una empresa antes de publicar"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar empleo (reemplazo completo)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleo"
// @Param        body  body  dto.UpdateJobRequest  true  "title, description, salary?"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.UpdateJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	salary, err := dto.ParseSalary(in.Salary)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "salary debe ser un número"})
	}
	if err := h.uc.Update(c.Context(), GetUserID(c), id, in.Title, in.Description, salary); err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleo actualizado"})
}

// Patch godoc
// @Summary      Actualizar empleo (parcial)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del empleo"
// @Param        body  body  dto.PatchJobRequest  true  "cualquiera de title/description/salary"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [patch]
func (h *JobHandler) Patch(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	var in dto.PatchJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	patch := repository.JobPatch{Title: in.Title, Description: in.Description}
	if in.Salary != nil {
		salary, err := dto.ParseSalary(in.Salary)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "salary debe ser un número"})
		}
		patch.Salary = salary
		patch.SalarySet = true
	}
	if err := h.uc.Patch(c.Context(), GetUserID(c), id, patch); err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleo actualizado"})
}

// Delete godoc
// @Summary      Eliminar empleo
// @Tags         jobs
// @Produce      json
// @Param        id   path  int  true  "ID del empleo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		return h.mutationError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "empleo eliminado"})
}

// mutationError mapeo común de PUT/PATCH/DELETE sobre un empleo ajeno o inexistente.
func (h *JobHandler) mutationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sin campos válidos para actualizar"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empleo no encontrado"})
	}
	if errors.Is(err, domain.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el empleo pertenece a otra empresa"})
	}
	return internalError(c, err)
}
