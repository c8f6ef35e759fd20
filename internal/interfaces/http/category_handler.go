package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
)

// CategoryHandler maneja las peticiones HTTP de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar categorías activas
// @Tags         categorias
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categorias [get]
func (h *CategoryHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener categorías", Error: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las categorías (incluidas inactivas)
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categorias/admin/todas [get]
func (h *CategoryHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener categorías", Error: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "El nombre es obligatorio"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Mensaje: "La categoría ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al crear categoría", Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Mensaje: "Categoría creada exitosamente", ID: id})
}

// Update godoc
// @Summary      Actualizar categoría
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Datos a reemplazar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al actualizar categoría", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Categoría actualizada exitosamente"})
}

// SetState godoc
// @Summary      Activar o desactivar categoría
// @Description  Desactivar una categoría oculta también sus productos del catálogo público.
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryStateRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id}/estado [patch]
func (h *CategoryHandler) SetState(c *fiber.Ctx) error {
	var in dto.CategoryStateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if err := h.uc.SetActive(c.Params("id"), in.Activo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al cambiar estado", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Estado de la categoría actualizado"})
}

// Delete godoc
// @Summary      Eliminar categoría
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Categoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al eliminar categoría", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Categoría eliminada exitosamente"})
}
