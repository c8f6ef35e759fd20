package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
// Las lecturas son públicas; las mutaciones requieren rol admin.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos activos
// @Tags         productos
// @Produce      json
// @Param        categoria  query  string  false  "ID de categoría"
// @Param        busqueda   query  string  false  "Texto sobre nombre o descripción"
// @Param        destacado  query  string  false  "Solo destacados cuando vale true"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("categoria"), c.Query("busqueda"), c.Query("destacado"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener productos", Error: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener producto", Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Producto no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if in.Nombre == "" || in.CategoriaID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Nombre y categoría son obligatorios"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Mensaje: "El producto ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al crear producto", Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreatedResponse{Mensaje: "Producto creado exitosamente", ID: id})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos a reemplazar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al actualizar producto", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto actualizado exitosamente"})
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al eliminar producto", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Producto eliminado exitosamente"})
}

// UploadImage godoc
// @Summary      Subir imagen de producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UploadImageRequest  true  "Imagen en Base64 o URL"
// @Success      200   {object}  dto.UploadImageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/subir-imagen [post]
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	var in dto.UploadImageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	url, err := h.uc.UploadImage(c.Context(), in.Imagen)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "No se proporcionó ninguna imagen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al subir imagen", Error: err.Error()})
	}
	return c.JSON(dto.UploadImageResponse{Mensaje: "Imagen subida exitosamente", URL: url})
}
