package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/orders"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de pedidos.
type OrderHandler struct {
	uc *orders.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Abierto a invitados. Con token el pedido queda asociado al usuario;
// @Description  sin token son obligatorios nombre, apellido, dirección y teléfono.
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Líneas y datos de envío"
// @Success      201   {object}  dto.CreateOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}

	// OptionalToken deja el user_id en locals solo si llegó un token válido.
	var userID *string
	if id := GetUserID(c); id != "" {
		userID = &id
	}

	out, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Datos del pedido inválidos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Producto no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Mensaje: "Stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al crear pedido", Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine godoc
// @Summary      Listar mis pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/pedidos/mis-pedidos [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener pedidos", Error: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los pedidos
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/pedidos [get]
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener pedidos", Error: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Description  Transiciones permitidas: pendiente→procesando|cancelado,
// @Description  procesando→enviado|cancelado, enviado→entregado.
// @Tags         pedidos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/estado [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if err := h.uc.UpdateStatus(c.Params("id"), in.Estado); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Estado no válido"})
		}
		if errors.Is(err, domain.ErrInvalidTransition) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Mensaje: "Transición de estado no permitida"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al actualizar estado", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Estado del pedido actualizado"})
}

// Delete godoc
// @Summary      Eliminar pedido
// @Description  Borrado físico; los detalles caen en cascada. El stock no se restaura.
// @Tags         pedidos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Pedido no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al eliminar pedido", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Pedido eliminado exitosamente"})
}

// Receipt godoc
// @Summary      Descargar recibo PDF del pedido
// @Description  Solo el dueño del pedido o un admin.
// @Tags         pedidos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pedidos/{id}/recibo [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Receipt(c.Context(), c.Params("id"), GetUserID(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Pedido no encontrado"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Mensaje: "Acceso denegado al pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al generar recibo", Error: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
