package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
)

// UserHandler maneja el perfil del usuario autenticado.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// GetProfile godoc
// @Summary      Obtener mi perfil
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/perfil [get]
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al obtener perfil", Error: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Usuario no encontrado"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar mi perfil
// @Description  Solo nombre, teléfono y dirección. Email, rol y contraseña no cambian por esta vía.
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Datos del perfil"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/perfil [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Mensaje: "Cuerpo de la petición inválido"})
	}
	if err := h.uc.UpdateProfile(GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Mensaje: "Usuario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al actualizar perfil", Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Mensaje: "Perfil actualizado exitosamente"})
}
