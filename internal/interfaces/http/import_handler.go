package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/application/importer"
)

// ImportHandler dispara la importación de datos de prueba (admin).
type ImportHandler struct {
	uc *importer.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *importer.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Run godoc
// @Summary      Importar productos de prueba
// @Description  Trae categorías y productos de la Fake Store API. Idempotente por
// @Description  nombre exacto: la segunda corrida omite todo lo ya importado.
// @Tags         importar
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ImportResult
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/importar/productos-prueba [post]
func (h *ImportHandler) Run(c *fiber.Ctx) error {
	out, err := h.uc.Run(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Mensaje: "Error al importar productos de prueba", Error: err.Error()})
	}
	return c.JSON(out)
}
