package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/application/usecase"
)

// MenuHandler expone la carta pública (solo lectura).
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler construye el handler inyectando el caso de uso.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// ByCompanyID godoc
// @Summary      Carta de una empresa por ID
// @Tags         menu
// @Produce      json
// @Param        companyId  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/Menu/company/{companyId} [get]
func (h *MenuHandler) ByCompanyID(c *fiber.Ctx) error {
	id, ok := paramID(c, "companyId")
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Empresa no encontrada"})
	}
	out, err := h.uc.GetByCompanyID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ByCompanyName godoc
// @Summary      Carta de una empresa por nombre (case-insensitive)
// @Tags         menu
// @Produce      json
// @Param        companyName  path  string  true  "Nombre exacto de la empresa"
// @Success      200  {object}  dto.MenuResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/Menu/company-name/{companyName} [get]
func (h *MenuHandler) ByCompanyName(c *fiber.Ctx) error {
	// Fiber entrega el parámetro sin decodificar; "pizza%20co" debe buscarse
	// como "pizza co".
	name, err := url.PathUnescape(c.Params("companyName"))
	if err != nil {
		name = c.Params("companyName")
	}
	out, err := h.uc.GetByCompanyName(c.UserContext(), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
