package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
)

// HistoryHandler expone el historial de movimientos de inventario.
type HistoryHandler struct {
	uc *inventory.ProductStockUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *inventory.ProductStockUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// Recent godoc
// @Summary      Historial de inventario reciente (últimos 2 meses por defecto)
// @Tags         inventory-history
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás (default: 60)"
// @Success      200   {object}  dto.Response{data=[]dto.HistoryEntryResponse}
// @Router       /api/inventory-history/recent [get]
func (h *HistoryHandler) Recent(c *fiber.Ctx) error {
	since := time.Now().AddDate(0, -2, 0)
	if days := c.QueryInt("days", 0); days > 0 {
		since = time.Now().AddDate(0, 0, -days)
	}
	out, err := h.uc.HistorySince(c.UserContext(), since)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}
