package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
	"github.com/ceylonpepper/pepperworks-api/internal/infrastructure/excel"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler genera reportes descargables en Excel.
type ReportHandler struct {
	ledger      *inventory.LedgerUseCase
	stock       *inventory.ProductStockUseCase
	procurement *procurement.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(ledger *inventory.LedgerUseCase, stock *inventory.ProductStockUseCase, proc *procurement.UseCase) *ReportHandler {
	return &ReportHandler{ledger: ledger, stock: stock, procurement: proc}
}

// InventoryHistory godoc
// @Summary      Reporte Excel del historial de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        days  query  int  false  "Días hacia atrás"  default(30)
// @Success      200   {file}  binary
// @Router       /api/reports/inventory-history.xlsx [get]
func (h *ReportHandler) InventoryHistory(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days <= 0 {
		days = 30
	}
	entries, err := h.stock.HistorySince(c.UserContext(), time.Now().AddDate(0, 0, -days))
	if err != nil {
		return fail(c, err)
	}
	bytes, err := excel.InventoryHistoryWorkbook(entries)
	if err != nil {
		return fail(c, err)
	}
	return sendWorkbook(c, "historial-inventario.xlsx", bytes)
}

// RawMaterials godoc
// @Summary      Reporte Excel del libro de materia prima
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/raw-materials.xlsx [get]
func (h *ReportHandler) RawMaterials(c *fiber.Ctx) error {
	materials, err := h.ledger.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	bytes, err := excel.RawMaterialsWorkbook(materials)
	if err != nil {
		return fail(c, err)
	}
	return sendWorkbook(c, "libro-materia-prima.xlsx", bytes)
}

// Payments godoc
// @Summary      Reporte Excel de pagos a agricultores
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        farmerId  query  string  false  "Filtrar por agricultor"
// @Success      200  {file}  binary
// @Router       /api/reports/payments.xlsx [get]
func (h *ReportHandler) Payments(c *fiber.Ctx) error {
	payments, err := h.procurement.ListPayments(c.UserContext(), c.Query("farmerId"))
	if err != nil {
		return fail(c, err)
	}
	bytes, err := excel.PaymentsWorkbook(payments)
	if err != nil {
		return fail(c, err)
	}
	return sendWorkbook(c, "pagos-agricultores.xlsx", bytes)
}

func sendWorkbook(c *fiber.Ctx, filename string, bytes []byte) error {
	c.Set(fiber.HeaderContentType, contentTypeXLSX)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(bytes)
}
