package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/entity"
	"github.com/ceylonpepper/pepperworks-api/internal/domain/repository"
	"github.com/ceylonpepper/pepperworks-api/internal/infrastructure/pdf"
)

// PaymentHandler expone los pagos a agricultores y su comprobante PDF.
type PaymentHandler struct {
	uc       *procurement.UseCase
	payments repository.FarmerPaymentRepository
	farmers  repository.FarmerRepository
	receipts *pdf.ReceiptGenerator
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(
	uc *procurement.UseCase,
	payments repository.FarmerPaymentRepository,
	farmers repository.FarmerRepository,
	receipts *pdf.ReceiptGenerator,
) *PaymentHandler {
	return &PaymentHandler{uc: uc, payments: payments, farmers: farmers, receipts: receipts}
}

// List godoc
// @Summary      Listar pagos a agricultores
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        farmerId  query  string  false  "Filtrar por agricultor"
// @Success      200  {object}  dto.Response{data=[]dto.PaymentResponse}
// @Router       /api/farmer-payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListPayments(c.UserContext(), c.Query("farmerId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// GetByID godoc
// @Summary      Obtener pago por su ID humano (FP-####)
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        paymentId  path  string  true  "ID del pago"
// @Success      200  {object}  dto.Response{data=dto.PaymentResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/farmer-payments/{paymentId} [get]
func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetPayment(c.UserContext(), c.Params("paymentId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Receipt godoc
// @Summary      Descargar el comprobante PDF de un pago
// @Tags         payments
// @Security     Bearer
// @Produce      application/pdf
// @Param        paymentId  path  string  true  "ID del pago"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.Response
// @Router       /api/farmer-payments/{paymentId}/receipt [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	payment, err := h.payments.GetByPaymentID(c.Params("paymentId"))
	if err != nil {
		return fail(c, err)
	}
	farmer, err := h.farmers.GetByID(payment.FarmerID)
	if err != nil {
		return fail(c, err)
	}
	bytes, err := h.receipts.GeneratePaymentReceipt(payment, farmer)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+receiptFilename(payment)+`"`)
	return c.Send(bytes)
}

func receiptFilename(p *entity.FarmerPayment) string {
	return "comprobante-" + p.PaymentID + ".pdf"
}
