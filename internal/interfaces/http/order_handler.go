package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/procurement"
	"github.com/ceylonpepper/pepperworks-api/pkg/validate"
)

// OrderHandler maneja las órdenes de compra de materia prima.
type OrderHandler struct {
	uc *procurement.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *procurement.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear orden de materia prima a un agricultor
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.Response{data=dto.OrderResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/rm-orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if msgs := validate.Struct(in); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrFields("validación fallida", msgs))
	}
	out, err := h.uc.CreateOrder(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status           query  string  false  "Pending | Delivered"
// @Param        rawMaterialType  query  string  false  "Tipo de pimienta"
// @Success      200  {object}  dto.Response{data=[]dto.OrderResponse}
// @Router       /api/rm-orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOrders(c.UserContext(), c.Query("status"), c.Query("rawMaterialType"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// GetByID godoc
// @Summary      Obtener orden por su ID humano (RMO-####)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        rmOrderId  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response{data=dto.OrderResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/rm-orders/{rmOrderId} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetOrder(c.UserContext(), c.Params("rmOrderId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Deliver godoc
// @Summary      Marcar la entrega de una orden
// @Description  Acredita el libro de materia prima y genera el pago al agricultor.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        rmOrderId  path  string  true  "ID de la orden"
// @Param        body       body  dto.DeliverOrderRequest  true  "Cantidad entregada"
// @Success      200  {object}  dto.Response{data=dto.OrderResponse}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/rm-orders/{rmOrderId}/deliver [patch]
func (h *OrderHandler) Deliver(c *fiber.Ctx) error {
	var in dto.DeliverOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Deliver(c.UserContext(), c.Params("rmOrderId"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar una orden Pending
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        rmOrderId  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.Response
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/rm-orders/{rmOrderId} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteOrder(c.UserContext(), c.Params("rmOrderId")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKMessage("orden eliminada"))
}

// EligibleFarmers godoc
// @Summary      Agricultores elegibles para una orden
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        materialType    query  string  true   "Tipo de pimienta"
// @Param        requestedQtyKg  query  number  false  "Cantidad solicitada (kg)"
// @Success      200  {object}  dto.Response{data=[]dto.EligibleFarmerResponse}
// @Router       /api/rm-orders/eligible-farmers [get]
func (h *OrderHandler) EligibleFarmers(c *fiber.Ctx) error {
	var q dto.EligibleFarmersQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("parámetros de consulta inválidos"))
	}
	out, err := h.uc.EligibleFarmers(c.UserContext(), q)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}
