package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/usecase"
	"github.com/ceylonpepper/pepperworks-api/pkg/validate"
)

// CustomerHandler maneja registro, login y perfil de clientes de la tienda,
// más el listado administrativo.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cliente (público)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.Response{data=dto.CustomerLoginResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/customers/register [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if msgs := validate.Struct(in); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrFields("validación fallida", msgs))
	}
	out, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Login godoc
// @Summary      Login de cliente (público)
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginCustomerRequest  true  "Credenciales"
// @Success      200   {object}  dto.Response{data=dto.CustomerLoginResponse}
// @Failure      401   {object}  dto.Response
// @Router       /api/customers/login [post]
func (h *CustomerHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if msgs := validate.Struct(in); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrFields("validación fallida", msgs))
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Profile godoc
// @Summary      Perfil del cliente autenticado
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.CustomerResponse}
// @Failure      401  {object}  dto.Response
// @Router       /api/customers/profile [get]
func (h *CustomerHandler) Profile(c *fiber.Ctx) error {
	out, err := h.uc.Profile(c.UserContext(), GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// UpdateProfile godoc
// @Summary      Actualizar perfil del cliente autenticado
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCustomerProfileRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.CustomerResponse}
// @Failure      401   {object}  dto.Response
// @Router       /api/customers/profile [put]
func (h *CustomerHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateCustomerProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.UpdateProfile(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar clientes (administración)
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.CustomerResponse}
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// Stats godoc
// @Summary      Métricas de clientes
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.CustomerStatsResponse}
// @Router       /api/customers/stats [get]
func (h *CustomerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}
