package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/usecase"
	"github.com/ceylonpepper/pepperworks-api/pkg/validate"
)

// FarmerHandler maneja el registro de agricultores proveedores.
type FarmerHandler struct {
	uc *usecase.FarmerUseCase
}

// NewFarmerHandler construye el handler.
func NewFarmerHandler(uc *usecase.FarmerUseCase) *FarmerHandler {
	return &FarmerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar agricultor
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFarmerRequest  true  "Datos del agricultor"
// @Success      201   {object}  dto.Response{data=dto.FarmerResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/farmers [post]
func (h *FarmerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFarmerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	if msgs := validate.Struct(in); msgs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrFields("validación fallida", msgs))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// GetByID godoc
// @Summary      Obtener agricultor por ID
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agricultor"
// @Success      200  {object}  dto.Response{data=dto.FarmerResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/farmers/{id} [get]
func (h *FarmerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar agricultores
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre o dirección de finca"
// @Param        status  query  string  false  "Active | Inactive | all"
// @Success      200  {object}  dto.Response{data=[]dto.FarmerResponse}
// @Router       /api/farmers [get]
func (h *FarmerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"), c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// Stats godoc
// @Summary      Métricas de agricultores
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.FarmerStatsResponse}
// @Router       /api/farmers/stats [get]
func (h *FarmerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Update godoc
// @Summary      Actualizar agricultor
// @Tags         farmers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agricultor"
// @Param        body  body  dto.UpdateFarmerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.FarmerResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/farmers/{id} [put]
func (h *FarmerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFarmerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete godoc
// @Summary      Eliminar agricultor
// @Tags         farmers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agricultor"
// @Success      200  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Router       /api/farmers/{id} [delete]
func (h *FarmerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKMessage("agricultor eliminado"))
}
