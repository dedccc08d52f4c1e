package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceylonpepper/pepperworks-api/internal/application/dto"
	"github.com/ceylonpepper/pepperworks-api/internal/application/inventory"
	"github.com/ceylonpepper/pepperworks-api/pkg/validate"
)

// RawMaterialHandler maneja el libro de materia prima (protegido).
type RawMaterialHandler struct {
	uc *inventory.LedgerUseCase
}

// NewRawMaterialHandler construye el handler.
func NewRawMaterialHandler(uc *inventory.LedgerUseCase) *RawMaterialHandler {
	return &RawMaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fila del libro de materia prima
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRawMaterialRequest  true  "Datos del libro"
// @Success      201   {object}  dto.Response{data=dto.RawMaterialResponse}
// @Failure      400   {object}  dto.Response
// @Router       /api/raw-materials [post]
func (h *RawMaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRawMaterialRequest
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
// @Summary      Obtener fila del libro por ID
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la fila"
// @Success      200  {object}  dto.Response{data=dto.RawMaterialResponse}
// @Failure      404  {object}  dto.Response
// @Router       /api/raw-materials/{id} [get]
func (h *RawMaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// List godoc
// @Summary      Listar el libro de materia prima
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.RawMaterialResponse}
// @Router       /api/raw-materials [get]
func (h *RawMaterialHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// ListLowStock godoc
// @Summary      Listar filas en LowStock
// @Tags         raw-materials
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]dto.RawMaterialResponse}
// @Router       /api/raw-materials/low-stock [get]
func (h *RawMaterialHandler) ListLowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(len(out), out))
}

// Update godoc
// @Summary      Actualizar cantidad y/o umbral de reorden
// @Tags         raw-materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila"
// @Param        body  body  dto.UpdateRawMaterialRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.Response{data=dto.RawMaterialResponse}
// @Failure      400   {object}  dto.Response
// @Failure      404   {object}  dto.Response
// @Router       /api/raw-materials/{id} [put]
func (h *RawMaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateRawMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("cuerpo inválido"))
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}
