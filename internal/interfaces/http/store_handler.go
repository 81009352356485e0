package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
)

// StoreHandler alta y listados de tiendas.
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tienda junto con su dueño
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStoreRequest  true  "tienda y credenciales del dueño"
// @Success      201   {object}  dto.StoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/stores [post]
func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListAdmin godoc
// @Summary      Listar tiendas (administrador)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        name       query  string  false  "contiene"
// @Param        email      query  string  false  "contiene"
// @Param        address    query  string  false  "contiene"
// @Param        sortBy     query  string  false  "name | email | address | rating"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  dto.StoreAdminListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/stores [get]
func (h *StoreHandler) ListAdmin(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListForAdmin(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tiendas con mi calificación
// @Tags         stores
// @Produce      json
// @Security     BearerAuth
// @Param        name       query  string  false  "contiene"
// @Param        address    query  string  false  "contiene"
// @Param        sortBy     query  string  false  "name | address | rating"
// @Param        sortOrder  query  string  false  "asc | desc"
// @Success      200  {object}  dto.StoreUserListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stores [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListForUser(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
