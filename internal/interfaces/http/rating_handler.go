package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/StoreRating-api/internal/application/dto"
	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
)

// RatingHandler envío y consulta de calificaciones propias.
type RatingHandler struct {
	uc *apprating.SubmitRatingUseCase
}

// NewRatingHandler construye el handler.
func NewRatingHandler(uc *apprating.SubmitRatingUseCase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// Submit godoc
// @Summary      Calificar una tienda (crea o actualiza)
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SubmitRatingRequest  true  "storeId, rating"
// @Success      200   {object}  dto.SubmitRatingResponse
// @Success      201   {object}  dto.SubmitRatingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ratings [post]
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitRatingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Submit(c.UserContext(), apprating.SubmitRatingInput{
		UserID:  GetUserID(c),
		StoreID: in.StoreID,
		Value:   in.Rating,
	})
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusOK
	if out.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(out)
}

// GetMine godoc
// @Summary      Mi calificación de una tienda
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id de la tienda"
// @Success      200  {object}  dto.UserRatingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/rating [get]
func (h *RatingHandler) GetMine(c *fiber.Ctx) error {
	out, err := h.uc.GetUserRating(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
