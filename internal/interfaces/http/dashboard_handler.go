package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/StoreRating-api/internal/application/analytics"
	"github.com/jhoicas/StoreRating-api/internal/application/report"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
)

// DashboardHandler paneles del administrador y del dueño de tienda.
type DashboardHandler struct {
	adminUC  *appanalytics.DashboardUseCase
	ownerUC  *usecase.OwnerUseCase
	reportUC *report.PDFUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(adminUC *appanalytics.DashboardUseCase, ownerUC *usecase.OwnerUseCase, reportUC *report.PDFUseCase) *DashboardHandler {
	return &DashboardHandler{adminUC: adminUC, ownerUC: ownerUC, reportUC: reportUC}
}

// Admin godoc
// @Summary      Totales del sistema
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AdminDashboardResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.adminUC.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Owner godoc
// @Summary      Panel del dueño: promedio y quién calificó
// @Tags         store-owner
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.OwnerDashboardResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-owner/dashboard [get]
func (h *DashboardHandler) Owner(c *fiber.Ctx) error {
	out, err := h.ownerUC.Dashboard(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OwnerPDF godoc
// @Summary      Reporte PDF de calificaciones de la tienda
// @Tags         store-owner
// @Produce      application/pdf
// @Security     BearerAuth
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/store-owner/dashboard/pdf [get]
func (h *DashboardHandler) OwnerPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.DownloadOwnerReport(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
