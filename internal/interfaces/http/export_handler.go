package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

// OrdersPDFGenerator genera el listado imprimible de commandes.
type OrdersPDFGenerator interface {
	GenerateOrdersPDF(ctx context.Context, tenantName, serverName string, orders []entity.Order) ([]byte, error)
}

// ExportHandler sirve el export PDF de las commandes del serveur.
type ExportHandler struct {
	dashboards gateway.DashboardGateway
	pdf        OrdersPDFGenerator
}

// NewExportHandler construye el handler.
func NewExportHandler(dashboards gateway.DashboardGateway, pdf OrdersPDFGenerator) *ExportHandler {
	return &ExportHandler{dashboards: dashboards, pdf: pdf}
}

// OrdersPDF godoc
// @Summary      Export PDF de las commandes del serveur
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /export/orders.pdf [get]
func (h *ExportHandler) OrdersPDF(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)

	// A diferencia del tablero, un export no puede degradar a vacío en
	// silencio: si la lectura falla se informa.
	orders, err := h.dashboards.Orders(c.Context(), auth)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM", Message: "impossible de lire les commandes"})
	}

	doc, err := h.pdf.GenerateOrdersPDF(c.Context(), sess.Tenant.Name, sess.User.Name, orders)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "génération du PDF impossible"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="mes-commandes.pdf"`)
	return c.Send(doc)
}
