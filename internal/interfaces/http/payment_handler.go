package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/application/payment"
)

// PaymentHandler expone el puente de pago: la configuración del widget y la
// interpretación de su reporte de finalización.
type PaymentHandler struct {
	bridge *payment.Bridge
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(bridge *payment.Bridge) *PaymentHandler {
	return &PaymentHandler{bridge: bridge}
}

// CheckoutOptions godoc
// @Summary      Configuración del widget de pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutOptionsRequest  true  "Monto, descripción y metadatos"
// @Success      200   {object}  dto.CheckoutOptions
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /payments/checkout-options [post]
func (h *PaymentHandler) CheckoutOptions(c *fiber.Ctx) error {
	var in dto.CheckoutOptionsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.bridge.CheckoutOptions(in)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Interpretar la finalización reportada por el widget
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        type  query  string  false  "Tipo de pago (event | subscription)"  default(event)
// @Param        nav   query  string  false  "Estrategia de navegación (push | redirect)"  default(push)
// @Param        body  body   dto.PaymentCompletion  true  "Reporte del widget"
// @Success      200   {object}  map[string]string
// @Success      204   "Diálogo cerrado por el usuario"
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /payments/complete [post]
func (h *PaymentHandler) Complete(c *fiber.Ctx) error {
	var in dto.PaymentCompletion
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	paymentType := c.Query("type", payment.TypeEvent)
	out, err := h.bridge.Complete(in, paymentType)
	if err != nil {
		if errors.Is(err, payment.ErrDismissed) {
			// Cancelación silenciosa: sin aviso y sin navegación.
			return c.SendStatus(fiber.StatusNoContent)
		}
		var failure *payment.FailureError
		if errors.As(err, &failure) {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{Code: "PAYMENT_FAILED", Message: failure.Error()})
		}
		return err
	}

	// La estrategia de navegación la decide el integrador por query param:
	// push devuelve el destino al cliente, redirect navega desde el servidor.
	if c.Query("nav", "push") == "redirect" {
		return c.Redirect(out.CallbackURL, fiber.StatusSeeOther)
	}
	return c.JSON(fiber.Map{"redirect": out.CallbackURL})
}
