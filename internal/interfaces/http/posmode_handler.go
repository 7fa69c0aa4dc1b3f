package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/infrastructure/backend"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
)

// PosModeHandler sirve la pantalla de configuración del modo POS.
type PosModeHandler struct {
	uc    *usecase.PosModeUseCase
	views *views.Registry
}

// NewPosModeHandler construye el handler.
func NewPosModeHandler(uc *usecase.PosModeUseCase, reg *views.Registry) *PosModeHandler {
	return &PosModeHandler{uc: uc, views: reg}
}

// Show presenta las tarjetas de modo con la selección actual del tenant.
func (h *PosModeHandler) Show(c *fiber.Ctx) error {
	sess := GetSession(c)
	view := dto.PosModeView{
		Modes:       h.uc.Modes(sess.Tenant.PosMode),
		CurrentMode: sess.Tenant.PosMode,
	}
	return h.render(c, sess, view)
}

// Confirm persiste el modo elegido. Sin selección válida la página vuelve con
// el aviso local, sin tocar la red. Tras el acuse del backend se muestra el
// éxito y la página navega sola al dashboard con el retardo configurado.
func (h *PosModeHandler) Confirm(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)

	var in dto.ConfirmPosModeRequest
	if err := c.BodyParser(&in); err != nil {
		// Cuerpo vacío o ilegible equivale a no haber elegido nada.
		in.PosMode = ""
	}

	updated, err := h.uc.Confirm(c.Context(), sess, auth, in.PosMode)
	if err != nil {
		view := dto.PosModeView{
			Modes:       h.uc.Modes(in.PosMode),
			CurrentMode: sess.Tenant.PosMode,
			Error:       confirmErrorMessage(err),
		}
		return h.render(c, sess, view)
	}

	view := dto.PosModeView{
		Modes:       h.uc.Modes(updated.Tenant.PosMode),
		CurrentMode: updated.Tenant.PosMode,
		Success:     "Mode POS configuré avec succès.",
		RedirectTo:  "/dashboard",
		RedirectIn:  int(usecase.RedirectDelay.Seconds()),
	}
	return h.render(c, updated, view)
}

func confirmErrorMessage(err error) string {
	if errors.Is(err, usecase.ErrNoModeSelected) {
		return "Veuillez sélectionner un mode avant de confirmer."
	}
	if msg := backend.ServerMessage(err); msg != "" {
		return msg
	}
	return "La configuration a échoué. Réessayez."
}

func (h *PosModeHandler) render(c *fiber.Ctx, sess entity.Session, data dto.PosModeView) error {
	page := views.Page{
		Title: "Configuration du mode POS",
		Nav:   usecase.AccessibleRoutes(sess.User.Role, sess.User.PosOption),
		Data:  data,
	}
	html, err := h.views.Render("posmode", page)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
