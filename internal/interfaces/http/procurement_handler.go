package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
)

// ProcurementHandler sirve la página de aprovisionamiento con sus pestañas
// gros/détail.
type ProcurementHandler struct {
	uc    *usecase.ProcurementUseCase
	views *views.Registry
}

// NewProcurementHandler construye el handler.
func NewProcurementHandler(uc *usecase.ProcurementUseCase, reg *views.Registry) *ProcurementHandler {
	return &ProcurementHandler{uc: uc, views: reg}
}

// Show monta el contenedor: una carga de magasins y la pestaña por defecto
// del rol.
func (h *ProcurementHandler) Show(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)

	view := h.uc.Load(c.Context(), sess, auth, usecase.DefaultTab(sess.User.Role))
	return h.render(c, sess.User.Role, sess.User.PosOption, view)
}

// SwitchTab cambia de pestaña sirviendo la instantánea del montaje, sin
// volver al backend.
func (h *ProcurementHandler) SwitchTab(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)
	tab := entity.TabID(c.Params("tab"))

	view := h.uc.SwitchTab(c.Context(), sess, auth, tab)
	return h.render(c, sess.User.Role, sess.User.PosOption, view)
}

func (h *ProcurementHandler) render(c *fiber.Ctx, role, posOption string, data any) error {
	page := views.Page{
		Title: "Approvisionnement",
		Nav:   usecase.AccessibleRoutes(role, posOption),
		Data:  data,
	}
	html, err := h.views.Render("approvisionnement", page)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
