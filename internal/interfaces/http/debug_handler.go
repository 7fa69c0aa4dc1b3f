package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
)

// DebugHandler sirve la página de introspección de sesión: identidad, tenant,
// presencia del token y rutas accesibles del rol. Solo se registra fuera de
// producción.
type DebugHandler struct {
	views *views.Registry
}

// NewDebugHandler construye el handler.
func NewDebugHandler(reg *views.Registry) *DebugHandler {
	return &DebugHandler{views: reg}
}

// Show renderiza el estado actual de la sesión. El token nunca se muestra
// completo, solo un prefijo para confirmar su presencia.
func (h *DebugHandler) Show(c *fiber.Ctx) error {
	sess := GetSession(c)

	prefix := sess.Token
	if len(prefix) > 12 {
		prefix = prefix[:12]
	}

	view := dto.DebugView{
		UserName:     sess.User.Name,
		UserEmail:    sess.User.Email,
		UserID:       sess.User.ID,
		Role:         usecase.RoleLabel(sess.User.Role),
		TenantName:   sess.Tenant.Name,
		TenantID:     sess.Tenant.ID,
		BusinessType: sess.Tenant.BusinessType,
		TokenExists:  sess.Token != "",
		TokenPrefix:  prefix,
		Routes:       usecase.AccessibleRoutes(sess.User.Role, sess.User.PosOption),
	}

	page := views.Page{
		Title: "Debug session",
		Nav:   usecase.AccessibleRoutes(sess.User.Role, sess.User.PosOption),
		Data:  view,
	}
	html, err := h.views.Render("debug", page)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
