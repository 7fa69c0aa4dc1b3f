package http

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/application/refresh"
	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
)

// DashboardHandler sirve el dashboard adaptativo: resuelve la vista por rol,
// la renderiza y administra el ciclo de refresco del tablero del serveur.
type DashboardHandler struct {
	uc      *usecase.DashboardUseCase
	views   *views.Registry
	refresh *refresh.Manager

	// holders conserva por clave de montaje la última instantánea publicada
	// por el ciclo de refresco (last-completed-wins).
	holders sync.Map // string -> *refresh.Holder[dto.ServerDashboardView]
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase, reg *views.Registry, mgr *refresh.Manager) *DashboardHandler {
	h := &DashboardHandler{uc: uc, views: reg, refresh: mgr}
	// Sin ciclo no hay dueño de la instantánea: se descarta con la clave para
	// no retener un tablero viejo por cada usuario durante la vida del proceso.
	mgr.OnRelease(func(key string) { h.holders.Delete(key) })
	return h
}

func mountKey(auth gateway.Auth, sess entity.Session) string {
	return auth.TenantID + ":" + sess.User.ID
}

func (h *DashboardHandler) holder(key string) *refresh.Holder[dto.ServerDashboardView] {
	v, _ := h.holders.LoadOrStore(key, refresh.NewHolder[dto.ServerDashboardView]())
	return v.(*refresh.Holder[dto.ServerDashboardView])
}

// Show renderiza el dashboard del rol actual. Para el serveur además registra
// el montaje del ciclo de refresco; las demás vistas son estáticas.
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)
	view := usecase.ResolveView(sess.User.Role)

	// Precarga especulativa: el magasinier y el gérant suelen navegar a
	// aprovisionamiento justo después del dashboard.
	switch view {
	case entity.ViewMagasinier, entity.ViewManager:
		h.views.Prefetch("approvisionnement")
	}

	if view == entity.ViewServer {
		return h.showServer(c, sess, auth)
	}

	page := views.Page{
		Title: "Dashboard",
		Nav:   usecase.AccessibleRoutes(sess.User.Role, sess.User.PosOption),
		Data: dto.GenericDashboardView{
			UserName:   sess.User.Name,
			RoleLabel:  usecase.RoleLabel(sess.User.Role),
			TenantName: sess.Tenant.Name,
			PosMode:    sess.Tenant.PosMode,
		},
	}
	html, err := h.views.Render(string(view), page)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

func (h *DashboardHandler) showServer(c *fiber.Ctx, sess entity.Session, auth gateway.Auth) error {
	key := mountKey(auth, sess)
	hold := h.holder(key)
	userName := sess.User.Name

	// El ciclo de fondo sobrevive a la petición: contexto propio, no el de c.
	// El vencimiento de la sesión acota el ciclo si el beacon nunca llega.
	h.refresh.Mount(context.Background(), key, sess.ExpiresAt, func(ctx context.Context) {
		hold.Set(h.uc.ServerDashboard(ctx, auth, userName))
	})

	// Si la carga inmediata del montaje aún no publicó, se consulta en línea
	// para no renderizar un tablero vacío.
	view, ok := hold.Get()
	if !ok {
		view = h.uc.ServerDashboard(c.Context(), auth, userName)
	}

	page := views.Page{
		Title: "Mes Commandes",
		Nav:   usecase.AccessibleRoutes(sess.User.Role, sess.User.PosOption),
		Data:  view,
	}
	html, err := h.views.Render(string(entity.ViewServer), page)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}

// Fragment godoc
// @Summary      Última instantánea del tablero del serveur
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ServerDashboardView
// @Router       /dashboard/fragment [get]
func (h *DashboardHandler) Fragment(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)
	key := mountKey(auth, sess)

	// Cada sondeo reafirma que la sesión sigue viva y prorroga el ciclo.
	h.refresh.Extend(key, sess.ExpiresAt)

	hold := h.holder(key)
	view, ok := hold.Get()
	if !ok {
		view = h.uc.ServerDashboard(c.Context(), auth, sess.User.Name)
	}
	return c.JSON(fiber.Map{
		"version": hold.Version(),
		"view":    view,
	})
}

// Unmount recibe el beacon de desmontaje del cliente y libera el ciclo de
// refresco. Idempotente: desmontar sin montaje previo no hace nada.
func (h *DashboardHandler) Unmount(c *fiber.Ctx) error {
	sess := GetSession(c)
	auth := GetAuth(c)
	h.refresh.Unmount(mountKey(auth, sess))
	return c.SendStatus(fiber.StatusNoContent)
}
