package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/payment"
	"github.com/jhoicas/pos-front/internal/application/refresh"
	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC   *usecase.DashboardUseCase
	ProcurementUC *usecase.ProcurementUseCase
	PosModeUC     *usecase.PosModeUseCase
	Bridge        *payment.Bridge
	Refresh       *refresh.Manager
	Views         *views.Registry
	Sessions      gateway.SessionStore
	Dashboards    gateway.DashboardGateway
	PDF           OrdersPDFGenerator
	Logger        *logger.Logger

	CookieName string
	SessionTTL time.Duration
	JWTSecret  string
	LoginURL   string
	AppEnv     string
}

// Router registra las rutas de la aplicación. Las páginas HTML redirigen al
// login cuando no hay sesión; los endpoints JSON responden 401. El middleware
// va por ruta y no por grupo "/" para que cada superficie conserve su
// comportamiento sin sesión.
func Router(app *fiber.App, deps RouterDeps) {
	authCfg := AuthConfig{
		Sessions:   deps.Sessions,
		CookieName: deps.CookieName,
		JWTSecret:  deps.JWTSecret,
		LoginURL:   deps.LoginURL,
	}
	pageAuth := SessionMiddleware(authCfg, true)
	apiAuth := SessionMiddleware(authCfg, false)

	// Sesión (creación pública, el resto protegido)
	sessionHandler := NewSessionHandler(deps.Sessions, deps.CookieName, deps.SessionTTL, deps.JWTSecret, deps.Logger)
	app.Post("/session", sessionHandler.Create)
	app.Get("/session", apiAuth, sessionHandler.Get)
	app.Delete("/session", apiAuth, sessionHandler.Delete)

	// Dashboard adaptativo + ciclo de refresco del serveur
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Views, deps.Refresh)
	app.Get("/dashboard", pageAuth, dashboardHandler.Show)
	app.Get("/dashboard/fragment", apiAuth, dashboardHandler.Fragment)
	app.Post("/dashboard/unmount", apiAuth, dashboardHandler.Unmount)

	// Aprovisionamiento
	procurementHandler := NewProcurementHandler(deps.ProcurementUC, deps.Views)
	app.Get("/approvisionnement", pageAuth, procurementHandler.Show)
	app.Get("/approvisionnement/tab/:tab", pageAuth, procurementHandler.SwitchTab)

	// Configuración del modo POS
	posModeHandler := NewPosModeHandler(deps.PosModeUC, deps.Views)
	app.Get("/pos-mode", pageAuth, posModeHandler.Show)
	app.Post("/pos-mode", pageAuth, posModeHandler.Confirm)

	// Export PDF
	exportHandler := NewExportHandler(deps.Dashboards, deps.PDF)
	app.Get("/export/orders.pdf", pageAuth, exportHandler.OrdersPDF)

	// Puente de pago
	paymentHandler := NewPaymentHandler(deps.Bridge)
	app.Post("/payments/checkout-options", apiAuth, paymentHandler.CheckoutOptions)
	app.Post("/payments/complete", apiAuth, paymentHandler.Complete)

	// Introspección: solo fuera de producción
	if deps.AppEnv != "production" {
		debugHandler := NewDebugHandler(deps.Views)
		app.Get("/debug", pageAuth, debugHandler.Show)
	}
}
