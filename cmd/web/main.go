package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/application/payment"
	"github.com/jhoicas/pos-front/internal/application/refresh"
	"github.com/jhoicas/pos-front/internal/application/usecase"
	"github.com/jhoicas/pos-front/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/pos-front/internal/infrastructure/pdf"
	"github.com/jhoicas/pos-front/internal/infrastructure/redisstore"
	httpRouter "github.com/jhoicas/pos-front/internal/interfaces/http"
	"github.com/jhoicas/pos-front/internal/interfaces/http/views"
	"github.com/jhoicas/pos-front/pkg/config"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// snapshotTTL vigencia de la instantánea de magasins entre cambios de pestaña.
const snapshotTTL = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	cancelPing()

	sessionStore := redisstore.NewSessionStore(rdb, cfg.Session.TTL)
	snapshotCache := redisstore.NewSnapshotCache(rdb, snapshotTTL)

	backendClient, err := backend.NewClient(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.Timeout})
	if err != nil {
		log.Fatal().Err(err).Msg("cliente del backend")
	}
	warehouseGW := backend.NewWarehouseGateway(backendClient)
	dashboardGW := backend.NewDashboardGateway(backendClient)
	tenantGW := backend.NewTenantConfigGateway(backendClient)

	procurementUC := usecase.NewProcurementUseCase(warehouseGW, snapshotCache, log)
	dashboardUC := usecase.NewDashboardUseCase(dashboardGW, log)
	posModeUC := usecase.NewPosModeUseCase(tenantGW, sessionStore, log)

	var keys payment.KeySource
	if cfg.Payment.KeySource == "env" {
		keys = payment.EnvKeySource{Var: cfg.Payment.PublicKeyEnv}
	} else {
		keys = payment.StaticKeySource{Key: cfg.Payment.PublicKey}
	}
	bridge := payment.NewBridge(keys, cfg.Payment.CallbackPath, log)

	refreshMgr := refresh.NewManager(cfg.Refresh.Interval)
	viewRegistry := views.NewRegistry(log)
	pdfGenerator := infrapdf.NewOrdersPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Frontera de errores de render: un fallo de plantilla o cualquier
		// error no manejado termina aquí, nunca en una página a medias.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("petición falló")
			return c.Status(code).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "une erreur est survenue"})
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Front",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:   dashboardUC,
		ProcurementUC: procurementUC,
		PosModeUC:     posModeUC,
		Bridge:        bridge,
		Refresh:       refreshMgr,
		Views:         viewRegistry,
		Sessions:      sessionStore,
		Dashboards:    dashboardGW,
		PDF:           pdfGenerator,
		Logger:        log,
		CookieName:    cfg.Session.CookieName,
		SessionTTL:    cfg.Session.TTL,
		JWTSecret:     cfg.JWT.Secret,
		LoginURL:      cfg.Session.LoginURL,
		AppEnv:        cfg.App.Env,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Detener los ciclos de refresco antes que el servidor: cero cargas en vuelo.
	refreshMgr.StopAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
