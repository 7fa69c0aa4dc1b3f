package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/jwt"
)

// Locals keys para la sesión y las credenciales en Fiber.
const (
	LocalSession = "session"
	LocalAuth    = "auth"
)

// AuthConfig parámetros del middleware de sesión.
type AuthConfig struct {
	Sessions   gateway.SessionStore
	CookieName string
	JWTSecret  string
	LoginURL   string
}

// SessionMiddleware resuelve la sesión de la petición: primero la cookie
// contra el store, y como respaldo un Bearer token del backend (sesión
// efímera construida desde sus claims). redirect decide qué pasa sin sesión:
// las páginas HTML redirigen al login, los endpoints JSON responden 401.
func SessionMiddleware(cfg AuthConfig, redirect bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess, ok := sessionFromCookie(c, cfg); ok {
			return withSession(c, sess)
		}
		if sess, ok := sessionFromBearer(c, cfg); ok {
			return withSession(c, sess)
		}
		if redirect {
			return c.Redirect(cfg.LoginURL, fiber.StatusSeeOther)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
	}
}

func withSession(c *fiber.Ctx, sess entity.Session) error {
	c.Locals(LocalSession, sess)
	c.Locals(LocalAuth, gateway.Auth{Token: sess.Token, TenantID: sess.Tenant.ID})
	return c.Next()
}

func sessionFromCookie(c *fiber.Ctx, cfg AuthConfig) (entity.Session, bool) {
	id := c.Cookies(cfg.CookieName)
	if id == "" {
		return entity.Session{}, false
	}
	sess, err := cfg.Sessions.Get(c.Context(), id)
	if err != nil {
		if !errors.Is(err, gateway.ErrSessionNotFound) {
			// Fallo de infraestructura: se trata como sin sesión, el log
			// queda en el store.
			return entity.Session{}, false
		}
		return entity.Session{}, false
	}
	return sess, true
}

// sessionFromBearer acepta el token del backend directamente (clientes API
// sin cookie). La sesión resultante no se persiste.
func sessionFromBearer(c *fiber.Ctx, cfg AuthConfig) (entity.Session, bool) {
	if cfg.JWTSecret == "" {
		return entity.Session{}, false
	}
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return entity.Session{}, false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return entity.Session{}, false
	}
	claims, err := jwt.Parse(cfg.JWTSecret, token)
	if err != nil {
		return entity.Session{}, false
	}
	sess := entity.Session{
		Token: token,
		User: entity.User{
			ID:        claims.UserID,
			Role:      claims.Role,
			PosOption: claims.PosOption,
		},
		Tenant: entity.Tenant{ID: claims.TenantID},
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	} else {
		sess.ExpiresAt = time.Now().Add(time.Hour)
	}
	return sess, true
}

// GetSession devuelve la sesión del contexto (después del middleware).
func GetSession(c *fiber.Ctx) entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return entity.Session{}
	}
	s, _ := v.(entity.Session)
	return s
}

// GetAuth devuelve las credenciales del contexto (después del middleware).
func GetAuth(c *fiber.Ctx) gateway.Auth {
	v := c.Locals(LocalAuth)
	if v == nil {
		return gateway.Auth{}
	}
	a, _ := v.(gateway.Auth)
	return a
}
