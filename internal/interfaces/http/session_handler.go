package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/jwt"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// SessionHandler administra el ciclo de vida de la sesión local: se crea con
// el token que entrega el login del backend, se consulta y se destruye.
type SessionHandler struct {
	sessions   gateway.SessionStore
	cookieName string
	ttl        time.Duration
	jwtSecret  string
	log        *logger.Logger
}

// NewSessionHandler construye el handler.
func NewSessionHandler(sessions gateway.SessionStore, cookieName string, ttl time.Duration, jwtSecret string, log *logger.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		cookieName: cookieName,
		ttl:        ttl,
		jwtSecret:  jwtSecret,
		log:        log.Component("session"),
	}
}

// Create godoc
// @Summary      Crear sesión local tras el login del backend
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSessionRequest  true  "Token y proyecciones de usuario/tenant"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /session [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token es requerido"})
	}

	expiresAt := time.Now().Add(h.ttl)
	if h.jwtSecret != "" {
		claims, err := jwt.Parse(h.jwtSecret, in.Token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(expiresAt) {
			// La sesión local nunca vive más que el token del backend.
			expiresAt = claims.ExpiresAt.Time
		}
		// Los claims mandan sobre el payload para los campos de identidad.
		if claims.UserID != "" {
			in.User.ID = claims.UserID
		}
		if claims.Role != "" {
			in.User.Role = claims.Role
		}
		if claims.TenantID != "" {
			in.Tenant.ID = claims.TenantID
		}
		if claims.PosOption != "" {
			in.User.PosOption = claims.PosOption
		}
	}

	sess := entity.Session{
		ID:    uuid.NewString(),
		Token: in.Token,
		User: entity.User{
			ID:        in.User.ID,
			Name:      in.User.Name,
			Email:     in.User.Email,
			Role:      in.User.Role,
			PosOption: in.User.PosOption,
		},
		Tenant: entity.Tenant{
			ID:           in.Tenant.ID,
			Name:         in.Tenant.Name,
			BusinessType: in.Tenant.BusinessType,
			PosMode:      in.Tenant.PosMode,
		},
		ExpiresAt: expiresAt,
	}
	if err := h.sessions.Save(c.Context(), sess); err != nil {
		h.log.Error().Err(err).Msg("no se pudo guardar la sesión")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear la sesión"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	h.log.Info().Str("user", sess.User.ID).Str("tenant", sess.Tenant.ID).Msg("sesión creada")
	return c.Status(fiber.StatusCreated).JSON(toSessionResponse(sess))
}

// Get godoc
// @Summary      Sesión actual
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(toSessionResponse(GetSession(c)))
}

// Delete godoc
// @Summary      Cerrar la sesión local
// @Tags         session
// @Success      204
// @Router       /session [delete]
func (h *SessionHandler) Delete(c *fiber.Ctx) error {
	sess := GetSession(c)
	if sess.ID != "" {
		if err := h.sessions.Delete(c.Context(), sess.ID); err != nil {
			h.log.Warn().Err(err).Str("session", sess.ID).Msg("no se pudo borrar la sesión")
		}
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Path:     "/",
	})
	return c.SendStatus(fiber.StatusNoContent)
}

func toSessionResponse(sess entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		ID: sess.ID,
		User: dto.UserPayload{
			ID:        sess.User.ID,
			Name:      sess.User.Name,
			Email:     sess.User.Email,
			Role:      sess.User.Role,
			PosOption: sess.User.PosOption,
		},
		Tenant: dto.TenantPayload{
			ID:           sess.Tenant.ID,
			Name:         sess.Tenant.Name,
			BusinessType: sess.Tenant.BusinessType,
			PosMode:      sess.Tenant.PosMode,
		},
		ExpiresAt: sess.ExpiresAt.Format(time.RFC3339),
	}
}
