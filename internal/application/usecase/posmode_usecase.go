package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// ErrNoModeSelected confirmación sin modo elegido: se rechaza localmente,
// sin tocar la red.
var ErrNoModeSelected = errors.New("aucun mode POS sélectionné")

// RedirectDelay espera antes de navegar al dashboard tras una configuración
// exitosa.
const RedirectDelay = 2 * time.Second

// PosModeUseCase gestiona la selección y persistencia del modo de operación
// del POS. Es el único escritor del estado de tenant en sesión.
type PosModeUseCase struct {
	tenants  gateway.TenantConfigGateway
	sessions gateway.SessionStore
	log      *logger.Logger
}

// NewPosModeUseCase construye el caso de uso.
func NewPosModeUseCase(tg gateway.TenantConfigGateway, ss gateway.SessionStore, log *logger.Logger) *PosModeUseCase {
	return &PosModeUseCase{tenants: tg, sessions: ss, log: log.Component("posmode")}
}

// Modes devuelve las tarjetas de modo con la selección marcada.
func (uc *PosModeUseCase) Modes(selected string) []dto.ModeCard {
	return []dto.ModeCard{
		{
			ID:       entity.PosModeOptionA,
			Name:     "Option A - POS Simple",
			Subtitle: "Bar / Buvette / Restauration rapide",
			Features: []string{
				"Ventes directes sans gestion de stock",
				"Encaissement rapide (Cash, MoMo, Virement)",
				"Historique des ventes",
				"Rapports de caisse",
			},
			NotIncluded: []string{
				"Gestion des stocks",
				"Transferts inter-magasins",
				"Demandes de réapprovisionnement",
			},
			Selected: selected == entity.PosModeOptionA,
		},
		{
			ID:       entity.PosModeOptionB,
			Name:     "Option B - POS Complet",
			Subtitle: "Commerce multisite avec stock",
			Features: []string{
				"Tout de l'Option A",
				"Gestion complète des stocks",
				"Magasin Gros + Magasin Détail",
				"Transferts automatiques",
				"Alertes stock bas",
			},
			Selected: selected == entity.PosModeOptionB,
		},
	}
}

// Confirm persiste el modo elegido contra el backend y, solo tras el acuse,
// fusiona el nuevo modo en la sesión local. Repetir la confirmación con el
// mismo modo es seguro: una escritura redundante sin efectos adicionales.
//
// Con modo vacío o fuera del conjunto devuelve ErrNoModeSelected sin emitir
// ninguna petición. Si la escritura falla, la sesión queda intacta y el error
// del backend sube para mostrarse.
func (uc *PosModeUseCase) Confirm(ctx context.Context, sess entity.Session, auth gateway.Auth, mode string) (entity.Session, error) {
	if !entity.ValidPosMode(mode) {
		return sess, ErrNoModeSelected
	}

	tenant, err := uc.tenants.UpdatePosMode(ctx, auth, mode)
	if err != nil {
		uc.log.Error().Err(err).Str("mode", mode).Msg("persistencia del modo POS falló")
		return sess, err
	}

	// Acuse recibido: recién ahora se muta la proyección local.
	sess.Tenant.PosMode = mode
	if tenant.ID != "" {
		sess.Tenant = tenant
		sess.Tenant.PosMode = mode
	}
	if err := uc.sessions.Save(ctx, sess); err != nil {
		uc.log.Warn().Err(err).Msg("el modo quedó persistido pero la sesión local no se pudo actualizar")
	}

	uc.log.Info().Str("mode", mode).Str("tenant", sess.Tenant.ID).Msg("modo POS configurado")
	return sess, nil
}
