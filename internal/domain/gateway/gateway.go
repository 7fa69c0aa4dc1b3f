// Package gateway define los puertos hacia los colaboradores externos:
// el backend REST (lecturas y la única escritura de esta capa) y el
// almacenamiento de sesión.
package gateway

import (
	"context"
	"errors"

	"github.com/jhoicas/pos-front/internal/domain/entity"
)

// ErrSessionNotFound se devuelve cuando la sesión no existe o ya expiró.
var ErrSessionNotFound = errors.New("sesión no encontrada")

// Auth agrupa las credenciales que viajan en cada petición al backend:
// bearer token y cabecera de tenant.
type Auth struct {
	Token    string
	TenantID string
}

// WarehouseGateway lee los magasins del tenant.
type WarehouseGateway interface {
	List(ctx context.Context, auth Auth) ([]entity.Warehouse, error)
}

// DashboardGateway lee los datos del tablero del serveur POS.
type DashboardGateway interface {
	ServerStats(ctx context.Context, auth Auth) (entity.ServerStats, error)
	Orders(ctx context.Context, auth Auth) ([]entity.Order, error)
}

// TenantConfigGateway persiste la configuración del tenant.
type TenantConfigGateway interface {
	UpdatePosMode(ctx context.Context, auth Auth, mode string) (entity.Tenant, error)
}

// SessionStore guarda y recupera sesiones locales.
type SessionStore interface {
	Save(ctx context.Context, sess entity.Session) error
	Get(ctx context.Context, id string) (entity.Session, error)
	Delete(ctx context.Context, id string) error
}

// SnapshotCache conserva por sesión la instantánea de magasins del contenedor
// de pestañas, para que cambiar de pestaña no vuelva a consultar el backend.
type SnapshotCache interface {
	SaveWarehouses(ctx context.Context, sessionID string, list []entity.Warehouse) error
	GetWarehouses(ctx context.Context, sessionID string) ([]entity.Warehouse, bool, error)
}
