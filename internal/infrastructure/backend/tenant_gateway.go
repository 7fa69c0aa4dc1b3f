package backend

import (
	"context"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

// TenantConfigGateway implementación HTTP de la configuración del tenant.
// Es la única escritura que esta capa emite hacia el backend.
type TenantConfigGateway struct {
	client *Client
}

// NewTenantConfigGateway construye el gateway sobre el cliente compartido.
func NewTenantConfigGateway(client *Client) *TenantConfigGateway {
	return &TenantConfigGateway{client: client}
}

type tenantPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	PosMode      string `json:"pos_mode"`
}

// UpdatePosMode persiste el modo POS del tenant y devuelve el tenant
// actualizado tal como lo confirmó el backend. Si el backend rechaza la
// escritura el error conserva su mensaje (ver APIError).
func (g *TenantConfigGateway) UpdatePosMode(ctx context.Context, auth gateway.Auth, mode string) (entity.Tenant, error) {
	body, err := g.client.put(ctx, auth, "/tenant-config", map[string]string{"pos_mode": mode})
	if err != nil {
		return entity.Tenant{}, err
	}
	p, err := decodeObject[tenantPayload](body)
	if err != nil {
		return entity.Tenant{}, err
	}
	return entity.Tenant{
		ID:           p.ID,
		Name:         p.Name,
		BusinessType: p.BusinessType,
		PosMode:      p.PosMode,
	}, nil
}
