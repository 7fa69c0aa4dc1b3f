package backend

import (
	"context"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

// WarehouseGateway implementación HTTP del puerto de magasins.
type WarehouseGateway struct {
	client *Client
}

// NewWarehouseGateway construye el gateway sobre el cliente compartido.
func NewWarehouseGateway(client *Client) *WarehouseGateway {
	return &WarehouseGateway{client: client}
}

type warehousePayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
	IsActive bool   `json:"is_active"`
}

// List lee los magasins del tenant autenticado.
func (g *WarehouseGateway) List(ctx context.Context, auth gateway.Auth) ([]entity.Warehouse, error) {
	body, err := g.client.get(ctx, auth, "/warehouses")
	if err != nil {
		return nil, err
	}
	payloads, err := decodeList[warehousePayload](body)
	if err != nil {
		return nil, err
	}
	list := make([]entity.Warehouse, 0, len(payloads))
	for _, p := range payloads {
		list = append(list, entity.Warehouse{
			ID:       p.ID,
			Name:     p.Name,
			Type:     p.Type,
			Location: p.Location,
			IsActive: p.IsActive,
		})
	}
	return list, nil
}
