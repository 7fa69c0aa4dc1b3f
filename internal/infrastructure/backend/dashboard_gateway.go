package backend

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-front/internal/domain/entity"
	"github.com/jhoicas/pos-front/internal/domain/gateway"
)

// DashboardGateway implementación HTTP del puerto del tablero del serveur.
type DashboardGateway struct {
	client *Client
}

// NewDashboardGateway construye el gateway sobre el cliente compartido.
func NewDashboardGateway(client *Client) *DashboardGateway {
	return &DashboardGateway{client: client}
}

type serverStatsPayload struct {
	MyOrdersCount  int             `json:"my_orders_count"`
	PreparingCount int             `json:"preparing_count"`
	ServedCount    int             `json:"served_count"`
	MySales        decimal.Decimal `json:"my_sales"`
}

type orderPayload struct {
	ID        string          `json:"id"`
	Reference string          `json:"reference"`
	TableName string          `json:"table_name"`
	Status    string          `json:"status"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// ServerStats lee los contadores del serveur autenticado.
func (g *DashboardGateway) ServerStats(ctx context.Context, auth gateway.Auth) (entity.ServerStats, error) {
	body, err := g.client.get(ctx, auth, "/dashboard/server/stats")
	if err != nil {
		return entity.ServerStats{}, err
	}
	p, err := decodeObject[serverStatsPayload](body)
	if err != nil {
		return entity.ServerStats{}, err
	}
	return entity.ServerStats{
		MyOrdersCount:  p.MyOrdersCount,
		PreparingCount: p.PreparingCount,
		ServedCount:    p.ServedCount,
		MySales:        p.MySales,
	}, nil
}

// Orders lee las commandes activas del serveur autenticado.
func (g *DashboardGateway) Orders(ctx context.Context, auth gateway.Auth) ([]entity.Order, error) {
	body, err := g.client.get(ctx, auth, "/pos/orders")
	if err != nil {
		return nil, err
	}
	payloads, err := decodeList[orderPayload](body)
	if err != nil {
		return nil, err
	}
	orders := make([]entity.Order, 0, len(payloads))
	for _, p := range payloads {
		orders = append(orders, entity.Order{
			ID:        p.ID,
			Reference: p.Reference,
			TableName: p.TableName,
			Status:    p.Status,
			Total:     p.Total,
			CreatedAt: p.CreatedAt,
		})
	}
	return orders, nil
}
