package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una commande POS (vienen del backend, se muestran tal cual).
const (
	OrderPending   = "pending"
	OrderApproved  = "approved"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderServed    = "served"
	OrderConfirmed = "confirmed"
	OrderCancelled = "cancelled"
)

// Order es una commande del punto de venta. Efímera: se vuelve a leer en cada
// ciclo de refresco y no tiene identidad más allá del render actual.
type Order struct {
	ID        string
	Reference string
	TableName string
	Status    string
	Total     decimal.Decimal
	CreatedAt time.Time
}

// ServerStats son los contadores del tablero del serveur POS.
type ServerStats struct {
	MyOrdersCount  int
	PreparingCount int
	ServedCount    int
	MySales        decimal.Decimal
}
