package dto

import "github.com/jhoicas/pos-front/internal/domain/entity"

// ServerDashboardView modelo de vista del tablero del serveur POS.
// Los montos llegan ya formateados; las listas vacías renderizan el estado cero.
type ServerDashboardView struct {
	UserName       string     `json:"user_name"`
	MyOrdersCount  int        `json:"my_orders_count"`
	PreparingCount int        `json:"preparing_count"`
	ServedCount    int        `json:"served_count"`
	MySalesLabel   string     `json:"my_sales_label"`
	Orders         []OrderRow `json:"orders"`
}

// OrderRow una commande en la tabla del tablero.
type OrderRow struct {
	ID         string `json:"id"`
	Reference  string `json:"reference"`
	TableName  string `json:"table_name"`
	Status     string `json:"status"`
	TotalLabel string `json:"total_label"`
	TimeLabel  string `json:"time_label"`
}

// ProcurementView modelo de vista de la página de aprovisionamiento.
// Gros/Detail pueden ser nil: el sub-view lo trata como "magasin no configurado".
type ProcurementView struct {
	ActiveTab entity.TabID
	Gros      *WarehouseCard
	Detail    *WarehouseCard
	Loaded    bool // false mientras la carga inicial sigue pendiente
}

// WarehouseCard proyección de un magasin para el sub-view.
type WarehouseCard struct {
	ID       string
	Name     string
	Type     string
	Location string
}

// GenericDashboardView modelo de las vistas de dashboard que no tienen datos
// remotos propios (todas menos la del serveur).
type GenericDashboardView struct {
	UserName   string
	RoleLabel  string
	TenantName string
	PosMode    string
}

// RouteItem entrada de menú accesible para el rol actual.
type RouteItem struct {
	Label    string
	Icon     string
	Path     string
	Children []RouteItem
}

// DebugView modelo de la página de introspección.
type DebugView struct {
	UserName     string
	UserEmail    string
	UserID       string
	Role         string
	TenantName   string
	TenantID     string
	BusinessType string
	TokenExists  bool
	TokenPrefix  string // primeros caracteres, nunca el token completo
	Routes       []RouteItem
}
