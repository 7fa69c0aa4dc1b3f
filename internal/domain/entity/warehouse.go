package entity

// Tipos de magasin del flujo de aprovisionamiento.
const (
	WarehouseGros   = "gros"
	WarehouseDetail = "detail"
)

// Warehouse representa un magasin del tenant (lectura desde el backend).
type Warehouse struct {
	ID       string
	Name     string
	Type     string // gros | detail
	Location string
	IsActive bool
}
