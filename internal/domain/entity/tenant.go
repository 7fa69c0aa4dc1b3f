package entity

// Modos de operación del POS configurables por tenant.
const (
	PosModeOptionA = "option_a" // ventas directas sin stock (bar/buvette)
	PosModeOptionB = "option_b" // multisite con gestión completa de stock
)

// ValidPosMode indica si el valor pertenece al conjunto cerrado de modos.
func ValidPosMode(mode string) bool {
	return mode == PosModeOptionA || mode == PosModeOptionB
}

// Tenant representa la organización activa de la sesión. Solo PosMode se
// escribe desde esta capa (vía el flujo de configuración de modo POS); el
// resto es espejo de lo que entrega el backend.
type Tenant struct {
	ID           string
	Name         string
	BusinessType string
	PosMode      string // option_a | option_b; vacío si nunca se configuró
}
