package dto

// ModeCard descripción de un modo POS seleccionable.
type ModeCard struct {
	ID          string
	Name        string
	Subtitle    string
	Features    []string
	NotIncluded []string
	Selected    bool
}

// PosModeView modelo de la pantalla de configuración de modo POS.
type PosModeView struct {
	Modes       []ModeCard
	CurrentMode string // modo ya persistido en el tenant, vacío si ninguno
	Error       string
	Success     string
	RedirectTo  string // destino tras el éxito (meta refresh con retardo)
	RedirectIn  int    // segundos de retardo antes de navegar
}

// ConfirmPosModeRequest entrada del formulario de confirmación.
type ConfirmPosModeRequest struct {
	PosMode string `json:"pos_mode" form:"pos_mode"`
}
