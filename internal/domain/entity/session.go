package entity

import "time"

// Session es el estado local de autenticación: token bearer del backend más
// las proyecciones de usuario y tenant. Se guarda en Redis y se lee en cada
// petición; solo el flujo de configuración de modo POS la muta (single-writer).
type Session struct {
	ID        string
	Token     string // JWT emitido por el backend; se adjunta a toda petición saliente
	User      User
	Tenant    Tenant
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
