package dto

// CreateSessionRequest es el payload de login que entrega el backend: token
// bearer más las proyecciones de usuario y tenant (espejo de lo que la SPA
// guardaba en su store local).
type CreateSessionRequest struct {
	Token  string        `json:"token" validate:"required"`
	User   UserPayload   `json:"user"`
	Tenant TenantPayload `json:"tenant"`
}

// UserPayload proyección del usuario autenticado.
type UserPayload struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	PosOption string `json:"pos_option,omitempty"`
}

// TenantPayload proyección del tenant activo.
type TenantPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	PosMode      string `json:"pos_mode,omitempty"`
}

// SessionResponse salida de la sesión local (sin el token completo).
type SessionResponse struct {
	ID        string        `json:"id"`
	User      UserPayload   `json:"user"`
	Tenant    TenantPayload `json:"tenant"`
	ExpiresAt string        `json:"expires_at"`
}
