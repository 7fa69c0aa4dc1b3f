package dto

// CheckoutOptionsRequest entrada para construir la configuración del widget.
type CheckoutOptionsRequest struct {
	Amount      string            `json:"amount" form:"amount"`
	Description string            `json:"description" form:"description"`
	Label       string            `json:"label" form:"label"`
	PaymentType string            `json:"payment_type" form:"payment_type"` // event | subscription
	Metadata    map[string]string `json:"metadata"`
}

// CheckoutOptions configuración que consume el widget de pago embebido.
// La forma replica lo que el checkout espera: clave pública, transacción,
// moneda y apariencia del botón.
type CheckoutOptions struct {
	PublicKey   string                `json:"public_key"`
	Transaction CheckoutTransaction   `json:"transaction"`
	Currency    CheckoutCurrency      `json:"currency"`
	Button      CheckoutButtonOptions `json:"button"`
}

// CheckoutTransaction datos de la transacción a cobrar.
type CheckoutTransaction struct {
	Amount         int64             `json:"amount"`
	Description    string            `json:"description"`
	CustomMetadata map[string]string `json:"custom_metadata,omitempty"`
}

// CheckoutCurrency moneda ISO del cobro.
type CheckoutCurrency struct {
	ISO string `json:"iso"`
}

// CheckoutButtonOptions apariencia del botón embebido.
type CheckoutButtonOptions struct {
	Class string `json:"class"`
	Text  string `json:"text"`
}

// PaymentCompletion es lo que reporta el widget al terminar.
type PaymentCompletion struct {
	Reason      string             `json:"reason,omitempty"`
	Status      string             `json:"status,omitempty"`
	Transaction CompletedTransaction `json:"transaction"`
}

// CompletedTransaction detalle de la transacción reportada por el widget.
type CompletedTransaction struct {
	ID             string            `json:"id,omitempty"`
	TransactionKey string            `json:"transaction_key,omitempty"`
	Status         string            `json:"status,omitempty"`
	CustomMetadata map[string]string `json:"custom_metadata,omitempty"`
}
