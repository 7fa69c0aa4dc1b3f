// Package payment construye la configuración del widget de checkout embebido
// e interpreta su callback de finalización. Una sola implementación,
// parametrizada por estrategia de navegación y por origen de la clave pública,
// reemplaza a las dos copias casi idénticas del frontend original.
package payment

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-front/internal/application/dto"
	"github.com/jhoicas/pos-front/pkg/logger"
)

// Tipos de pago que el bridge sabe enrutar.
const (
	TypeEvent        = "event"
	TypeSubscription = "subscription"
)

// DialogDismissed es el centinela que reporta el widget cuando el usuario
// cierra el diálogo: cancelación silenciosa, ni navegación ni error.
const DialogDismissed = "DIALOG_DISMISSED"

// successStatuses es la lista blanca exacta (sensible a mayúsculas) de
// estados de transacción exitosos. Todo lo demás, incluido el estado ausente,
// es fallo.
var successStatuses = map[string]struct{}{
	"success":   {},
	"completed": {},
	"approved":  {},
}

// ErrDismissed el usuario cerró el diálogo del widget.
var ErrDismissed = errors.New("paiement annulé par l'utilisateur")

// FailureError fallo de pago con el estado crudo reportado por el widget (el
// del reporte; si falta, el de la transacción), para el aviso bloqueante.
type FailureError struct {
	Status string
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("Échec du paiement. %s", e.Status)
}

// Outcome resultado de interpretar una finalización exitosa: la ruta de
// callback con sus parámetros ya armados.
type Outcome struct {
	TransactionID string
	Status        string
	PaymentType   string
	MetadataID    string // event_id o subscription_plan_id según el tipo
	CallbackURL   string
}

// Bridge interpreta finalizaciones del widget y fabrica su configuración.
type Bridge struct {
	keys         KeySource
	callbackPath string
	log          *logger.Logger
}

// NewBridge construye el bridge con la fuente de clave pública inyectada.
func NewBridge(keys KeySource, callbackPath string, log *logger.Logger) *Bridge {
	if callbackPath == "" {
		callbackPath = "/payment/callback"
	}
	return &Bridge{keys: keys, callbackPath: callbackPath, log: log.Component("payment")}
}

// CheckoutOptions arma la configuración que consume el widget: clave pública,
// monto truncado a entero (XOF no tiene fracciones), metadatos y botón.
func (b *Bridge) CheckoutOptions(req dto.CheckoutOptionsRequest) (dto.CheckoutOptions, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return dto.CheckoutOptions{}, fmt.Errorf("payment: montant invalide %q: %w", req.Amount, err)
	}
	return dto.CheckoutOptions{
		PublicKey: b.keys.PublicKey(),
		Transaction: dto.CheckoutTransaction{
			Amount:         amount.IntPart(),
			Description:    req.Description,
			CustomMetadata: req.Metadata,
		},
		Currency: dto.CheckoutCurrency{ISO: "XOF"},
		Button:   dto.CheckoutButtonOptions{Class: "btn btn-primary", Text: req.Label},
	}, nil
}

// Complete interpreta el reporte de finalización del widget.
//
//   - Centinela de cierre: ErrDismissed, sin navegación ni aviso.
//   - Estado fuera de la lista blanca (o ausente): FailureError con el estado
//     del reporte (o el de la transacción si falta) para el aviso al usuario.
//   - Éxito: extrae id de transacción (transaction.id, luego transaction_key,
//     por defecto cadena vacía), estado y el metadato propio del tipo de pago,
//     y devuelve la URL de callback con todo como query params.
func (b *Bridge) Complete(comp dto.PaymentCompletion, paymentType string) (Outcome, error) {
	if comp.Reason == DialogDismissed {
		b.log.Debug().Msg("diálogo de pago cerrado por el usuario")
		return Outcome{}, ErrDismissed
	}

	if _, ok := successStatuses[comp.Transaction.Status]; !ok {
		// El aviso lleva el estado de nivel superior del reporte; el de la
		// transacción es el respaldo cuando el reporte no trae ninguno.
		notice := comp.Status
		if notice == "" {
			notice = comp.Transaction.Status
		}
		b.log.Warn().Str("status", comp.Transaction.Status).Msg("pago rechazado por el widget")
		return Outcome{}, &FailureError{Status: notice}
	}

	txID := comp.Transaction.ID
	if txID == "" {
		txID = comp.Transaction.TransactionKey
	}
	status := comp.Status
	if status == "" {
		status = comp.Transaction.Status
	}

	out := Outcome{
		TransactionID: txID,
		Status:        status,
		PaymentType:   paymentType,
	}

	q := url.Values{}
	q.Set("transactionId", txID)
	q.Set("status", status)
	switch paymentType {
	case TypeSubscription:
		out.MetadataID = comp.Transaction.CustomMetadata["subscription_plan_id"]
		q.Set("subscriptionPlanId", out.MetadataID)
	default:
		// event y cualquier tipo futuro que transporte event_id
		out.MetadataID = comp.Transaction.CustomMetadata["event_id"]
		q.Set("eventId", out.MetadataID)
	}
	q.Set("paymentType", paymentType)

	out.CallbackURL = b.callbackPath + "?" + q.Encode()
	b.log.Info().Str("transaction_id", txID).Str("payment_type", paymentType).Msg("pago completado")
	return out, nil
}
