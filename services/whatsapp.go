package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

// Messenger composes confirmation text and hands it to an external channel
// by URL. The transport itself (opening the chat, delivering the message) is
// the caller's problem.
type Messenger interface {
	ComposeConfirmation(booking models.Booking) string
	MessageLink(text string) string
	ContactLink() string
}

// WhatsAppClient builds wa.me handoff links for the property's number.
type WhatsAppClient struct {
	PropertyName  string
	Number        string
	PaymentNumber string
}

func NewWhatsAppClient(propertyName, number, paymentNumber string) *WhatsAppClient {
	return &WhatsAppClient{
		PropertyName:  propertyName,
		Number:        number,
		PaymentNumber: paymentNumber,
	}
}

// ComposeConfirmation renders the fixed confirmation template. Optional
// fields (email, notes) only appear when present; no empty placeholder lines.
func (c *WhatsAppClient) ComposeConfirmation(b models.Booking) string {
	lines := []string{
		fmt.Sprintf("Hola %s, quiero confirmar esta reserva:", c.PropertyName),
		"",
		"• Código: " + b.ID,
		"• Nombre: " + b.Name,
		"• Documento: " + b.Doc,
		"• Teléfono: " + b.Phone,
	}

	if b.Email != "" {
		lines = append(lines, "• Email: "+b.Email)
	}

	lines = append(lines,
		fmt.Sprintf("• Huéspedes: %d", b.Guests),
		"• Check-in: "+b.CheckIn,
		"• Check-out: "+b.CheckOut,
		fmt.Sprintf("• Noches: %d", b.Nights),
		fmt.Sprintf("• Habitación: %s (%s)", b.RoomCode, b.RoomTypeLabel),
		"• Tarifa/noche: "+utils.FormatMoney(b.Rate),
		"• Total: "+utils.FormatMoney(b.Total),
		"• Adelanto sugerido (30%): "+utils.FormatMoney(b.Deposit),
		"",
		"Pago por:",
		"- Yape: "+c.PaymentNumber,
		"- Plin: "+c.PaymentNumber,
	)

	if b.Notes != "" {
		lines = append(lines, "", "Nota: "+b.Notes)
	}

	return strings.Join(lines, "\n")
}

// MessageLink percent-encodes text into a wa.me URL for the property number.
func (c *WhatsAppClient) MessageLink(text string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", c.Number, url.QueryEscape(text))
}

// ContactLink is the direct "ask for availability" chat link.
func (c *WhatsAppClient) ContactLink() string {
	return c.MessageLink(fmt.Sprintf("Hola, deseo información sobre disponibilidad en %s.", c.PropertyName))
}
