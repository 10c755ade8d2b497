package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

// BookingService runs the preview and confirmation flows. It owns no state
// of its own beyond the id sequence; inventory and ledger state belong to
// their services and are only mutated through them.
type BookingService struct {
	catalog   *Catalog
	pricing   *PricingService
	inventory *InventoryService
	ledger    *LedgerService
	messenger Messenger

	idMu   sync.Mutex
	lastMs int64
	idSeq  int
}

func NewBookingService(
	catalog *Catalog,
	pricing *PricingService,
	inventory *InventoryService,
	ledger *LedgerService,
	messenger Messenger,
) *BookingService {
	return &BookingService{
		catalog:   catalog,
		pricing:   pricing,
		inventory: inventory,
		ledger:    ledger,
		messenger: messenger,
	}
}

// PreviewResult is the outcome of a dry-run validation: the quote plus a
// human confirmation line, nothing mutated.
type PreviewResult struct {
	RoomCode string `json:"roomCode"`
	Quote    Quote  `json:"quote"`
	Message  string `json:"message"`
}

// ConfirmResult is a confirmed booking plus its WhatsApp handoff URL.
type ConfirmResult struct {
	Booking     models.Booking `json:"booking"`
	WhatsAppURL string         `json:"whatsappUrl"`
	Message     string         `json:"message"`
}

// Validate runs the candidate through the booking rules in order; the first
// failing rule wins.
func (s *BookingService) Validate(req *models.BookingRequest, status models.RoomStatus) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Doc) == "" ||
		strings.TrimSpace(req.Phone) == "" ||
		req.CheckIn == "" || req.CheckOut == "" ||
		req.Guests <= 0 ||
		req.RoomType == "" || req.RoomCode == "" {
		return reject(ReasonIncompleteForm, msgIncompleteForm)
	}

	if NightsBetween(req.CheckIn, req.CheckOut) <= 0 {
		return reject(ReasonInvalidDateRange, msgInvalidDateRange)
	}

	def, ok := s.catalog.TypeByKey(req.RoomType)
	if !ok || !strings.HasPrefix(req.RoomCode, def.CodePrefix) {
		return reject(ReasonRoomUnavailable, msgRoomUnavailable)
	}

	if status[req.RoomCode] != models.RoomFree {
		return reject(ReasonRoomUnavailable, msgRoomUnavailable)
	}

	if req.Guests > def.MaxGuests {
		if def.MaxGuests == 1 {
			return reject(ReasonOccupancyExceeded, msgSimpleOccupancy)
		}

		return reject(ReasonOccupancyExceeded, msgMaxOccupancy)
	}

	return nil
}

// Preview validates and prices a candidate without mutating anything.
func (s *BookingService) Preview(req *models.BookingRequest) (*PreviewResult, error) {
	status, err := s.inventory.Load()
	if err != nil {
		return nil, err
	}

	if err := s.Validate(req, status); err != nil {
		return nil, err
	}

	quote := s.pricing.Quote(req.RoomType, req.CheckIn, req.CheckOut)

	return &PreviewResult{
		RoomCode: req.RoomCode,
		Quote:    quote,
		Message: fmt.Sprintf("Previsualización OK: %s, %d noche(s), total %s, adelanto %s.",
			req.RoomCode, quote.Nights, utils.FormatMoney(quote.Total), utils.FormatMoney(quote.Deposit)),
	}, nil
}

// Confirm validates the candidate, marks the room occupied, appends the
// booking to the ledger and composes the WhatsApp handoff.
func (s *BookingService) Confirm(req *models.BookingRequest) (*ConfirmResult, error) {
	status, err := s.inventory.Load()
	if err != nil {
		return nil, err
	}

	if err := s.Validate(req, status); err != nil {
		return nil, err
	}

	booking := s.build(req)

	// Check-and-set under the inventory lock; a concurrent confirmation of
	// the same room surfaces here as RoomUnavailable.
	if err := s.inventory.MarkOccupied(booking.RoomCode); err != nil {
		return nil, err
	}

	if err := s.ledger.Append(booking); err != nil {
		return nil, err
	}

	text := s.messenger.ComposeConfirmation(booking)

	return &ConfirmResult{
		Booking:     booking,
		WhatsAppURL: s.messenger.MessageLink(text),
		Message:     fmt.Sprintf("Reserva registrada con código %s.", booking.ID),
	}, nil
}

// build assumes the request already passed Validate.
func (s *BookingService) build(req *models.BookingRequest) models.Booking {
	def, _ := s.catalog.TypeByKey(req.RoomType)
	quote := s.pricing.Quote(req.RoomType, req.CheckIn, req.CheckOut)

	return models.Booking{
		ID:            s.nextID(),
		CreatedAt:     time.Now().UTC(),
		Name:          strings.TrimSpace(req.Name),
		Doc:           strings.TrimSpace(req.Doc),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         strings.TrimSpace(req.Email),
		Guests:        req.Guests,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        quote.Nights,
		RoomType:      def.Key,
		RoomTypeLabel: def.Label,
		RoomCode:      req.RoomCode,
		Rate:          quote.Rate,
		Total:         quote.Total,
		Deposit:       quote.Deposit,
		Notes:         strings.TrimSpace(req.Notes),
	}
}

// nextID keeps the product's R-<millis> reference codes, with a sequence
// suffix when two confirmations land in the same millisecond.
func (s *BookingService) nextID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	now := time.Now().UnixMilli()
	if now == s.lastMs {
		s.idSeq++
		return fmt.Sprintf("R-%d-%d", now, s.idSeq)
	}

	s.lastMs = now
	s.idSeq = 0

	return fmt.Sprintf("R-%d", now)
}
