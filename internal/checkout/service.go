package checkout

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"

	"github.com/openlearnhq/education-platform-backend/config"
	"github.com/openlearnhq/education-platform-backend/internal/event"
)

var ErrSignatureMismatch = errors.New("payment signature mismatch")

// EventStore is the slice of the event repository checkout needs.
type EventStore interface {
	GetEventByID(id string) (*event.Event, error)
}

// Roster stamps payment references on attendees. The registration service
// satisfies it; routing the stamp through it keeps every event write-back
// under the per-event registration lock.
type Roster interface {
	StampPaymentRef(eventID, email, ref string) error
}

// Store is the checkout persistence surface. *Repository satisfies it.
type Store interface {
	Create(entry *Checkout) error
	GetByOrderID(orderID string) (*Checkout, error)
	UpdateStatus(orderID, status string, paymentID *string) error
}

// Orders abstracts the razorpay order API so tests can stub it.
type Orders interface {
	CreateOrder(amountPaise int, notes map[string]interface{}) (orderID string, err error)
}

type razorpayOrders struct {
	client *razorpay.Client
}

func (r *razorpayOrders) CreateOrder(amountPaise int, notes map[string]interface{}) (string, error) {
	data := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        "INR",
		"payment_capture": 1,
		"notes":           notes,
	}
	order, err := r.client.Order.Create(data, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order creation failed: %w", err)
	}
	orderID, ok := order["id"].(string)
	if !ok {
		return "", errors.New("unable to extract order_id from razorpay response")
	}
	return orderID, nil
}

type Service interface {
	Start(req StartCheckoutRequest) (*StartCheckoutResponse, error)
	Verify(req VerifyPaymentRequest) error
}

type service struct {
	repo   Store
	events EventStore
	roster Roster
	orders Orders
	cfg    *config.Config
}

func NewService(repo Store, events EventStore, roster Roster, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		events: events,
		roster: roster,
		orders: newOrders(cfg),
		cfg:    cfg,
	}
}

func newOrders(cfg *config.Config) Orders {
	switch cfg.PaymentProvider {
	case "", "razorpay":
		return &razorpayOrders{client: razorpay.NewClient(cfg.RazorpayKey, cfg.RazorpaySecret)}
	default:
		log.Fatalf("unsupported payment provider: %s", cfg.PaymentProvider)
		return nil
	}
}

// Start creates a payment order for a paid event and records a pending
// checkout. Free events have nothing to pay for.
func (s *service) Start(req StartCheckoutRequest) (*StartCheckoutResponse, error) {
	ev, err := s.events.GetEventByID(req.EventID)
	if err != nil {
		return nil, err
	}
	if ev.Type != event.TypePaid {
		return nil, event.NewValidationError("checkout is only available for paid events")
	}
	if ev.Price <= 0 {
		return nil, event.NewValidationError("event has no payable price")
	}

	amountPaise := int(math.Round(ev.Price * 100))
	orderID, err := s.orders.CreateOrder(amountPaise, map[string]interface{}{
		"event_id": ev.ID,
		"email":    req.Email,
	})
	if err != nil {
		return nil, err
	}

	entry := &Checkout{
		EventID: ev.ID,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Amount:  ev.Price,
		OrderID: orderID,
		Status:  StatusPending,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}

	return &StartCheckoutResponse{
		OrderID:  orderID,
		Amount:   ev.Price,
		Currency: "INR",
		Key:      s.cfg.RazorpayKey,
	}, nil
}

// Verify checks the gateway signature, marks the checkout, and stamps the
// attendee's payment reference when the registration already exists.
func (s *service) Verify(req VerifyPaymentRequest) error {
	entry, err := s.repo.GetByOrderID(req.OrderID)
	if err != nil {
		return err
	}

	if !verifySignature(req.OrderID, req.PaymentID, req.Signature, s.cfg.RazorpaySecret) {
		_ = s.repo.UpdateStatus(req.OrderID, StatusFailed, nil)
		return ErrSignatureMismatch
	}

	if err := s.repo.UpdateStatus(req.OrderID, StatusSuccess, &req.PaymentID); err != nil {
		return err
	}

	if s.roster != nil {
		// Registration may not exist yet; the checkout row alone is enough.
		if err := s.roster.StampPaymentRef(entry.EventID, entry.Email, req.PaymentID); err != nil && !errors.Is(err, event.ErrNotFound) {
			return err
		}
	}
	return nil
}

func verifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
