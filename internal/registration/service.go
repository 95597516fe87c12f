package registration

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openlearnhq/education-platform-backend/internal/event"
	"github.com/openlearnhq/education-platform-backend/internal/notification"
)

// EventStore is the slice of the event repository the registration flow
// needs. *event.Repository satisfies it.
type EventStore interface {
	GetEventByID(id string) (*event.Event, error)
	SaveEvent(e *event.Event) error
}

type RegisterRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone,omitempty"`
	UserID string `json:"user_id,omitempty"`
}

// Confirmation is the display payload returned after a successful
// registration. The ConfirmationID is cosmetic, not a lookup key.
type Confirmation struct {
	ConfirmationID string         `json:"confirmation_id"`
	EventTitle     string         `json:"event_title"`
	EventDate      time.Time      `json:"event_date"`
	Location       string         `json:"location"`
	Attendee       event.Attendee `json:"attendee"`
}

// Service enforces roster invariants for attendee registration. Each event's
// read-modify-write cycle is serialized under a per-event mutex so concurrent
// registrations cannot slip past the duplicate or capacity checks.
type Service struct {
	Events EventStore
	Notif  notification.Service

	locks sync.Map // event id -> *sync.Mutex
}

func NewService(events EventStore, notif notification.Service) *Service {
	return &Service{Events: events, Notif: notif}
}

func (s *Service) lockFor(eventID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(eventID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)

func validateRegisterRequest(req *RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return event.NewValidationError("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return event.NewValidationError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return event.NewValidationError("email is not valid")
	}
	if req.Phone != "" && !phonePattern.MatchString(strings.TrimSpace(req.Phone)) {
		return event.NewValidationError("phone number is not valid")
	}
	return nil
}

// Register appends an attendee to the event roster after the ordered
// precondition checks: existence, open date, no duplicate email, free
// capacity. The first failing check determines the error.
func (s *Service) Register(ctx context.Context, eventID string, req *RegisterRequest) (*Confirmation, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	mu := s.lockFor(eventID)
	mu.Lock()
	defer mu.Unlock()

	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if ev.IsPast(now) {
		return nil, event.ErrPastEvent
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if ev.FindAttendeeByEmail(email) != nil {
		return nil, event.ErrDuplicateRegistration
	}

	if len(ev.Attendees) >= ev.Capacity() {
		return nil, event.ErrCapacityExceeded
	}

	attendee := event.Attendee{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		RegisteredAt: now,
	}
	ev.Attendees = append(ev.Attendees, attendee)

	if err := s.Events.SaveEvent(ev); err != nil {
		return nil, err
	}

	conf := &Confirmation{
		ConfirmationID: confirmationID(eventID, now),
		EventTitle:     ev.Title,
		EventDate:      ev.Date,
		Location:       ev.Location,
		Attendee:       attendee,
	}

	if s.Notif != nil {
		_ = s.Notif.QueueRegistrationEmail(ctx, notification.RegistrationEmail{
			EventTitle:     ev.Title,
			EventDate:      ev.Date,
			Location:       ev.Location,
			Name:           attendee.Name,
			Email:          attendee.Email,
			ConfirmationID: conf.ConfirmationID,
		})
	}

	return conf, nil
}

// confirmationID builds the display-only identifier
// EVT-<last 6 chars of the event id>-<last 6 digits of epoch millis>.
func confirmationID(eventID string, now time.Time) string {
	tail := eventID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return fmt.Sprintf("EVT-%s-%06d", tail, now.UnixMilli()%1_000_000)
}

// CheckRegistration reports whether an attendee with this email exists on
// the event.
func (s *Service) CheckRegistration(eventID, email string) (bool, error) {
	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		return false, err
	}
	return ev.FindAttendeeByEmail(email) != nil, nil
}

// RemoveAttendee drops the attendee with the given id from the roster.
// Removing an unknown attendee id is a silent no-op.
func (s *Service) RemoveAttendee(eventID, attendeeID string) error {
	mu := s.lockFor(eventID)
	mu.Lock()
	defer mu.Unlock()

	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		return err
	}

	kept := ev.Attendees[:0]
	removed := false
	for _, a := range ev.Attendees {
		if a.ID == attendeeID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil
	}

	ev.Attendees = kept
	return s.Events.SaveEvent(ev)
}

// StampPaymentRef records a payment reference on the attendee with this
// email. Runs under the same per-event lock as Register so the write-back
// cannot clobber a registration committed in between. Unknown emails and
// already-stamped attendees are silent no-ops.
func (s *Service) StampPaymentRef(eventID, email, ref string) error {
	mu := s.lockFor(eventID)
	mu.Lock()
	defer mu.Unlock()

	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		return err
	}

	att := ev.FindAttendeeByEmail(email)
	if att == nil || att.PaymentRef != "" {
		return nil
	}

	att.PaymentRef = ref
	return s.Events.SaveEvent(ev)
}

// ExportAttendees renders the event roster in the requested format.
func (s *Service) ExportAttendees(eventID, format string) ([]byte, string, string, error) {
	ev, err := s.Events.GetEventByID(eventID)
	if err != nil {
		return nil, "", "", err
	}
	return exportByFormat(ev, format)
}
