package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence surface the service needs. *Repository satisfies it.
type Store interface {
	CreateEvent(e *Event) error
	GetEventByID(id string) (*Event, error)
	SaveEvent(e *Event) error
	DeleteEvent(id string) error
	BulkDeleteEvents(ids []string) (int64, error)
	ListEvents(limit, offset int, search string) ([]Event, error)
	ListUpcomingEvents() ([]Event, error)
}

// Service wraps business logic for event lifecycle management.
type Service struct {
	Repo Store
}

func NewService(repo Store) *Service {
	return &Service{Repo: repo}
}

func validateEventFields(title, description, location, eventType string, date time.Time, price float64) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return NewValidationError("description is required")
	}
	if date.IsZero() {
		return NewValidationError("date is required")
	}
	if strings.TrimSpace(location) == "" {
		return NewValidationError("location is required")
	}
	if eventType != TypeFree && eventType != TypePaid {
		return NewValidationError(fmt.Sprintf("type must be %q or %q", TypeFree, TypePaid))
	}
	if price < 0 {
		return NewValidationError("price must not be negative")
	}
	return nil
}

// CreateEvent validates the request and persists a new event with an empty
// attendee list.
func (s *Service) CreateEvent(req *CreateEventRequest) (*Event, error) {
	if err := validateEventFields(req.Title, req.Description, req.Location, req.Type, req.Date, req.Price); err != nil {
		return nil, err
	}

	e := &Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Type:        req.Type,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		AboutEvent:  req.AboutEvent,
		Highlights:  req.Highlights,
		Agenda:      req.Agenda,
		FAQs:        req.FAQs,
		Attendees:   []Attendee{},
	}

	if err := s.Repo.CreateEvent(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetEvent(id string) (*Event, error) {
	return s.Repo.GetEventByID(id)
}

func (s *Service) ListEvents(limit, offset int, search string) ([]Event, error) {
	return s.Repo.ListEvents(limit, offset, search)
}

func (s *Service) ListUpcomingEvents() ([]Event, error) {
	return s.Repo.ListUpcomingEvents()
}

// UpdateEvent replaces the descriptive fields of an event. The attendee
// roster is carried over untouched.
func (s *Service) UpdateEvent(id string, req *UpdateEventRequest) (*Event, error) {
	if err := validateEventFields(req.Title, req.Description, req.Location, req.Type, req.Date, req.Price); err != nil {
		return nil, err
	}

	e, err := s.Repo.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.Date = req.Date
	e.Location = req.Location
	e.Type = req.Type
	e.Price = req.Price
	e.ImageURL = req.ImageURL
	e.AboutEvent = req.AboutEvent
	e.Highlights = req.Highlights
	e.Agenda = req.Agenda
	e.FAQs = req.FAQs

	if err := s.Repo.SaveEvent(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteEvent(id string) error {
	return s.Repo.DeleteEvent(id)
}

func (s *Service) BulkDeleteEvents(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, NewValidationError("ids must not be empty")
	}
	return s.Repo.BulkDeleteEvents(ids)
}

// DuplicateEvent copies all scalar and descriptive fields of an existing
// event into a new one with a fresh identity, an empty attendee list, and
// " (Copy)" appended to the title.
func (s *Service) DuplicateEvent(id string) (*Event, error) {
	src, err := s.Repo.GetEventByID(id)
	if err != nil {
		return nil, err
	}

	copyEvent := &Event{
		ID:          uuid.NewString(),
		Title:       src.Title + " (Copy)",
		Description: src.Description,
		Date:        src.Date,
		Location:    src.Location,
		Type:        src.Type,
		Price:       src.Price,
		ImageURL:    src.ImageURL,
		AboutEvent:  src.AboutEvent,
		Highlights:  src.Highlights,
		Agenda:      src.Agenda,
		FAQs:        src.FAQs,
		Attendees:   []Attendee{},
	}

	if err := s.Repo.CreateEvent(copyEvent); err != nil {
		return nil, err
	}
	return copyEvent, nil
}
