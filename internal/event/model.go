package event

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Event types
const (
	TypeFree = "Free"
	TypePaid = "Paid"
)

// Registration ceilings per event type
const (
	FreeCapacity = 500
	PaidCapacity = 1000
)

// Attendee is a registration record owned by exactly one Event. It is
// serialized inline with the event and has no independent existence.
type Attendee struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id,omitempty"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
	PaymentRef   string    `json:"payment_ref"`
}

type AgendaItem struct {
	Time  string `json:"time,omitempty"`
	Title string `json:"title"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Event is the persisted event document. Attendees are denormalized into a
// jsonb column so the roster reads and writes as one unit with the event.
type Event struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	Location    string    `gorm:"type:text;not null" json:"location"`
	Type        string    `gorm:"type:varchar(10);not null" json:"type"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	ImageURL    string    `gorm:"type:text" json:"image_url,omitempty"`
	AboutEvent  string    `gorm:"type:text" json:"about_event,omitempty"`

	Highlights datatypes.JSONSlice[string]     `gorm:"type:jsonb" json:"highlights,omitempty"`
	Agenda     datatypes.JSONSlice[AgendaItem] `gorm:"type:jsonb" json:"agenda,omitempty"`
	FAQs       datatypes.JSONSlice[FAQItem]    `gorm:"type:jsonb" json:"faqs,omitempty"`

	Attendees datatypes.JSONSlice[Attendee] `gorm:"type:jsonb" json:"attendees"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Capacity returns the registration ceiling for the event.
func (e *Event) Capacity() int {
	if e.Type == TypePaid {
		return PaidCapacity
	}
	return FreeCapacity
}

// IsPast reports whether the event is closed for registration. This is
// derived, never stored, and re-evaluated on every attempt.
func (e *Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}

// FindAttendeeByEmail looks up an attendee by email, case-insensitively.
func (e *Event) FindAttendeeByEmail(email string) *Attendee {
	needle := strings.ToLower(strings.TrimSpace(email))
	for i := range e.Attendees {
		if strings.ToLower(e.Attendees[i].Email) == needle {
			return &e.Attendees[i]
		}
	}
	return nil
}

// CreateEventRequest is the admin payload for creating an event.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	AboutEvent  string    `json:"about_event,omitempty"`

	Highlights []string     `json:"highlights,omitempty"`
	Agenda     []AgendaItem `json:"agenda,omitempty"`
	FAQs       []FAQItem    `json:"faqs,omitempty"`
}

// UpdateEventRequest mirrors the create payload; the attendee roster is
// never touched by administrative edits.
type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	AboutEvent  string    `json:"about_event,omitempty"`

	Highlights []string     `json:"highlights,omitempty"`
	Agenda     []AgendaItem `json:"agenda,omitempty"`
	FAQs       []FAQItem    `json:"faqs,omitempty"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
