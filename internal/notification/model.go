package notification

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationLog records each outbound email attempt.
type NotificationLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Channel    string         `gorm:"size:20;not null" json:"channel"`
	Subject    string         `gorm:"size:255" json:"subject,omitempty"`
	Body       string         `gorm:"type:text;not null" json:"body"`
	Recipients datatypes.JSON `gorm:"type:jsonb;not null" json:"recipients"`
	Status     string         `gorm:"size:20;default:'pending'" json:"status"`
	Error      *string        `json:"error,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// RegistrationEmail is the payload queued when a registration is confirmed.
type RegistrationEmail struct {
	EventTitle     string    `json:"event_title"`
	EventDate      time.Time `json:"event_date"`
	Location       string    `json:"location"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ConfirmationID string    `json:"confirmation_id"`
}
