package checkout

import "time"

const (
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// Checkout is one payment intent for a paid event registration.
type Checkout struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"type:uuid;not null;index" json:"event_id"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Amount    float64   `gorm:"not null" json:"amount"`
	OrderID   string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"order_id"`
	PaymentID *string   `gorm:"type:varchar(100)" json:"payment_id,omitempty"`
	Status    string    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StartCheckoutRequest struct {
	EventID string `json:"event_id" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
}

type StartCheckoutResponse struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Key      string  `json:"key"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
}
