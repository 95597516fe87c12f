package checkout

import (
	"errors"

	"gorm.io/gorm"
)

var ErrCheckoutNotFound = errors.New("checkout not found")

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(c *Checkout) error {
	return r.DB.Create(c).Error
}

func (r *Repository) GetByOrderID(orderID string) (*Checkout, error) {
	var c Checkout
	err := r.DB.First(&c, "order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCheckoutNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repository) UpdateStatus(orderID, status string, paymentID *string) error {
	updates := map[string]interface{}{"status": status}
	if paymentID != nil {
		updates["payment_id"] = *paymentID
	}
	return r.DB.Model(&Checkout{}).Where("order_id = ?", orderID).Updates(updates).Error
}

func (r *Repository) ListByEvent(eventID string) ([]Checkout, error) {
	var out []Checkout
	err := r.DB.Where("event_id = ?", eventID).Order("created_at DESC").Find(&out).Error
	return out, err
}
