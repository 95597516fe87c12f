package ambassador

import "time"

type Application struct {
	ID         string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Email      string    `gorm:"not null" json:"email"`
	Phone      string    `json:"phone"`
	University string    `gorm:"not null" json:"university"`
	Year       string    `json:"year"`
	Motivation string    `gorm:"type:text" json:"motivation"`
	Status     string    `gorm:"default:Pending" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Application) TableName() string {
	return "ambassador_applications"
}

type ApplyRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	University string `json:"university" binding:"required"`
	Year       string `json:"year"`
	Motivation string `json:"motivation"`
}

type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}
