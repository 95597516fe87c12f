package partnership

import "time"

type Inquiry struct {
	ID               string    `gorm:"primaryKey;type:uuid" json:"id"`
	OrganizationName string    `gorm:"not null" json:"organizationName"`
	ContactName      string    `gorm:"not null" json:"contactName"`
	Email            string    `gorm:"not null" json:"email"`
	Phone            string    `json:"phone"`
	PartnershipType  string    `json:"partnershipType"`
	Message          string    `gorm:"type:text" json:"message"`
	Status           string    `gorm:"default:New" json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func (Inquiry) TableName() string {
	return "partnership_inquiries"
}

type CreateInquiryRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	ContactName      string `json:"contactName" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	PartnershipType  string `json:"partnershipType"`
	Message          string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=New Contacted Closed"`
}
