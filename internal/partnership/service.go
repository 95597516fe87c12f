package partnership

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/openlearnhq/education-platform-backend/internal/notification"
)

type Store interface {
	Create(inq *Inquiry) error
	GetByID(id string) (*Inquiry, error)
	List(limit, offset int) ([]Inquiry, error)
	Delete(id string) error
	UpdateStatus(id, status string) error
}

type Service struct {
	Repo  Store
	Notif notification.Service
}

func NewService(repo Store, notif notification.Service) *Service {
	return &Service{Repo: repo, Notif: notif}
}

func (s *Service) CreateInquiry(ctx context.Context, req CreateInquiryRequest) (*Inquiry, error) {
	inq := &Inquiry{
		ID:               uuid.NewString(),
		OrganizationName: req.OrganizationName,
		ContactName:      req.ContactName,
		Email:            req.Email,
		Phone:            req.Phone,
		PartnershipType:  req.PartnershipType,
		Message:          req.Message,
		Status:           "New",
	}
	if err := s.Repo.Create(inq); err != nil {
		return nil, err
	}

	if s.Notif != nil {
		subject := "We received your partnership inquiry"
		body := fmt.Sprintf(
			"Hi %s,<br><br>Thanks for reaching out on behalf of %s. Our partnerships team will get back to you shortly.",
			inq.ContactName, inq.OrganizationName,
		)
		if err := s.Notif.SendAcknowledgement(ctx, inq.Email, subject, body); err != nil {
			log.Printf("partnership acknowledgement email failed: %v", err)
		}
	}

	return inq, nil
}

func (s *Service) GetInquiry(id string) (*Inquiry, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) ListInquiries(limit, offset int) ([]Inquiry, error) {
	return s.Repo.List(limit, offset)
}

func (s *Service) DeleteInquiry(id string) error {
	return s.Repo.Delete(id)
}

func (s *Service) UpdateInquiryStatus(id, status string) error {
	return s.Repo.UpdateStatus(id, status)
}
