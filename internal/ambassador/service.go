package ambassador

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/openlearnhq/education-platform-backend/internal/notification"
)

type Store interface {
	Create(app *Application) error
	GetByID(id string) (*Application, error)
	List(status string, limit, offset int) ([]Application, error)
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

func (s *Service) Apply(ctx context.Context, req ApplyRequest) (*Application, error) {
	app := &Application{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		University: req.University,
		Year:       req.Year,
		Motivation: req.Motivation,
		Status:     "Pending",
	}
	if err := s.Repo.Create(app); err != nil {
		return nil, err
	}

	if s.Notif != nil {
		subject := "Your ambassador application is in"
		body := fmt.Sprintf(
			"Hi %s,<br><br>We received your student ambassador application for %s. We review applications on a rolling basis and will be in touch.",
			app.Name, app.University,
		)
		if err := s.Notif.SendAcknowledgement(ctx, app.Email, subject, body); err != nil {
			log.Printf("ambassador acknowledgement email failed: %v", err)
		}
	}

	return app, nil
}

func (s *Service) GetApplication(id string) (*Application, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) ListApplications(status string, limit, offset int) ([]Application, error) {
	return s.Repo.List(status, limit, offset)
}

func (s *Service) DeleteApplication(id string) error {
	return s.Repo.Delete(id)
}

func (s *Service) Review(id, status string) error {
	return s.Repo.UpdateStatus(id, status)
}
