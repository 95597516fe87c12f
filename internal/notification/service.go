package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/openlearnhq/education-platform-backend/config"
)

type Service interface {
	// QueueRegistrationEmail hands the confirmation off to kafka when
	// configured, otherwise sends it inline. Best-effort either way.
	QueueRegistrationEmail(ctx context.Context, msg RegistrationEmail) error

	// SendRegistrationEmail delivers the confirmation now and logs it.
	SendRegistrationEmail(ctx context.Context, msg RegistrationEmail) error

	// SendAcknowledgement delivers a plain acknowledgement email.
	SendAcknowledgement(ctx context.Context, to, subject, body string) error
}

type service struct {
	repo     *Repository
	sender   *EmailSender
	producer *Producer
	cfg      *config.Config
}

func NewService(repo *Repository, sender *EmailSender, producer *Producer, cfg *config.Config) Service {
	return &service{
		repo:     repo,
		sender:   sender,
		producer: producer,
		cfg:      cfg,
	}
}

func (s *service) QueueRegistrationEmail(ctx context.Context, msg RegistrationEmail) error {
	if s.producer != nil {
		return s.producer.Publish(ctx, msg)
	}
	return s.SendRegistrationEmail(ctx, msg)
}

func (s *service) SendRegistrationEmail(ctx context.Context, msg RegistrationEmail) error {
	subject := fmt.Sprintf("Registration confirmed: %s", msg.EventTitle)
	body := fmt.Sprintf(
		"Hi %s,<br><br>Your registration for <b>%s</b> is confirmed.<br>"+
			"Date: %s<br>Location: %s<br>Confirmation ID: %s<br><br>"+
			"Manage your registration at %s.",
		msg.Name,
		msg.EventTitle,
		msg.EventDate.Format("Mon, 02 Jan 2006 15:04"),
		msg.Location,
		msg.ConfirmationID,
		s.cfg.APIBaseURL,
	)
	return s.send(ctx, []string{msg.Email}, subject, body)
}

func (s *service) SendAcknowledgement(ctx context.Context, to, subject, body string) error {
	return s.send(ctx, []string{to}, subject, body)
}

func (s *service) send(_ context.Context, to []string, subject, body string) error {
	if s.sender == nil || !s.sender.Configured() {
		log.Printf("SMTP not configured, skipping email %q to %v", subject, to)
		return nil
	}

	err := s.sender.Send(to, subject, body)
	s.logAttempt(to, subject, body, err)
	return err
}

func (s *service) logAttempt(to []string, subject, body string, sendErr error) {
	if s.repo == nil {
		return
	}

	recipients, _ := json.Marshal(to)
	entry := &NotificationLog{
		Channel:    "email",
		Subject:    subject,
		Body:       body,
		Recipients: recipients,
		Status:     StatusSent,
	}
	if sendErr != nil {
		msg := sendErr.Error()
		entry.Status = StatusFailed
		entry.Error = &msg
	}

	if err := s.repo.CreateLog(entry); err != nil {
		log.Printf("failed to persist notification log: %v", err)
	}
}
