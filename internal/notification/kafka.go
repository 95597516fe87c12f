package notification

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/openlearnhq/education-platform-backend/config"
)

// Producer publishes registration confirmations for asynchronous delivery.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer returns nil when no brokers are configured; callers treat a
// nil producer as "send synchronously instead".
func NewProducer(cfg *config.Config) *Producer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaBrokers...),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Producer) Publish(ctx context.Context, msg RegistrationEmail) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Email),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// StartKafkaConsumer drains the confirmation topic and hands each message
// to the notification service. Runs until the process exits.
func StartKafkaConsumer(svc Service, cfg *config.Config) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("kafka not configured, registration emails are sent inline")
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.KafkaBrokers,
		GroupID: "notification-service",
		Topic:   cfg.KafkaTopic,
	})

	go func() {
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("kafka consumer stopped: %v", err)
				return
			}

			var msg RegistrationEmail
			if err := json.Unmarshal(m.Value, &msg); err != nil {
				log.Printf("skipping malformed confirmation message: %v", err)
				continue
			}

			if err := svc.SendRegistrationEmail(context.Background(), msg); err != nil {
				log.Printf("failed to send registration email to %s: %v", msg.Email, err)
			}
		}
	}()
}
