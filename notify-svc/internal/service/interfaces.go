package service

import (
	"context"
	"time"

	"mikes-grill/notify-svc/internal/domain"
	"mikes-grill/notify-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordContact(ctx context.Context, at time.Time) error
}

type Mailer interface {
	SendContact(event domain.ContactEvent) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessContact(ctx context.Context, event domain.ContactEvent)
}

var (
	_ StoreInterface = (*storage.Store)(nil)
	_ Mailer         = (*storage.SMTPMailer)(nil)
	_ MessageReader  = (*kafka.Reader)(nil)
)
