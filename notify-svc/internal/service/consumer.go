package service

import (
	"context"
	"encoding/json"
	"log"

	"mikes-grill/notify-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Mailer Mailer
}

func NewConsumer(reader MessageReader, store StoreInterface, mailer Mailer) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
		Mailer: mailer,
	}
}

// Start reads the contacts topic until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Notification Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Notification Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ContactEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessContact(ctx, event)
	}
}

func (c *Consumer) ProcessContact(ctx context.Context, event domain.ContactEvent) {
	if event.Type != domain.ContactSubmitted {
		return
	}
	log.Printf("Processing contact: ContactID=%d, From=%s", event.ContactID, event.Email)

	if err := c.Store.RecordContact(ctx, event.Timestamp); err != nil {
		log.Printf("Error updating contact counters: %v", err)
	}

	if c.Mailer == nil {
		return
	}
	if err := c.Mailer.SendContact(event); err != nil {
		log.Printf("Error sending contact e-mail: %v", err)
		return
	}

	log.Printf("Successfully notified admin about contact %d", event.ContactID)
}

var _ ConsumerInterface = (*Consumer)(nil)
