package service

import (
	"context"
	"log"
	"strings"
	"time"

	"mikes-grill/grill-svc/internal/domain"
)

const ContactSubmittedEvent = "contact_submitted"

type ContactService struct {
	repo      ContactRepository
	publisher ContactPublisher
	counter   ContactCounter
}

func NewContactService(repo ContactRepository, publisher ContactPublisher, counter ContactCounter) *ContactService {
	return &ContactService{
		repo:      repo,
		publisher: publisher,
		counter:   counter,
	}
}

func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(msg.Message)
	if err := validateStruct(msg); err != nil {
		return err
	}
	if err := s.repo.CreateContact(msg); err != nil {
		return err
	}

	if s.publisher != nil {
		err := s.publisher.PublishContact(ctx, domain.ContactEvent{
			Type:      ContactSubmittedEvent,
			ContactID: msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Message:   msg.Message,
			Timestamp: time.Now(),
		})
		if err != nil {
			log.Printf("ERROR: Failed to publish contact %d: %v", msg.ID, err)
		}
	}
	return nil
}

// List returns every message newest first and marks the inbox as read.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	messages, err := s.repo.ListContacts()
	if err != nil {
		return nil, err
	}
	if s.counter != nil {
		if err := s.counter.ResetUnread(ctx); err != nil {
			log.Printf("ERROR: Failed to reset unread contacts: %v", err)
		}
	}
	return messages, nil
}

func (s *ContactService) Delete(id int) error {
	rows, err := s.repo.DeleteContact(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *ContactService) Summary(ctx context.Context) (domain.ContactSummary, error) {
	if s.counter == nil {
		return domain.ContactSummary{}, nil
	}
	return s.counter.Summary(ctx)
}

var _ ContactServiceInterface = (*ContactService)(nil)
