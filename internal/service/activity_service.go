package service

import (
	"context"

	"saas-notes-be/internal/pkg/logger"
	"saas-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// IActivityService consumes session activity events and writes them to the
// audit log.
type IActivityService interface {
	Consume(ctx context.Context) error
}

type activityService struct {
	subscriber message.Subscriber
	topicName  string
	logger     logger.ILogger
}

func NewActivityService(subscriber message.Subscriber, topicName string, logger logger.ILogger) IActivityService {
	return &activityService{
		subscriber: subscriber,
		topicName:  topicName,
		logger:     logger,
	}
}

func (s *activityService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *activityService) processMessage(msg *message.Message) {
	// Ack everything, a malformed event would otherwise be redelivered forever
	defer msg.Ack()

	evt, err := events.Decode(msg.Payload)
	if err != nil {
		s.logger.Error("activity", "Failed to decode activity event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		return
	}

	details := map[string]interface{}{
		"event_type":  evt.EventType(),
		"occurred_at": evt.Timestamp(),
	}
	for k, v := range evt.Payload() {
		details[k] = v
	}

	s.logger.Info("activity", describe(evt.EventType()), details)
}

func describe(eventType string) string {
	switch eventType {
	case events.TypeUserLogin:
		return "Login successful"
	case events.TypeUserLogout:
		return "Logged out"
	case events.TypeSubscriptionUpgraded:
		return "Upgraded to Pro"
	case events.TypeNoteCreated:
		return "Note created"
	case events.TypeNoteUpdated:
		return "Note updated"
	case events.TypeNoteDeleted:
		return "Note deleted"
	case events.TypeNoteLimitReached:
		return "Note limit reached"
	default:
		return eventType
	}
}
