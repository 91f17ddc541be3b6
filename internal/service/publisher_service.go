package service

import (
	"context"
	"fmt"

	"saas-notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, evt events.Event) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) Publish(ctx context.Context, evt events.Event) error {
	payload, err := events.Encode(evt)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", evt.EventType(), err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", evt.EventType())
	msg.SetContext(ctx)

	return p.publisher.Publish(p.topicName, msg)
}
