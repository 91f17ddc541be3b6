package events

import (
	"encoding/json"
	"time"
)

// Event defines the contract for all session activity events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

const (
	TypeUserLogin            = "USER_LOGIN"
	TypeUserLogout           = "USER_LOGOUT"
	TypeSubscriptionUpgraded = "SUBSCRIPTION_UPGRADED"
	TypeNoteCreated          = "NOTE_CREATED"
	TypeNoteUpdated          = "NOTE_UPDATED"
	TypeNoteDeleted          = "NOTE_DELETED"
	TypeNoteLimitReached     = "NOTE_LIMIT_REACHED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Encode turns any Event into its wire form.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(BaseEvent{
		Type:       e.EventType(),
		Data:       e.Payload(),
		OccurredAt: e.Timestamp(),
	})
}

func Decode(payload []byte) (BaseEvent, error) {
	var e BaseEvent
	err := json.Unmarshal(payload, &e)
	return e, err
}
