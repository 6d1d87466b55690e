package events

import (
	"encoding/json"
	"fmt"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

const (
	TypeMatchFinished = "match_finished"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MatchFinishedPayload is the payload for the "match_finished" event.
type MatchFinishedPayload struct {
	MatchID string `json:"match_id"`
	Mode    string `json:"mode"`
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
	Winner  string `json:"winner"`
	Moves   int    `json:"moves"`
}

func New(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	return Event{Type: eventType, Payload: raw}, nil
}
