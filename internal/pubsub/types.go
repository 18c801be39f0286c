package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
// It doubles as the topic name.
type EventType string

const (
	EventPerformanceRecorded EventType = "performance-recorded"
)

// PerformanceKind tells which performance table an event refers to.
type PerformanceKind string

const (
	KindBatting PerformanceKind = "batting"
	KindBowling PerformanceKind = "bowling"
)

// PerformanceRecorded is published after a batting or bowling record is saved.
type PerformanceRecorded struct {
	Kind     PerformanceKind `msgpack:"kind"`
	MatchID  string          `msgpack:"match_id"`
	PlayerID string          `msgpack:"player_id"`
}

// PushRequest is the body Pub/Sub push subscriptions POST to the service.
type PushRequest struct {
	Message struct {
		Data []byte `json:"data,omitempty"`
		ID   string `json:"messageId"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Handler consumes the encoded payload of one event.
type Handler func(data []byte) error
