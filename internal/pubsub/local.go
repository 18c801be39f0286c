package pubsub

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

var _ PubSubClient = (*Local)(nil)

// Local delivers events in-process to subscribed handlers. It stands in for
// Cloud Pub/Sub when no project is configured, so payloads still go through
// the same MessagePack encoding.
type Local struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewLocal creates a Local client with no subscribers.
func NewLocal() *Local {
	return &Local{handlers: make(map[EventType][]Handler)}
}

// Subscribe registers h for every event published to topic.
func (l *Local) Subscribe(topic EventType, h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[topic] = append(l.handlers[topic], h)
}

// SendMessage encodes data and hands it to each subscriber in turn. Handler
// failures are logged; like a real broker, publishing still succeeds.
func (l *Local) SendMessage(topic EventType, data any) error {
	payload, err := msgpack.Marshal(data)
	if err != nil {
		log.Error("MessagePack marshal error", "error", err)
		return err
	}

	l.mu.RLock()
	handlers := append([]Handler(nil), l.handlers[topic]...)
	l.mu.RUnlock()

	if len(handlers) == 0 {
		log.Debug("No local subscribers for topic", "topic", topic)
	}
	for _, h := range handlers {
		if err := h(payload); err != nil {
			log.Error("Local subscriber failed", "topic", topic, "error", err)
		}
	}
	return nil
}

func (l *Local) ProcessMessage(data []byte, returnValue any) error {
	return decode(data, returnValue)
}

func (l *Local) Close() error {
	return nil
}
