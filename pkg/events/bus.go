package events

import (
	"log/slog"
	"sync"
)

const subscriberBuffer = 256

// Bus fans engine events out to subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the event. The presentation layer
// re-reads snapshots from GameState, so a dropped event degrades to a late
// repaint rather than lost state.
type Bus struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	logger *slog.Logger
}

// NewBus creates an event bus. A nil logger falls back to slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[int]chan Event),
		logger: logger,
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called on teardown; after cancel the channel is closed.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber without blocking.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.logger.Warn("event dropped for slow subscriber",
				"subscriber", id,
				"event_type", ev.Type)
		}
	}
}

// Cue publishes a named audio/haptic cue.
func (b *Bus) Cue(name string) {
	b.Publish(Event{Type: TypeCue, Text: name})
}
