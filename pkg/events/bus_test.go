package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublished(t *testing.T) {
	b := NewBus(nil)
	sub, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Type: TypeNotification, Text: "olá"})

	ev := <-sub
	assert.Equal(t, TypeNotification, ev.Type)
	assert.Equal(t, "olá", ev.Text)
}

func TestPublishFansOut(t *testing.T) {
	b := NewBus(nil)
	sub1, cancel1 := b.Subscribe()
	defer cancel1()
	sub2, cancel2 := b.Subscribe()
	defer cancel2()

	b.Publish(Event{Type: TypeFlagSet, Flag: "bank_hacked"})

	assert.Equal(t, "bank_hacked", (<-sub1).Flag)
	assert.Equal(t, "bank_hacked", (<-sub2).Flag)
}

func TestPublishNeverBlocksOnFullSubscriber(t *testing.T) {
	b := NewBus(nil)
	_, cancel := b.Subscribe() // never drained
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			b.Publish(Event{Type: TypeCue, Text: CueReceived})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := NewBus(nil)
	sub, cancel := b.Subscribe()

	cancel()
	_, open := <-sub
	assert.False(t, open)

	// Publishing after cancel must not panic or resurrect the subscriber.
	require.NotPanics(t, func() {
		b.Publish(Event{Type: TypeNotification})
	})
}

func TestCancelIsIdempotent(t *testing.T) {
	b := NewBus(nil)
	_, cancel := b.Subscribe()

	require.NotPanics(t, func() {
		cancel()
		cancel()
	})
}

func TestCuePublishesCueEvent(t *testing.T) {
	b := NewBus(nil)
	sub, cancel := b.Subscribe()
	defer cancel()

	b.Cue(CueJumpscare)

	ev := <-sub
	assert.Equal(t, TypeCue, ev.Type)
	assert.Equal(t, CueJumpscare, ev.Text)
}
