// Package state holds the single source of truth for narrative progress:
// contacts and their histories, monotonic story flags, collected evidence,
// the inbox, and the notification feed. All operations are total: missing
// contacts and already-set flags are normal control-flow values, never
// errors.
package state

import (
	"sync"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

// GameState is the process-wide store. It is constructible so tests can run
// against fresh, isolated instances; there is no package-level singleton.
// Methods are safe for concurrent use by timer goroutines and the UI.
type GameState struct {
	mu       sync.Mutex
	contacts []*Contact
	byID     map[string]*Contact
	flags    map[string]bool
	emails   []story.Email
	evidence []string
	bus      *events.Bus
}

// New builds a fresh state seeded with the given contacts. A nil bus is
// replaced with an unsubscribed one so callers that don't care about events
// can pass nil.
func New(bus *events.Bus, seeds []story.ContactSeed) *GameState {
	if bus == nil {
		bus = events.NewBus(nil)
	}
	gs := &GameState{
		byID:  make(map[string]*Contact),
		flags: make(map[string]bool),
		bus:   bus,
	}
	for _, seed := range seeds {
		c := contactFromSeed(seed)
		gs.contacts = append(gs.contacts, c)
		gs.byID[c.ID] = c
	}
	return gs
}

// Bus exposes the event bus so engines built on this state share it.
func (gs *GameState) Bus() *events.Bus { return gs.bus }

// Contact returns a snapshot of the contact, or false when it does not exist
// yet. Dynamically-appearing contacts are absent until a trigger adds them.
func (gs *GameState) Contact(id string) (ContactView, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	c, ok := gs.byID[id]
	if !ok {
		return ContactView{}, false
	}
	return c.view(), true
}

// Contacts returns snapshots of all contacts in display order.
func (gs *GameState) Contacts() []ContactView {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	views := make([]ContactView, len(gs.contacts))
	for i, c := range gs.contacts {
		views[i] = c.view()
	}
	return views
}

// AddContact inserts a contact if no contact with that ID exists. When
// prepend is true the contact appears at the top of the list (the ghost
// contact). Idempotent.
func (gs *GameState) AddContact(seed story.ContactSeed, prepend bool) bool {
	gs.mu.Lock()
	if _, ok := gs.byID[seed.ID]; ok {
		gs.mu.Unlock()
		return false
	}
	c := contactFromSeed(seed)
	if prepend {
		gs.contacts = append([]*Contact{c}, gs.contacts...)
	} else {
		gs.contacts = append(gs.contacts, c)
	}
	gs.byID[c.ID] = c
	gs.mu.Unlock()

	gs.bus.Publish(events.Event{Type: events.TypeContactAdded, ContactID: seed.ID})
	return true
}

// AppendMessage appends to the contact's history. Silent no-op when the
// contact is absent (defensive against authoring mistakes).
func (gs *GameState) AppendMessage(contactID string, msg story.Message) {
	gs.mu.Lock()
	c, ok := gs.byID[contactID]
	if !ok {
		gs.mu.Unlock()
		return
	}
	c.History = append(c.History, msg)
	gs.mu.Unlock()

	gs.bus.Publish(events.Event{Type: events.TypeMessageAppended, ContactID: contactID})
}

// SetNode updates the contact's active dialogue node. A nil id returns the
// conversation to idle. No-op for absent contacts.
func (gs *GameState) SetNode(contactID string, nodeID *string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	c, ok := gs.byID[contactID]
	if !ok {
		return
	}
	if nodeID == nil {
		c.CurrentNodeID = nil
		return
	}
	id := *nodeID
	c.CurrentNodeID = &id
}

// MarkAllRead marks every message of the contact as read. No-op when the
// contact is absent or already all-read.
func (gs *GameState) MarkAllRead(contactID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	c, ok := gs.byID[contactID]
	if !ok {
		return
	}
	for i := range c.History {
		c.History[i].Read = true
	}
}

// HasUnread reports whether any contact has at least one unread message.
// Drives the chat notification badge.
func (gs *GameState) HasUnread() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	for _, c := range gs.contacts {
		for _, m := range c.History {
			if !m.Read {
				return true
			}
		}
	}
	return false
}

// SetFlag sets a monotonic flag and reports whether this call transitioned
// it. Callers use the return value to fire side effects exactly once.
func (gs *GameState) SetFlag(name string) bool {
	gs.mu.Lock()
	if gs.flags[name] {
		gs.mu.Unlock()
		return false
	}
	gs.flags[name] = true
	gs.mu.Unlock()

	gs.bus.Publish(events.Event{Type: events.TypeFlagSet, Flag: name})
	return true
}

// Flag reports whether the named flag is set.
func (gs *GameState) Flag(name string) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.flags[name]
}

// RecordEvidence inserts a captured resource reference. Idempotent; insertion
// order is preserved for display.
func (gs *GameState) RecordEvidence(ref string) {
	gs.mu.Lock()
	for _, e := range gs.evidence {
		if e == ref {
			gs.mu.Unlock()
			return
		}
	}
	gs.evidence = append(gs.evidence, ref)
	gs.mu.Unlock()

	gs.bus.Publish(events.Event{Type: events.TypeEvidenceRecorded, Text: ref})
}

// Evidence returns the captured references in insertion order.
func (gs *GameState) Evidence() []string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	out := make([]string, len(gs.evidence))
	copy(out, gs.evidence)
	return out
}

// InsertEmailOnce appends the email only when the inbox is still empty. The
// narrative has a single one-shot sender, so emptiness doubles as the
// existence check.
func (gs *GameState) InsertEmailOnce(email story.Email) bool {
	gs.mu.Lock()
	if len(gs.emails) > 0 {
		gs.mu.Unlock()
		return false
	}
	gs.emails = append(gs.emails, email)
	gs.mu.Unlock()

	gs.bus.Publish(events.Event{Type: events.TypeEmailInserted})
	return true
}

// Emails returns a snapshot of the inbox.
func (gs *GameState) Emails() []story.Email {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	out := make([]story.Email, len(gs.emails))
	copy(out, gs.emails)
	return out
}

// MarkEmailRead marks the email with the given ID as read. No-op for unknown
// IDs.
func (gs *GameState) MarkEmailRead(id string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	for i := range gs.emails {
		if gs.emails[i].ID == id {
			gs.emails[i].Read = true
			return
		}
	}
}

// HasUnreadEmails reports whether any inbox entry is unread.
func (gs *GameState) HasUnreadEmails() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	for _, e := range gs.emails {
		if !e.Read {
			return true
		}
	}
	return false
}

// Notify publishes a notification banner event. Callers must mutate state
// first and notify second, so a screen reacting to the notification always
// observes consistent state. The presentation layer owns the timed dismiss.
func (gs *GameState) Notify(text string) {
	gs.bus.Publish(events.Event{Type: events.TypeNotification, Text: text})
	gs.bus.Cue(events.CueVibrate)
}
