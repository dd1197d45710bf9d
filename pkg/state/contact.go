package state

import "github.com/GabrielH4nma/Pilar-IV/pkg/story"

// Contact is the runtime record of one conversation. History is append-only;
// messages are never removed and only their Read flag mutates.
type Contact struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	CurrentNodeID *string         `json:"current_node_id,omitempty"`
	History       []story.Message `json:"history"`
}

// ContactView is a read-only snapshot of a contact handed to the
// presentation layer.
type ContactView struct {
	ID            string
	Name          string
	Status        string
	CurrentNodeID *string
	History       []story.Message
}

// LastMessage returns the newest message and true, or a zero message and
// false when the history is empty.
func (v ContactView) LastMessage() (story.Message, bool) {
	if len(v.History) == 0 {
		return story.Message{}, false
	}
	return v.History[len(v.History)-1], true
}

// Unread counts unread messages.
func (v ContactView) Unread() int {
	n := 0
	for _, m := range v.History {
		if !m.Read {
			n++
		}
	}
	return n
}

func contactFromSeed(seed story.ContactSeed) *Contact {
	c := &Contact{
		ID:     seed.ID,
		Name:   seed.Name,
		Status: seed.Status,
	}
	if seed.StartNodeID != nil {
		id := *seed.StartNodeID
		c.CurrentNodeID = &id
	}
	c.History = append(c.History, seed.Messages...)
	return c
}

func (c *Contact) view() ContactView {
	v := ContactView{
		ID:     c.ID,
		Name:   c.Name,
		Status: c.Status,
	}
	if c.CurrentNodeID != nil {
		id := *c.CurrentNodeID
		v.CurrentNodeID = &id
	}
	v.History = make([]story.Message, len(c.History))
	copy(v.History, c.History)
	return v
}
