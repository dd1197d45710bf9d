// Package story holds the static narrative content of Pilar IV: seed
// contacts, dialogue trees, emails, cave scenes and the trigger timeline.
// Everything here is authored data; runtime mutation lives in pkg/state.
package story

import "github.com/google/uuid"

// Message is one chat bubble. Content may be empty when the message only
// carries an attachment. Once appended to a history, every field except Read
// is immutable.
type Message struct {
	ID         string `json:"id"`
	Content    string `json:"content"`
	FromPlayer bool   `json:"from_player"`
	Timestamp  string `json:"timestamp"` // narrative display time, not a clock
	Read       bool   `json:"read"`
	Attachment string `json:"attachment,omitempty"` // image resource name
}

// NewMessage builds a message with a fresh ID.
func NewMessage(content string, fromPlayer bool, timestamp string) Message {
	return Message{
		ID:         uuid.New().String(),
		Content:    content,
		FromPlayer: fromPlayer,
		Timestamp:  timestamp,
	}
}

// ReplyOption is one player choice in a conversation. A nil NextNodeID ends
// the branch and returns the contact to idle.
type ReplyOption struct {
	Text       string  `json:"text"`
	NextNodeID *string `json:"next_node_id,omitempty"`
}

// DialogueNode is one step of a conversation graph: the NPC lines played
// back in order, then the options offered to the player.
type DialogueNode struct {
	ID          string        `json:"id"`
	NPCMessages []string      `json:"npc_messages"`
	Options     []ReplyOption `json:"options"`
}

// ContactSeed is the authored starting point of a contact.
type ContactSeed struct {
	ID          string
	Name        string
	Status      string
	StartNodeID *string
	Messages    []Message
}

// Email is one inbox entry. Read is the only mutable field.
type Email struct {
	ID      string `json:"id"`
	Sender  string `json:"sender"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}

func node(id string) *string { return &id }
