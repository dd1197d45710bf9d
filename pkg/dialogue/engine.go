// Package dialogue drives one conversation's branching script: player reply
// options in, paced NPC playback out.
package dialogue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/state"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

// Pacing controls NPC playback rhythm. Think is the wait before each NPC
// line, Pause the beat after it.
type Pacing struct {
	Think time.Duration
	Pause time.Duration
}

// DefaultPacing returns the shipped rhythm.
func DefaultPacing() Pacing {
	return Pacing{Think: 1500 * time.Millisecond, Pause: 500 * time.Millisecond}
}

// Engine plays dialogue trees against a GameState. One engine serves every
// conversation; playback is guarded per contact so selecting an option while
// the NPC is still "typing" is ignored rather than double-appending.
type Engine struct {
	gs     *state.GameState
	nodes  map[string]story.DialogueNode
	pacing Pacing
	now    func() time.Time
	logger *slog.Logger

	mu      sync.Mutex
	busy    map[string]bool
	options map[string][]story.ReplyOption
}

// NewEngine builds a dialogue engine over the given state and node table.
func NewEngine(gs *state.GameState, nodes map[string]story.DialogueNode, pacing Pacing, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		gs:      gs,
		nodes:   nodes,
		pacing:  pacing,
		now:     time.Now,
		logger:  logger,
		busy:    make(map[string]bool),
		options: make(map[string][]story.ReplyOption),
	}
}

// SetNow overrides the timestamp clock. Test hook.
func (e *Engine) SetNow(now func() time.Time) { e.now = now }

// EnterConversation marks the contact's history read and computes the reply
// options for its stored node. Options are only offered when the last
// message, if any, was not from the player: the engine never gives the
// player two consecutive turns.
func (e *Engine) EnterConversation(contactID string) {
	e.gs.MarkAllRead(contactID)

	c, ok := e.gs.Contact(contactID)
	if !ok || c.CurrentNodeID == nil {
		e.setOptions(contactID, nil)
		return
	}
	node, ok := e.nodes[*c.CurrentNodeID]
	if !ok {
		e.setOptions(contactID, nil)
		return
	}
	if last, exists := c.LastMessage(); exists && last.FromPlayer {
		e.setOptions(contactID, nil)
		return
	}
	e.setOptions(contactID, node.Options)
}

// Options returns the currently offered replies for the contact. Empty while
// NPC playback runs.
func (e *Engine) Options(contactID string) []story.ReplyOption {
	e.mu.Lock()
	defer e.mu.Unlock()
	opts := e.options[contactID]
	out := make([]story.ReplyOption, len(opts))
	copy(out, opts)
	return out
}

// IsTyping reports whether NPC playback is running for the contact.
func (e *Engine) IsTyping(contactID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy[contactID]
}

// SelectOption records the player's reply and starts NPC playback for the
// option's target node. The player message is observable immediately; the
// NPC response plays back asynchronously with pacing. Re-entrant calls for a
// contact whose playback is still running are ignored. The context bounds
// the playback: cancellation (screen teardown) drops pending lines without
// appending them.
func (e *Engine) SelectOption(ctx context.Context, contactID string, opt story.ReplyOption) {
	if !e.claim(contactID) {
		return
	}

	msg := story.NewMessage(opt.Text, true, e.timestamp())
	msg.Read = true
	e.gs.AppendMessage(contactID, msg)
	e.setOptions(contactID, nil)
	e.gs.SetNode(contactID, opt.NextNodeID)

	if opt.NextNodeID == nil {
		e.release(contactID)
		return
	}
	node, ok := e.nodes[*opt.NextNodeID]
	if !ok {
		// Authoring mistake; degrade to idle rather than crash.
		e.logger.Warn("dialogue node not found", "node", *opt.NextNodeID, "contact", contactID)
		e.release(contactID)
		return
	}

	e.startPlayback(ctx, contactID, node)
}

// PlayNode runs NPC playback for a node directly, without a player turn.
// Used for scripted conversations that speak first (the ghost chat).
func (e *Engine) PlayNode(ctx context.Context, contactID string, nodeID string) {
	node, ok := e.nodes[nodeID]
	if !ok {
		e.logger.Warn("dialogue node not found", "node", nodeID, "contact", contactID)
		return
	}
	if !e.claim(contactID) {
		return
	}

	e.gs.SetNode(contactID, &node.ID)
	e.startPlayback(ctx, contactID, node)
}

// claim marks the contact busy and reports whether this caller won it. The
// check and the set share one critical section so concurrent callers cannot
// both start a turn.
func (e *Engine) claim(contactID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.busy[contactID] {
		return false
	}
	e.busy[contactID] = true
	return true
}

func (e *Engine) release(contactID string) {
	e.mu.Lock()
	delete(e.busy, contactID)
	e.mu.Unlock()
}

// startPlayback runs with the busy flag already claimed by the caller.
func (e *Engine) startPlayback(ctx context.Context, contactID string, node story.DialogueNode) {
	if len(node.NPCMessages) == 0 {
		// Nothing to type; publish the node's options right away.
		e.finishPlayback(contactID, node.Options)
		return
	}

	e.setTyping(contactID, true)
	go e.playback(ctx, contactID, node)
}

func (e *Engine) playback(ctx context.Context, contactID string, node story.DialogueNode) {
	bus := e.gs.Bus()

	for i, line := range node.NPCMessages {
		if !wait(ctx, e.pacing.Think) {
			e.abortPlayback(contactID)
			return
		}
		msg := story.NewMessage(line, false, e.timestamp())
		msg.Read = true
		e.gs.AppendMessage(contactID, msg)
		bus.Cue(events.CueReceived)

		if !wait(ctx, e.pacing.Pause) {
			e.abortPlayback(contactID)
			return
		}
		if i < len(node.NPCMessages)-1 {
			bus.Cue(events.CueTyping)
		}
	}

	e.setTyping(contactID, false)
	e.finishPlayback(contactID, node.Options)
}

func (e *Engine) finishPlayback(contactID string, opts []story.ReplyOption) {
	e.release(contactID)
	e.setOptions(contactID, opts)
}

// abortPlayback handles context cancellation: the remaining lines are
// dropped and no options are published. The conversation stays on its node
// and resumes as idle content on the next entry.
func (e *Engine) abortPlayback(contactID string) {
	e.release(contactID)
}

func (e *Engine) setTyping(contactID string, typing bool) {
	bus := e.gs.Bus()
	ev := events.Event{Type: events.TypeTypingChanged, ContactID: contactID}
	if typing {
		ev.Text = "true"
		bus.Publish(ev)
		bus.Cue(events.CueTyping)
		return
	}
	ev.Text = "false"
	bus.Publish(ev)
}

func (e *Engine) setOptions(contactID string, opts []story.ReplyOption) {
	e.mu.Lock()
	if len(opts) == 0 {
		delete(e.options, contactID)
	} else {
		stored := make([]story.ReplyOption, len(opts))
		copy(stored, opts)
		e.options[contactID] = stored
	}
	e.mu.Unlock()
	e.gs.Bus().Publish(events.Event{Type: events.TypeOptionsChanged, ContactID: contactID})
}

func (e *Engine) timestamp() string {
	return "Hoje " + e.now().Format("15:04")
}

// wait sleeps for d unless the context ends first; reports whether the full
// wait elapsed.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
