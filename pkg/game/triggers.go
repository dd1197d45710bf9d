package game

import (
	"context"
	"time"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/state"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
	"github.com/GabrielH4nma/Pilar-IV/pkg/trigger"
)

const (
	triggerBankReaction = "bank_reaction"
	triggerUnknownHint  = "unknown_hint"
	triggerPhotoThreat  = "photo_threat"
	triggerGhostEmail   = "ghost_email"
	triggerEndgame      = "endgame"
)

func (g *Game) registerTriggers() {
	g.sched.Register(trigger.Trigger{
		Name:   triggerBankReaction,
		Guard:  story.GuardBankReaction,
		Delay:  g.timeline.BankReaction,
		Effect: g.bankReaction,
	})
	g.sched.Register(trigger.Trigger{
		Name:   triggerUnknownHint,
		Guard:  story.GuardUnknownHint,
		Delay:  g.timeline.UnknownHint,
		Effect: g.unknownHint,
	})
	g.sched.Register(trigger.Trigger{
		Name:   triggerPhotoThreat,
		Guard:  story.GuardPhotoThreat,
		Delay:  g.timeline.PhotoThreat,
		Effect: g.photoThreat,
	})
	g.sched.Register(trigger.Trigger{
		Name:   triggerGhostEmail,
		Guard:  story.GuardGhostEmail,
		Delay:  g.timeline.GhostEmail,
		Effect: g.ghostEmail,
	})
	g.sched.Register(trigger.Trigger{
		Name:   triggerEndgame,
		Guard:  story.GuardEndgame,
		Delay:  g.timeline.EndgameStart,
		Effect: g.endgame,
	})
}

// bankReaction: Ricardo saw the bank notification and opens the clinic
// confrontation branch.
func (g *Game) bankReaction(ctx context.Context, gs *state.GameState) {
	gs.AppendMessage(story.ContactRicardo, story.NewMessage(story.BankReactionText, false, "Agora"))
	nodeID := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &nodeID)
	gs.Notify(story.BankReactionNotice)
}

// unknownHint: the unknown number points at the gallery and its PIN.
func (g *Game) unknownHint(ctx context.Context, gs *state.GameState) {
	gs.AppendMessage(story.ContactUnknown, story.NewMessage(story.UnknownHintFirst, false, "Agora"))
	gs.AppendMessage(story.ContactUnknown, story.NewMessage(story.UnknownHintSecond, false, "Agora"))
	gs.Notify(story.UnknownHintNotice)
}

func (g *Game) photoThreat(ctx context.Context, gs *state.GameState) {
	gs.AppendMessage(story.ContactUnknown, story.NewMessage(story.PhotoThreatText, false, "Agora"))
	gs.Notify(story.PhotoThreatNotice)
}

// ghostEmail inserts Sofia's log. The inbox-must-be-empty rule lives in
// InsertEmailOnce; a playthrough where an email already landed gets nothing.
func (g *Game) ghostEmail(ctx context.Context, gs *state.GameState) {
	if gs.InsertEmailOnce(story.GhostEmail()) {
		gs.Notify(story.GhostEmailNotice)
	}
}

// endgame plays the final sequence: the player's automatic report to the
// site manager, his paced real-time replies, and the ghost contact surfacing
// at the top of the chat list.
func (g *Game) endgame(ctx context.Context, gs *state.GameState) {
	proof := story.NewMessage(story.ProofCaption, true, "A enviar...")
	proof.Read = true
	proof.Attachment = story.AttachmentProof
	gs.AppendMessage(story.ContactChefe, proof)

	claim := story.NewMessage(story.ProofMessage, true, "Agora")
	claim.Read = true
	gs.AppendMessage(story.ContactChefe, claim)

	replies := story.EndgameReplies()
	for i, text := range replies {
		if i >= len(g.timeline.EndgameBeats) {
			break
		}
		if !waitFor(ctx, g.timeline.EndgameBeats[i]) {
			return
		}
		msg := story.NewMessage(text, false, "Agora")
		if text == "" {
			msg.Attachment = story.AttachmentEmptyCave
		}
		gs.AppendMessage(story.ContactChefe, msg)
		gs.Bus().Cue(events.CueReceived)
		switch i {
		case 0:
			gs.Notify(story.EndgameFirstNotice)
		case len(replies) - 1:
			gs.Notify(story.EndgamePhotoNotice)
		}
	}

	if !waitFor(ctx, g.timeline.GhostContact) {
		return
	}
	// No popup here; the player has to find her.
	if gs.AddContact(story.GhostContact(), true) {
		gs.Bus().Cue(events.CueReceived)
	}
}

func waitFor(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
