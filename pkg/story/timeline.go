package story

import "time"

// Timeline gathers every authored trigger delay in one place so the whole
// pacing of the game can be compressed for tests or sped up in development.
type Timeline struct {
	BankReaction time.Duration // PIN success → Ricardo reacts
	UnknownHint  time.Duration // PIN success → Desconhecido hint
	PhotoThreat  time.Duration // secret photo revealed → threat message
	GhostEmail   time.Duration // spyware installed → email appears
	EndgameStart time.Duration // second anomaly captured → endgame begins

	// EndgameBeats are the waits before each of the Chefe's replies during
	// the final sequence, in order.
	EndgameBeats []time.Duration

	// GhostContact is the pause after the last beat before "Eu (Sofia)"
	// appears at the top of the contact list.
	GhostContact time.Duration
}

// DefaultTimeline returns the shipped pacing.
func DefaultTimeline() Timeline {
	return Timeline{
		BankReaction: 10 * time.Second,
		UnknownHint:  20 * time.Second,
		PhotoThreat:  5 * time.Second,
		GhostEmail:   20 * time.Second,
		EndgameStart: 3 * time.Second,
		EndgameBeats: []time.Duration{
			5 * time.Second,
			3 * time.Second,
			4 * time.Second,
			2 * time.Second,
			3 * time.Second,
			3 * time.Second,
			3 * time.Second,
		},
		GhostContact: 5 * time.Second,
	}
}

// Scaled returns a copy of the timeline with every delay multiplied by f.
// Used by tests and the GAME_SPEED dev setting.
func (t Timeline) Scaled(f float64) Timeline {
	scaled := t
	scaled.BankReaction = scale(t.BankReaction, f)
	scaled.UnknownHint = scale(t.UnknownHint, f)
	scaled.PhotoThreat = scale(t.PhotoThreat, f)
	scaled.GhostEmail = scale(t.GhostEmail, f)
	scaled.EndgameStart = scale(t.EndgameStart, f)
	scaled.GhostContact = scale(t.GhostContact, f)
	scaled.EndgameBeats = make([]time.Duration, len(t.EndgameBeats))
	for i, d := range t.EndgameBeats {
		scaled.EndgameBeats[i] = scale(d, f)
	}
	return scaled
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}

// Evidence resource names captured through the site-cam minigame.
const (
	EvidenceShadow = "cam02_shadow"
	EvidenceHand   = "cam02_hand"
)

// Attachment resource names used by scripted messages.
const (
	AttachmentProof     = "cam02_hand"
	AttachmentEmptyCave = "cave_empty"
)
