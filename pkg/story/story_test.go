package story

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogueTreesReferenceIntegrity(t *testing.T) {
	trees := DialogueTrees()

	for id, n := range trees {
		assert.Equal(t, id, n.ID, "map key and node ID must agree")
		for _, opt := range n.Options {
			assert.NotEmpty(t, opt.Text)
			if opt.NextNodeID != nil {
				_, ok := trees[*opt.NextNodeID]
				assert.True(t, ok, "node %q points at missing node %q", id, *opt.NextNodeID)
			}
		}
	}
}

func TestSeedContactStartNodesExist(t *testing.T) {
	trees := DialogueTrees()

	for _, seed := range SeedContacts() {
		if seed.StartNodeID == nil {
			continue
		}
		_, ok := trees[*seed.StartNodeID]
		assert.True(t, ok, "contact %q starts at missing node", seed.ID)
	}

	ghost := GhostContact()
	require.NotNil(t, ghost.StartNodeID)
	assert.Equal(t, NodeGhostIntro, *ghost.StartNodeID)
}

func TestCaveScenesReferenceIntegrity(t *testing.T) {
	scenes := CaveScenes()

	for id, s := range scenes {
		assert.Equal(t, id, s.ID)
		if s.AutoNext != "" {
			_, ok := scenes[s.AutoNext]
			assert.True(t, ok, "scene %q auto-transitions to missing scene %q", id, s.AutoNext)
		}
		for _, c := range s.Choices {
			_, ok := scenes[c.Target]
			assert.True(t, ok, "scene %q choice targets missing scene %q", id, c.Target)
		}
		if s.Terminal() {
			assert.Empty(t, s.Choices, "ending %q must have no choices", id)
			assert.Empty(t, s.AutoNext, "ending %q must have no auto transition", id)
		}
	}
}

func TestCaveEveryPathEnds(t *testing.T) {
	scenes := CaveScenes()

	// Walk forward from boot; every branch must hit a terminal scene without
	// revisiting one.
	var walk func(id string, seen map[string]bool)
	walk = func(id string, seen map[string]bool) {
		require.False(t, seen[id], "cycle through scene %q", id)
		seen[id] = true
		defer delete(seen, id)

		s, ok := scenes[id]
		require.True(t, ok)
		if s.Terminal() {
			return
		}
		require.True(t, s.AutoNext != "" || len(s.Choices) > 0, "dead end at %q", id)
		if s.AutoNext != "" {
			walk(s.AutoNext, seen)
		}
		for _, c := range s.Choices {
			walk(c.Target, seen)
		}
	}
	walk(SceneBoot, map[string]bool{})
}

func TestSeedsLeakThePins(t *testing.T) {
	// The bank PIN is Sofia's birthday, hidden in the notes app.
	found := false
	for _, n := range Notes() {
		if strings.Contains(n.Content, "15 de Maio") {
			found = true
		}
	}
	assert.True(t, found, "notes must leak the bank PIN date")
	assert.Equal(t, "1505", BankPIN)

	// The gallery PIN is the timestamp of Ricardo's farewell message.
	found = false
	for _, seed := range SeedContacts() {
		if seed.ID != ContactRicardo {
			continue
		}
		for _, m := range seed.Messages {
			if strings.Contains(m.Timestamp, "22:31") {
				found = true
			}
		}
	}
	assert.True(t, found, "Ricardo's history must leak the gallery PIN")
	assert.Equal(t, "2231", GalleryPIN)
}

func TestEndgameRepliesMatchBeats(t *testing.T) {
	replies := EndgameReplies()
	beats := DefaultTimeline().EndgameBeats

	require.Equal(t, len(beats), len(replies), "one beat per reply")
	assert.Equal(t, "Sofia?", replies[0])
	assert.Empty(t, replies[len(replies)-1], "last beat is the photo with no text")
}

func TestTimelineScaled(t *testing.T) {
	tl := DefaultTimeline().Scaled(0.5)

	assert.Equal(t, 5*time.Second, tl.BankReaction)
	assert.Equal(t, 10*time.Second, tl.UnknownHint)
	require.Len(t, tl.EndgameBeats, len(DefaultTimeline().EndgameBeats))
	assert.Equal(t, 2500*time.Millisecond, tl.EndgameBeats[0])

	// Scaling must not alias the original's slice.
	tl.EndgameBeats[0] = 0
	assert.Equal(t, 5*time.Second, DefaultTimeline().EndgameBeats[0])
}

func TestNewMessageDefaults(t *testing.T) {
	m := NewMessage("olá", true, "Hoje 21:00")

	assert.NotEmpty(t, m.ID)
	assert.True(t, m.FromPlayer)
	assert.False(t, m.Read)
	assert.Equal(t, "Hoje 21:00", m.Timestamp)

	other := NewMessage("olá", true, "Hoje 21:00")
	assert.NotEqual(t, m.ID, other.ID)
}

func TestGhostEmailFreshPerCall(t *testing.T) {
	a, b := GhostEmail(), GhostEmail()

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Read)
	assert.Contains(t, a.Body, "membrana")
}
