package dialogue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielH4nma/Pilar-IV/pkg/state"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

var testPacing = Pacing{Think: time.Millisecond, Pause: time.Millisecond}

func newTestEngine(t *testing.T) (*Engine, *state.GameState) {
	t.Helper()
	gs := state.New(nil, story.SeedContacts())
	e := NewEngine(gs, story.DialogueTrees(), testPacing, nil)
	return e, gs
}

func historyLen(t *testing.T, gs *state.GameState, contactID string) int {
	t.Helper()
	c, ok := gs.Contact(contactID)
	require.True(t, ok)
	return len(c.History)
}

func waitIdle(t *testing.T, e *Engine, contactID string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return !e.IsTyping(contactID)
	}, time.Second, time.Millisecond)
}

func TestEnterConversationMarksRead(t *testing.T) {
	e, gs := newTestEngine(t)

	require.True(t, gs.HasUnread())
	for _, c := range gs.Contacts() {
		e.EnterConversation(c.ID)
	}
	assert.False(t, gs.HasUnread())
}

func TestEnterConversationOffersNodeOptions(t *testing.T) {
	e, gs := newTestEngine(t)

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	e.EnterConversation(story.ContactRicardo)

	opts := e.Options(story.ContactRicardo)
	require.Len(t, opts, 2)
	assert.Contains(t, opts[0].Text, "saldo")
}

func TestNoOptionsAfterPlayerTurn(t *testing.T) {
	e, gs := newTestEngine(t)

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	gs.AppendMessage(story.ContactRicardo, story.NewMessage("Já respondi.", true, "Hoje 21:00"))

	e.EnterConversation(story.ContactRicardo)
	assert.Empty(t, e.Options(story.ContactRicardo),
		"the player never gets two consecutive turns")
}

func TestSelectOptionPlaysBranch(t *testing.T) {
	e, gs := newTestEngine(t)

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	e.EnterConversation(story.ContactRicardo)

	before := historyLen(t, gs, story.ContactRicardo)
	opts := e.Options(story.ContactRicardo)
	require.Len(t, opts, 2)

	e.SelectOption(context.Background(), story.ContactRicardo, opts[0])

	// Player message lands synchronously; options retract for the NPC turn.
	c, _ := gs.Contact(story.ContactRicardo)
	last, _ := c.LastMessage()
	assert.True(t, last.FromPlayer)
	assert.Equal(t, opts[0].Text, last.Content)

	require.Eventually(t, func() bool {
		return historyLen(t, gs, story.ContactRicardo) == before+1+3
	}, time.Second, time.Millisecond, "rational branch plays three NPC lines")
	waitIdle(t, e, story.ContactRicardo)

	c, _ = gs.Contact(story.ContactRicardo)
	last, _ = c.LastMessage()
	assert.Contains(t, last.Content, "Decide-te")
	assert.Empty(t, e.Options(story.ContactRicardo), "leaf node offers no replies")
}

func TestSelectOptionIgnoredWhileTyping(t *testing.T) {
	e, gs := newTestEngine(t)

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	e.EnterConversation(story.ContactRicardo)
	opts := e.Options(story.ContactRicardo)
	require.Len(t, opts, 2)

	before := historyLen(t, gs, story.ContactRicardo)
	e.SelectOption(context.Background(), story.ContactRicardo, opts[0])
	e.SelectOption(context.Background(), story.ContactRicardo, opts[1])

	waitIdle(t, e, story.ContactRicardo)
	// One player turn and one branch only.
	assert.Equal(t, before+1+3, historyLen(t, gs, story.ContactRicardo))
}

func TestConcurrentSelectOptionSingleTurn(t *testing.T) {
	// Think long enough that every racer arrives while the winner's
	// playback is still pending.
	gs := state.New(nil, story.SeedContacts())
	e := NewEngine(gs, story.DialogueTrees(), Pacing{Think: 20 * time.Millisecond, Pause: time.Millisecond}, nil)

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	e.EnterConversation(story.ContactRicardo)
	opts := e.Options(story.ContactRicardo)
	require.Len(t, opts, 2)

	before := historyLen(t, gs, story.ContactRicardo)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.SelectOption(context.Background(), story.ContactRicardo, opts[0])
		}()
	}
	wg.Wait()
	waitIdle(t, e, story.ContactRicardo)

	// Exactly one player turn and one branch, no interleaving.
	assert.Equal(t, before+1+3, historyLen(t, gs, story.ContactRicardo))
}

func TestSelectOptionTerminalReply(t *testing.T) {
	e, gs := newTestEngine(t)

	id := story.NodeChefeStart
	gs.SetNode(story.ContactChefe, &id)
	e.EnterConversation(story.ContactChefe)
	opts := e.Options(story.ContactChefe)
	require.Len(t, opts, 1)
	require.Nil(t, opts[0].NextNodeID)

	before := historyLen(t, gs, story.ContactChefe)
	e.SelectOption(context.Background(), story.ContactChefe, opts[0])

	assert.Equal(t, before+1, historyLen(t, gs, story.ContactChefe))
	assert.False(t, e.IsTyping(story.ContactChefe))

	c, _ := gs.Contact(story.ContactChefe)
	assert.Nil(t, c.CurrentNodeID, "terminal reply returns the conversation to idle")
}

func TestSelectOptionUnknownNodeDegrades(t *testing.T) {
	e, gs := newTestEngine(t)

	bad := "node_that_never_existed"
	before := historyLen(t, gs, story.ContactRicardo)
	e.SelectOption(context.Background(), story.ContactRicardo, story.ReplyOption{
		Text:       "Olá?",
		NextNodeID: &bad,
	})

	assert.Equal(t, before+1, historyLen(t, gs, story.ContactRicardo))
	assert.False(t, e.IsTyping(story.ContactRicardo))
}

func TestCancelDropsPendingLines(t *testing.T) {
	// Slow pacing so cancellation lands before the first NPC line.
	gs := state.New(nil, story.SeedContacts())
	e := NewEngine(gs, story.DialogueTrees(), Pacing{Think: 100 * time.Millisecond, Pause: time.Millisecond}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	e.EnterConversation(story.ContactRicardo)
	opts := e.Options(story.ContactRicardo)
	require.Len(t, opts, 2)

	before := historyLen(t, gs, story.ContactRicardo)
	e.SelectOption(ctx, story.ContactRicardo, opts[0])
	cancel()

	waitIdle(t, e, story.ContactRicardo)
	assert.Less(t, historyLen(t, gs, story.ContactRicardo), before+1+3,
		"cancellation must not play the full branch")
	assert.Empty(t, e.Options(story.ContactRicardo))
}

func TestPlayNodeScriptedConversation(t *testing.T) {
	e, gs := newTestEngine(t)
	gs.AddContact(story.GhostContact(), true)

	e.PlayNode(context.Background(), story.ContactGhost, story.NodeGhostIntro)

	require.Eventually(t, func() bool {
		return historyLen(t, gs, story.ContactGhost) == 3
	}, time.Second, time.Millisecond)
	waitIdle(t, e, story.ContactGhost)

	c, _ := gs.Contact(story.ContactGhost)
	for _, msg := range c.History {
		assert.False(t, msg.FromPlayer)
	}
	assert.Empty(t, e.Options(story.ContactGhost))
}

func TestPlayNodeUnknownNode(t *testing.T) {
	e, _ := newTestEngine(t)

	require.NotPanics(t, func() {
		e.PlayNode(context.Background(), story.ContactRicardo, "missing")
	})
	assert.False(t, e.IsTyping(story.ContactRicardo))
}
