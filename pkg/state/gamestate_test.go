package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

func TestNewSeedsContacts(t *testing.T) {
	gs := New(nil, story.SeedContacts())

	contacts := gs.Contacts()
	require.Len(t, contacts, 5)

	ricardo, ok := gs.Contact(story.ContactRicardo)
	require.True(t, ok)
	assert.NotEmpty(t, ricardo.History)

	_, ok = gs.Contact(story.ContactGhost)
	assert.False(t, ok, "ghost contact must not exist at startup")
}

func TestSetFlagTransitionsOnce(t *testing.T) {
	gs := New(nil, nil)

	assert.True(t, gs.SetFlag(story.FlagBankHacked))
	assert.False(t, gs.SetFlag(story.FlagBankHacked))
	assert.True(t, gs.Flag(story.FlagBankHacked))
	assert.False(t, gs.Flag(story.FlagSecretPhoto))
}

func TestSetFlagPublishesOnlyOnTransition(t *testing.T) {
	bus := events.NewBus(nil)
	gs := New(bus, nil)
	sub, cancel := bus.Subscribe()
	defer cancel()

	gs.SetFlag(story.FlagSiteCamInstalled)
	gs.SetFlag(story.FlagSiteCamInstalled)

	ev := <-sub
	assert.Equal(t, events.TypeFlagSet, ev.Type)
	assert.Equal(t, story.FlagSiteCamInstalled, ev.Flag)

	select {
	case extra := <-sub:
		t.Fatalf("unexpected second event: %+v", extra)
	default:
	}
}

func TestAppendMessageAndUnread(t *testing.T) {
	gs := New(nil, story.SeedContacts())

	gs.AppendMessage(story.ContactRicardo, story.NewMessage("Liga-me.", false, "Hoje 21:00"))

	c, ok := gs.Contact(story.ContactRicardo)
	require.True(t, ok)
	last, ok := c.LastMessage()
	require.True(t, ok)
	assert.Equal(t, "Liga-me.", last.Content)
	assert.False(t, last.FromPlayer)
	assert.True(t, gs.HasUnread())

	gs.MarkAllRead(story.ContactRicardo)
	c, _ = gs.Contact(story.ContactRicardo)
	assert.Zero(t, c.Unread())
}

func TestAppendMessageUnknownContact(t *testing.T) {
	gs := New(nil, nil)
	require.NotPanics(t, func() {
		gs.AppendMessage("nobody", story.NewMessage("eco", false, "Hoje 21:00"))
	})
}

func TestAddContactPrependAndIdempotence(t *testing.T) {
	gs := New(nil, story.SeedContacts())

	require.True(t, gs.AddContact(story.GhostContact(), true))
	contacts := gs.Contacts()
	assert.Equal(t, story.ContactGhost, contacts[0].ID, "prepended contact must be first")

	assert.False(t, gs.AddContact(story.GhostContact(), true))
	assert.Len(t, gs.Contacts(), len(contacts))
}

func TestContactViewIsSnapshot(t *testing.T) {
	gs := New(nil, story.SeedContacts())

	before, _ := gs.Contact(story.ContactMae)
	n := len(before.History)
	gs.AppendMessage(story.ContactMae, story.NewMessage("Filha?", false, "Hoje 22:00"))

	assert.Len(t, before.History, n, "snapshot must not grow with later appends")
	after, _ := gs.Contact(story.ContactMae)
	assert.Len(t, after.History, n+1)
}

func TestRecordEvidenceIdempotentOrdered(t *testing.T) {
	gs := New(nil, nil)

	gs.RecordEvidence(story.EvidenceShadow)
	gs.RecordEvidence(story.EvidenceHand)
	gs.RecordEvidence(story.EvidenceShadow)

	assert.Equal(t, []string{story.EvidenceShadow, story.EvidenceHand}, gs.Evidence())
}

func TestInsertEmailOnce(t *testing.T) {
	gs := New(nil, nil)

	require.True(t, gs.InsertEmailOnce(story.GhostEmail()))
	assert.False(t, gs.InsertEmailOnce(story.GhostEmail()), "inbox only ever receives one email")
	assert.True(t, gs.HasUnreadEmails())

	emails := gs.Emails()
	require.Len(t, emails, 1)
	gs.MarkEmailRead(emails[0].ID)
	assert.False(t, gs.HasUnreadEmails())
}

func TestSetNodeAndClear(t *testing.T) {
	gs := New(nil, story.SeedContacts())

	id := story.NodeRicardoBankHack
	gs.SetNode(story.ContactRicardo, &id)
	c, _ := gs.Contact(story.ContactRicardo)
	require.NotNil(t, c.CurrentNodeID)
	assert.Equal(t, id, *c.CurrentNodeID)

	gs.SetNode(story.ContactRicardo, nil)
	c, _ = gs.Contact(story.ContactRicardo)
	assert.Nil(t, c.CurrentNodeID)
}
