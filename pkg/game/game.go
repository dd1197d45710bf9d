// Package game assembles the engines into one playable session: shared
// state, dialogue playback, scripted triggers, the spyware installer and the
// cave terminal. The presentation layer talks only to this package.
package game

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/GabrielH4nma/Pilar-IV/pkg/cave"
	"github.com/GabrielH4nma/Pilar-IV/pkg/dialogue"
	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/state"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
	"github.com/GabrielH4nma/Pilar-IV/pkg/trigger"
)

// RebootStore persists the one fact that outlives a session: the phone has
// rebooted into the cave terminal.
type RebootStore interface {
	SaveRebooted(ctx context.Context) error
	Rebooted(ctx context.Context) (bool, error)
}

// Config bundles a session's pacing and collaborators. Zero-value fields
// fall back to shipped defaults; Store is optional.
type Config struct {
	Timeline       story.Timeline
	DialoguePacing dialogue.Pacing
	CavePacing     cave.Pacing
	InstallPacing  InstallPacing
	Store          RebootStore
	Logger         *slog.Logger

	// Rebooted restores the cross-session flag loaded by the caller before
	// the session starts.
	Rebooted bool
}

// Game is one playthrough. Safe for concurrent use.
type Game struct {
	bus        *events.Bus
	gs         *state.GameState
	engine     *dialogue.Engine
	sched      *trigger.Scheduler
	timeline   story.Timeline
	install    InstallPacing
	cavePacing cave.Pacing
	store      RebootStore
	logger     *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu          sync.Mutex
	adventure   *cave.Adventure
	ghostOpened bool
	installing  bool
}

// New builds a session from seed content.
func New(cfg Config) *Game {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeline.EndgameBeats == nil {
		cfg.Timeline = story.DefaultTimeline()
	}
	if cfg.DialoguePacing.Think == 0 {
		cfg.DialoguePacing = dialogue.DefaultPacing()
	}
	if cfg.CavePacing.CharBase == 0 {
		cfg.CavePacing = cave.DefaultPacing()
	}
	if cfg.InstallPacing.Steps == 0 {
		cfg.InstallPacing = DefaultInstallPacing()
	}

	ctx, cancel := context.WithCancel(context.Background())
	bus := events.NewBus(cfg.Logger)
	gs := state.New(bus, story.SeedContacts())

	g := &Game{
		bus:        bus,
		gs:         gs,
		engine:     dialogue.NewEngine(gs, story.DialogueTrees(), cfg.DialoguePacing, cfg.Logger),
		sched:      trigger.NewScheduler(gs, cfg.Logger),
		timeline:   cfg.Timeline,
		install:    cfg.InstallPacing,
		cavePacing: cfg.CavePacing,
		store:      cfg.Store,
		logger:     cfg.Logger,
		ctx:        ctx,
		cancel:     cancel,
	}
	g.registerTriggers()

	if cfg.Rebooted {
		gs.SetFlag(story.FlagSystemRebooted)
	}

	sub, unsub := bus.Subscribe()
	g.wg.Add(1)
	go g.watch(sub, unsub)

	return g
}

// Close tears the session down: pending triggers, playback and the cave
// adventure all stop without firing further effects.
func (g *Game) Close() {
	g.cancel()
	g.sched.Stop()
	g.mu.Lock()
	adv := g.adventure
	g.mu.Unlock()
	if adv != nil {
		adv.Stop()
	}
	g.wg.Wait()
}

// Bus exposes the session event stream for the presentation layer.
func (g *Game) Bus() *events.Bus { return g.bus }

// State exposes read access to the game state.
func (g *Game) State() *state.GameState { return g.gs }

// SubmitBankPIN checks the banking PIN. A correct PIN unlocks the account
// and arms the delayed chat reactions; wrong PINs have no side effects.
func (g *Game) SubmitBankPIN(pin string) bool {
	if pin != story.BankPIN {
		return false
	}
	g.gs.SetFlag(story.FlagBankHacked)
	g.sched.Schedule(triggerBankReaction)
	g.sched.Schedule(triggerUnknownHint)
	return true
}

// SubmitGalleryPIN checks the hidden-album PIN.
func (g *Game) SubmitGalleryPIN(pin string) bool {
	return pin == story.GalleryPIN
}

// RevealSecretPhoto records that the player has seen the photo behind the
// gallery PIN and arms the threat reaction.
func (g *Game) RevealSecretPhoto() {
	g.gs.SetFlag(story.FlagSecretPhoto)
	g.sched.Schedule(triggerPhotoThreat)
}

// CaptureAnomaly records the anomaly seen in the site-cam feed. Slot 1 is
// the shadow, slot 2 the hand. The feeds only come online once the ghost
// email has been read; before that nothing can be captured. Capturing both
// anomalies arms the final sequence. Returns whether the capture was new.
func (g *Game) CaptureAnomaly(slot int) bool {
	if !g.gs.Flag(story.FlagGhostEmailRead) {
		return false
	}
	var ref string
	switch slot {
	case 1:
		ref = story.EvidenceShadow
	case 2:
		ref = story.EvidenceHand
	default:
		return false
	}
	had := slices.Contains(g.gs.Evidence(), ref)
	g.gs.RecordEvidence(ref)
	if g.EvidenceComplete() {
		g.sched.Schedule(triggerEndgame)
	}
	return !had
}

// EvidenceComplete reports whether both anomalies are on record.
func (g *Game) EvidenceComplete() bool {
	ev := g.gs.Evidence()
	return slices.Contains(ev, story.EvidenceShadow) && slices.Contains(ev, story.EvidenceHand)
}

// EnterConversation opens a chat: history is marked read and reply options
// recomputed. The first visit to the ghost chat starts its scripted intro.
// Opening the stalker's chat after seeing the secret photo springs the
// haunted-eye scare, which unlocks the tracker recording and drags the
// player into its playback.
func (g *Game) EnterConversation(contactID string) {
	g.engine.EnterConversation(contactID)
	switch contactID {
	case story.ContactUnknown:
		if g.gs.Flag(story.FlagSecretPhoto) && g.gs.SetFlag(story.FlagTrackerUnlocked) {
			g.bus.Cue(events.CueJumpscare)
			g.bus.Publish(events.Event{Type: events.TypeScareTriggered})
		}
	case story.ContactGhost:
		g.mu.Lock()
		opened := g.ghostOpened
		g.ghostOpened = true
		g.mu.Unlock()
		if !opened {
			g.engine.PlayNode(g.ctx, story.ContactGhost, story.NodeGhostIntro)
		}
	}
}

// SelectOption sends the player's chosen reply.
func (g *Game) SelectOption(contactID string, opt story.ReplyOption) {
	g.engine.SelectOption(g.ctx, contactID, opt)
}

// Options returns the replies currently offered in a chat.
func (g *Game) Options(contactID string) []story.ReplyOption {
	return g.engine.Options(contactID)
}

// IsTyping reports whether the contact's NPC playback is running.
func (g *Game) IsTyping(contactID string) bool {
	return g.engine.IsTyping(contactID)
}

// ReadEmail marks an email read. Reading the ghost email brings the site-cam
// feeds online.
func (g *Game) ReadEmail(id string) {
	g.gs.MarkEmailRead(id)
	g.gs.SetFlag(story.FlagGhostEmailRead)
}

// FinishTracker records that the tracker playback ran to its end.
func (g *Game) FinishTracker() {
	g.gs.SetFlag(story.FlagTrackerFinished)
	g.bus.Cue(events.CueJumpscare)
}

// Rebooted reports whether the phone has rebooted into the cave terminal.
func (g *Game) Rebooted() bool {
	return g.gs.Flag(story.FlagSystemRebooted)
}

// StartCave creates and starts the cave adventure. Subsequent calls return
// the running instance.
func (g *Game) StartCave() *cave.Adventure {
	g.mu.Lock()
	if g.adventure == nil {
		g.adventure = cave.New(g.bus, g.cavePacing, g.logger)
	}
	adv := g.adventure
	g.mu.Unlock()
	adv.Start()
	return adv
}

// Cave returns the running adventure, or nil before StartCave.
func (g *Game) Cave() *cave.Adventure {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.adventure
}

// watch reacts to the cave resolution: the playthrough is finished and the
// reboot flag is persisted for the next launch.
func (g *Game) watch(sub <-chan events.Event, unsub func()) {
	defer g.wg.Done()
	defer unsub()
	for {
		select {
		case <-g.ctx.Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if ev.Type != events.TypeCaveResolved {
				continue
			}
			g.finish()
		}
	}
}

func (g *Game) finish() {
	g.gs.SetFlag(story.FlagGameFinished)
	if !g.gs.SetFlag(story.FlagSystemRebooted) {
		return
	}
	if g.store == nil {
		return
	}
	if err := g.store.SaveRebooted(g.ctx); err != nil {
		g.logger.Error("failed to persist reboot flag", "error", err)
	}
}
