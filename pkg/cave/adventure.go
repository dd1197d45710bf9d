// Package cave runs the terminal-style text adventure that replaces the
// phone UI after the reboot. Scenes come from the story package; this
// package owns pacing, input gating and the ending fade.
package cave

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

// Pacing controls the typewriter and the ending fade. Tests inject a scaled
// copy so the full adventure plays out in milliseconds.
type Pacing struct {
	CharBase   time.Duration // per-character delay, calm scenes
	CharTense  time.Duration // per-character delay, chase scenes
	JitterMin  time.Duration
	JitterMax  time.Duration
	PunctPause time.Duration // extra hold after . ! ? :
	Interline  time.Duration // gap between auto-revealed lines
	EndingHold time.Duration // ending lines stay on screen before the fade
	EndingFade time.Duration
	FadeSteps  int
}

// DefaultPacing matches the on-device feel.
func DefaultPacing() Pacing {
	return Pacing{
		CharBase:   30 * time.Millisecond,
		CharTense:  10 * time.Millisecond,
		JitterMin:  10 * time.Millisecond,
		JitterMax:  50 * time.Millisecond,
		PunctPause: 200 * time.Millisecond,
		Interline:  200 * time.Millisecond,
		EndingHold: 5 * time.Second,
		EndingFade: 3 * time.Second,
		FadeSteps:  30,
	}
}

// Scaled returns a copy with every duration multiplied by f.
func (p Pacing) Scaled(f float64) Pacing {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * f)
	}
	p.CharBase = scale(p.CharBase)
	p.CharTense = scale(p.CharTense)
	p.JitterMin = scale(p.JitterMin)
	p.JitterMax = scale(p.JitterMax)
	p.PunctPause = scale(p.PunctPause)
	p.Interline = scale(p.Interline)
	p.EndingHold = scale(p.EndingHold)
	p.EndingFade = scale(p.EndingFade)
	return p
}

type phase int

const (
	phaseTyping phase = iota
	phaseLineDone
	phaseChoices
	phaseAuto
	phaseEnding
	phaseResolved
)

// Adventure is the cave FSM. One goroutine per scene drives the typewriter;
// player input arrives through Advance and Choose and is ignored whenever
// the scene is not waiting for it.
type Adventure struct {
	bus    *events.Bus
	scenes map[string]story.CaveScene
	pacing Pacing
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	scene   story.CaveScene
	phase   phase
	lineIdx int
	advance chan struct{}
	choose  chan string
}

// New creates an adventure positioned at the boot scene. Start begins
// playback.
func New(bus *events.Bus, pacing Pacing, logger *slog.Logger) *Adventure {
	if bus == nil {
		bus = events.NewBus(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Adventure{
		bus:     bus,
		scenes:  story.CaveScenes(),
		pacing:  pacing,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		advance: make(chan struct{}, 1),
		choose:  make(chan string, 1),
	}
}

// Start enters the boot scene. Calling it twice is a no-op.
func (a *Adventure) Start() {
	a.mu.Lock()
	if a.scene.ID != "" {
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	a.enter(story.SceneBoot)
}

// Stop cancels playback. Pending timers are dropped without firing.
func (a *Adventure) Stop() {
	a.cancel()
	a.wg.Wait()
}

// Scene returns the current scene ID.
func (a *Adventure) Scene() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scene.ID
}

// Resolved reports whether an ending has fully played out.
func (a *Adventure) Resolved() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase == phaseResolved
}

// Choices returns the options currently offered, or nil while text is still
// revealing or the scene transitions automatically.
func (a *Adventure) Choices() []story.CaveChoice {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != phaseChoices {
		return nil
	}
	out := make([]story.CaveChoice, len(a.scene.Choices))
	copy(out, a.scene.Choices)
	return out
}

// Advance is the player's tap. It reveals the next line when the current one
// has finished; taps mid-reveal or while choices are pending do nothing.
func (a *Adventure) Advance() {
	a.mu.Lock()
	ok := a.phase == phaseLineDone
	a.mu.Unlock()
	if !ok {
		return
	}
	select {
	case a.advance <- struct{}{}:
	default:
	}
}

// Choose picks a choice by target scene ID. Ignored unless choices are
// showing and the target belongs to the current scene.
func (a *Adventure) Choose(target string) {
	a.mu.Lock()
	valid := false
	if a.phase == phaseChoices {
		for _, c := range a.scene.Choices {
			if c.Target == target {
				valid = true
				break
			}
		}
	}
	a.mu.Unlock()
	if !valid {
		return
	}
	select {
	case a.choose <- target:
	default:
	}
}

func (a *Adventure) enter(id string) {
	scene, ok := a.scenes[id]
	if !ok {
		a.logger.Error("unknown cave scene", "scene", id)
		return
	}
	a.mu.Lock()
	a.scene = scene
	a.phase = phaseTyping
	a.lineIdx = 0
	a.mu.Unlock()

	a.bus.Publish(events.Event{Type: events.TypeCaveSceneChanged, Scene: id})

	a.wg.Add(1)
	go a.play(scene)
}

func (a *Adventure) play(scene story.CaveScene) {
	defer a.wg.Done()

	for i, line := range scene.Lines {
		a.mu.Lock()
		a.lineIdx = i
		a.phase = phaseTyping
		a.mu.Unlock()

		if !a.typeLine(scene, line) {
			return
		}
		a.bus.Publish(events.Event{Type: events.TypeCaveLineDone, Scene: scene.ID, Text: line})

		last := i == len(scene.Lines)-1
		if last {
			break
		}
		if scene.AutoLines {
			if !a.sleep(a.pacing.Interline) {
				return
			}
			continue
		}
		a.mu.Lock()
		a.phase = phaseLineDone
		a.mu.Unlock()
		select {
		case <-a.ctx.Done():
			return
		case <-a.advance:
		}
	}

	switch {
	case scene.Terminal():
		a.mu.Lock()
		a.phase = phaseEnding
		a.mu.Unlock()
		a.playEnding(scene)
	case scene.AutoNext != "":
		a.mu.Lock()
		a.phase = phaseAuto
		a.mu.Unlock()
		if !a.sleep(scene.AutoDelay) {
			return
		}
		a.enter(scene.AutoNext)
	default:
		a.mu.Lock()
		a.phase = phaseChoices
		a.mu.Unlock()
		a.bus.Publish(events.Event{Type: events.TypeCaveChoicesShown, Scene: scene.ID})
		select {
		case <-a.ctx.Done():
			return
		case target := <-a.choose:
			a.enter(target)
		}
	}
}

// typeLine reveals one line character by character, publishing each rune and
// its cue. Returns false when the adventure is stopping.
func (a *Adventure) typeLine(scene story.CaveScene, line string) bool {
	base := a.pacing.CharBase
	cue := events.CueCaveTyping
	if scene.Tense {
		base = a.pacing.CharTense
		cue = events.CueCaveTypingHard
	}
	for _, r := range line {
		d := base + a.jitter()
		if !a.sleep(d) {
			return false
		}
		a.bus.Publish(events.Event{Type: events.TypeCaveCharTyped, Scene: scene.ID, Text: string(r)})
		a.bus.Cue(cue)
		if strings.ContainsRune(".!?:", r) {
			if !a.sleep(a.pacing.PunctPause) {
				return false
			}
		}
	}
	return true
}

func (a *Adventure) playEnding(scene story.CaveScene) {
	if !a.sleep(a.pacing.EndingHold) {
		return
	}
	steps := a.pacing.FadeSteps
	if steps < 1 {
		steps = 1
	}
	tick := a.pacing.EndingFade / time.Duration(steps)
	for i := 1; i <= steps; i++ {
		if !a.sleep(tick) {
			return
		}
		a.bus.Publish(events.Event{
			Type:     events.TypeCaveFadeTick,
			Scene:    scene.ID,
			Progress: float64(i) / float64(steps),
		})
	}

	a.mu.Lock()
	a.phase = phaseResolved
	a.mu.Unlock()
	a.bus.Cue(events.CueFlatline)
	a.bus.Publish(events.Event{
		Type:     events.TypeCaveResolved,
		Scene:    scene.ID,
		Text:     scene.Ending.Message,
		Severity: scene.Ending.Severity,
	})
}

func (a *Adventure) jitter() time.Duration {
	span := a.pacing.JitterMax - a.pacing.JitterMin
	if span <= 0 {
		return a.pacing.JitterMin
	}
	return a.pacing.JitterMin + time.Duration(rand.Int63n(int64(span)))
}

func (a *Adventure) sleep(d time.Duration) bool {
	if d <= 0 {
		select {
		case <-a.ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-a.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
