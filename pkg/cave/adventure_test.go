package cave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

// testPacing compresses every delay so full scenes play out in milliseconds.
func testPacing() Pacing {
	return DefaultPacing().Scaled(0.01)
}

func waitForScene(t *testing.T, a *Adventure, id string) {
	t.Helper()
	require.Eventually(t, func() bool {
		return a.Scene() == id
	}, 5*time.Second, 2*time.Millisecond, "never reached scene %s", id)
}

func waitForChoices(t *testing.T, a *Adventure) []story.CaveChoice {
	t.Helper()
	var choices []story.CaveChoice
	require.Eventually(t, func() bool {
		choices = a.Choices()
		return len(choices) > 0
	}, 5*time.Second, 2*time.Millisecond)
	return choices
}

// tapThrough keeps advancing until choices appear or the scene changes.
func tapThrough(t *testing.T, a *Adventure, scene string) {
	t.Helper()
	require.Eventually(t, func() bool {
		if a.Scene() != scene || len(a.Choices()) > 0 || a.Resolved() {
			return true
		}
		a.Advance()
		return false
	}, 10*time.Second, 2*time.Millisecond)
}

func TestBootAutoAdvancesToIntro(t *testing.T) {
	a := New(nil, testPacing(), nil)
	defer a.Stop()

	a.Start()
	assert.Equal(t, story.SceneBoot, a.Scene())

	// Boot reveals its lines with no input and then transitions exactly once.
	waitForScene(t, a, story.SceneIntro)

	// A second Start is a no-op.
	a.Start()
	assert.Equal(t, story.SceneIntro, a.Scene())
}

func TestChoicesHiddenWhileTyping(t *testing.T) {
	a := New(nil, testPacing(), nil)
	defer a.Stop()

	a.Start()
	waitForScene(t, a, story.SceneIntro)
	assert.Nil(t, a.Choices(), "choices must not show before the text finishes")

	tapThrough(t, a, story.SceneIntro)
	choices := waitForChoices(t, a)
	require.Len(t, choices, 2)
	assert.Equal(t, story.SceneFork, choices[0].Target)
}

func TestChooseIgnoredForForeignTarget(t *testing.T) {
	a := New(nil, testPacing(), nil)
	defer a.Stop()

	a.Start()
	waitForScene(t, a, story.SceneIntro)
	tapThrough(t, a, story.SceneIntro)
	waitForChoices(t, a)

	a.Choose(story.SceneEscape) // not offered here
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, story.SceneIntro, a.Scene())

	a.Choose(story.SceneFork)
	waitForScene(t, a, story.SceneFork)
}

func TestOutcomeSceneAutoTransitions(t *testing.T) {
	a := New(nil, testPacing(), nil)
	defer a.Stop()

	a.Start()
	waitForScene(t, a, story.SceneIntro)
	tapThrough(t, a, story.SceneIntro)
	waitForChoices(t, a)
	a.Choose(story.SceneFork)

	waitForScene(t, a, story.SceneFork)
	tapThrough(t, a, story.SceneFork)
	waitForChoices(t, a)
	a.Choose(story.SceneRouteB)

	waitForScene(t, a, story.SceneRouteB)
	tapThrough(t, a, story.SceneRouteB)
	waitForChoices(t, a)
	a.Choose(story.SceneChase)

	waitForScene(t, a, story.SceneChase)
	tapThrough(t, a, story.SceneChase)
	waitForChoices(t, a)
	a.Choose(story.SceneHide)

	// hide has no choices: it lingers and then moves to the core on its own.
	waitForScene(t, a, story.SceneHide)
	tapThrough(t, a, story.SceneHide)
	waitForScene(t, a, story.SceneCore)
}

func TestEndingFadesAndResolves(t *testing.T) {
	bus := events.NewBus(nil)
	sub, cancel := bus.Subscribe()
	defer cancel()

	// Drain as we go so the typewriter's char events never crowd out the
	// fade ticks at the end.
	fadeCh := make(chan float64, 64)
	resolvedCh := make(chan events.Event, 1)
	go func() {
		for ev := range sub {
			switch ev.Type {
			case events.TypeCaveFadeTick:
				fadeCh <- ev.Progress
			case events.TypeCaveResolved:
				resolvedCh <- ev
				return
			}
		}
	}()

	a := New(bus, testPacing(), nil)
	defer a.Stop()

	a.Start()
	waitForScene(t, a, story.SceneIntro)
	tapThrough(t, a, story.SceneIntro)
	a.Choose(story.SceneFork)
	waitForScene(t, a, story.SceneFork)
	tapThrough(t, a, story.SceneFork)
	a.Choose(story.SceneRouteA)
	waitForScene(t, a, story.SceneRouteA)
	tapThrough(t, a, story.SceneRouteA)
	a.Choose(story.SceneChase)
	waitForScene(t, a, story.SceneChase)
	tapThrough(t, a, story.SceneChase)
	a.Choose(story.SceneRun)
	waitForScene(t, a, story.SceneRun)
	tapThrough(t, a, story.SceneRun)
	waitForScene(t, a, story.SceneCore)
	tapThrough(t, a, story.SceneCore)
	a.Choose(story.SceneClimax)
	waitForScene(t, a, story.SceneClimax)
	tapThrough(t, a, story.SceneClimax)
	a.Choose(story.SceneUpload)
	waitForScene(t, a, story.SceneUpload)
	tapThrough(t, a, story.SceneUpload)

	require.Eventually(t, a.Resolved, 5*time.Second, 2*time.Millisecond)

	// Fade ticks came before the resolution, with monotonically growing
	// progress, and the resolution carries the authored message.
	var resolved events.Event
	select {
	case resolved = <-resolvedCh:
	case <-time.After(time.Second):
		t.Fatal("no resolution event")
	}
	var fades []float64
	for len(fadeCh) > 0 {
		fades = append(fades, <-fadeCh)
	}
	assert.Equal(t, story.SeverityGreen, resolved.Severity)
	assert.Contains(t, resolved.Text, "BEM-VINDA À REDE")
	require.NotEmpty(t, fades)
	for i := 1; i < len(fades); i++ {
		assert.Greater(t, fades[i], fades[i-1])
	}
	assert.InDelta(t, 1.0, fades[len(fades)-1], 1e-9)

	// Input after the resolution does nothing.
	a.Advance()
	a.Choose(story.SceneBoot)
	assert.Equal(t, story.SceneUpload, a.Scene())
}

func TestStopDropsPlayback(t *testing.T) {
	a := New(nil, DefaultPacing(), nil) // real pacing: boot takes seconds
	a.Start()
	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	assert.Equal(t, story.SceneBoot, a.Scene())
}
