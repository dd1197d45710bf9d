package game

import (
	"time"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

// InstallPacing controls the staged spyware install. The download half runs
// Steps increments, then the filename flash, then Steps more for the
// install half.
type InstallPacing struct {
	Connect      time.Duration
	DownloadStep time.Duration
	Flash        time.Duration
	InstallStep  time.Duration
	Settle       time.Duration
	Steps        int
}

// DefaultInstallPacing matches the on-device feel, about 3.5 seconds total.
func DefaultInstallPacing() InstallPacing {
	return InstallPacing{
		Connect:      1500 * time.Millisecond,
		DownloadStep: 100 * time.Millisecond,
		Flash:        time.Second,
		InstallStep:  50 * time.Millisecond,
		Settle:       500 * time.Millisecond,
		Steps:        10,
	}
}

// Scaled returns a copy with every duration multiplied by f.
func (p InstallPacing) Scaled(f float64) InstallPacing {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * f)
	}
	p.Connect = scale(p.Connect)
	p.DownloadStep = scale(p.DownloadStep)
	p.Flash = scale(p.Flash)
	p.InstallStep = scale(p.InstallStep)
	p.Settle = scale(p.Settle)
	return p
}

// InstallSiteCam starts the staged spyware install. The offer only exists
// once the tracker recording has played to its end; before that the app has
// nothing to install. Progress is published as install events; on completion
// the flag is set and the ghost email is armed. Returns false when the
// prerequisite is missing or an install is already running or done.
func (g *Game) InstallSiteCam() bool {
	if !g.gs.Flag(story.FlagTrackerFinished) {
		return false
	}
	g.mu.Lock()
	if g.installing || g.gs.Flag(story.FlagSiteCamInstalled) {
		g.mu.Unlock()
		return false
	}
	g.installing = true
	g.mu.Unlock()

	g.wg.Add(1)
	go g.runInstall()
	return true
}

// SiteCamInstalled reports whether the spyware install completed.
func (g *Game) SiteCamInstalled() bool {
	return g.gs.Flag(story.FlagSiteCamInstalled)
}

func (g *Game) runInstall() {
	defer g.wg.Done()
	defer func() {
		g.mu.Lock()
		g.installing = false
		g.mu.Unlock()
	}()

	p := g.install
	half := float64(2 * p.Steps)
	stage := func(label string, frac float64) {
		g.bus.Publish(events.Event{Type: events.TypeInstallProgress, Text: label, Progress: frac})
	}

	stage(story.InstallStageConnect, 0)
	if !waitFor(g.ctx, p.Connect) {
		return
	}
	for i := 1; i <= p.Steps; i++ {
		if !waitFor(g.ctx, p.DownloadStep) {
			return
		}
		stage(story.InstallStageDownload, float64(i)/half)
	}

	// The mask slips for one second.
	stage(story.InstallStageFlash, 0.5)
	g.bus.Cue(events.CueVibrate)
	if !waitFor(g.ctx, p.Flash) {
		return
	}

	for i := 1; i <= p.Steps; i++ {
		if !waitFor(g.ctx, p.InstallStep) {
			return
		}
		stage(story.InstallStageInstall, 0.5+float64(i)/half)
	}
	if !waitFor(g.ctx, p.Settle) {
		return
	}

	g.gs.SetFlag(story.FlagSiteCamInstalled)
	g.sched.Schedule(triggerGhostEmail)
}
