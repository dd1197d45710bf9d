package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GabrielH4nma/Pilar-IV/pkg/events"
	"github.com/GabrielH4nma/Pilar-IV/pkg/game"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

type screen int

const (
	screenHome screen = iota
	screenChat
	screenConversation
	screenBank
	screenGallery
	screenNotes
	screenEmail
	screenSiteCam
	screenTracker
	screenCave
)

// phoneUI is the BubbleTea model that runs the simulated phone.
// https://github.com/charmbracelet/bubbletea
type phoneUI struct {
	g      *game.Game
	events <-chan events.Event
	unsub  func()

	width  int
	height int
	ready  bool
	screen screen

	// Home grid
	homeIndex int

	// Chat
	chatIndex     int
	activeContact string
	convViewport  viewport.Model
	typing        map[string]bool

	// Bank
	bankUnlocked bool
	pinInput     string
	pinError     string

	// Gallery
	galleryUnlocked bool
	galleryPinMode  bool
	galleryIndex    int
	inSecretAlbum   bool
	inEvidenceAlbum bool

	// Notes
	noteIndex int

	// Email
	emailIndex   int
	readingEmail bool

	// SiteCam
	installing     bool
	installStage   string
	installFlash   bool
	installFrac    float64
	selectedCam    int
	anomalyVisible int // 0 none, 1 shadow, 2 hand
	camFeedback    string
	camTicking     bool

	// Tracker
	trackerPlaying bool
	trackerStep    int

	// Cave terminal
	caveViewport viewport.Model
	caveLines    []string
	caveCurrent  string
	caveChoices  []story.CaveChoice
	caveTense    bool
	caveFade     float64
	caveMessage  string
	caveSeverity string
	copied       bool

	// Notification banner
	notifText string
	notifSeq  int

	showQuitModal bool
}

type busEventMsg struct {
	ev events.Event
}

type notifDismissMsg struct {
	seq int
}

type camTickMsg struct{}

type trackerTickMsg struct{}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	appStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Padding(0, 2)

	appSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("205")).
				Bold(true).
				Padding(0, 2)

	npcStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46"))

	terminalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Background(lipgloss.Color("0"))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255"))

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Align(lipgloss.Center)
)

var upperPT = cases.Upper(language.EuropeanPortuguese)
var titlePT = cases.Title(language.EuropeanPortuguese)

func newPhoneUI(g *game.Game) phoneUI {
	ch, unsub := g.Bus().Subscribe()

	convVp := viewport.New(50, 20)
	caveVp := viewport.New(50, 20)

	return phoneUI{
		g:            g,
		events:       ch,
		unsub:        unsub,
		convViewport: convVp,
		caveViewport: caveVp,
		typing:       make(map[string]bool),
		selectedCam:  1,
	}
}

func (m phoneUI) Init() tea.Cmd {
	return m.waitEvent()
}

// waitEvent blocks on the engine bus and reposts each event as a tea.Msg.
func (m phoneUI) waitEvent() tea.Cmd {
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return busEventMsg{ev}
	}
}

func (m phoneUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.showQuitModal {
		return m.updateQuitModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.convViewport.Width = m.width - 4
		m.convViewport.Height = m.height - 8
		m.caveViewport.Width = m.width - 4
		m.caveViewport.Height = m.height - 8
		m.ready = true
		return m, nil

	case busEventMsg:
		return m.handleEvent(msg.ev)

	case notifDismissMsg:
		if msg.seq == m.notifSeq {
			m.notifText = ""
		}
		return m, nil

	case camTickMsg:
		return m.handleCamTick()

	case trackerTickMsg:
		return m.handleTrackerTick()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.showQuitModal = true
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleEvent reacts to engine events: most screens re-read state on the
// next render, so usually only the derived UI fields need refreshing.
func (m phoneUI) handleEvent(ev events.Event) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitEvent()}

	switch ev.Type {
	case events.TypeNotification:
		m.notifText = ev.Text
		m.notifSeq++
		seq := m.notifSeq
		cmds = append(cmds, tea.Tick(4*time.Second, func(time.Time) tea.Msg {
			return notifDismissMsg{seq}
		}))

	case events.TypeTypingChanged:
		m.typing[ev.ContactID] = ev.Text == "true"
		if m.screen == screenConversation && ev.ContactID == m.activeContact {
			m.refreshConversation()
		}

	case events.TypeMessageAppended, events.TypeOptionsChanged:
		if m.screen == screenConversation && ev.ContactID == m.activeContact {
			m.g.EnterConversation(m.activeContact)
			m.refreshConversation()
		}

	case events.TypeScareTriggered:
		// The phone takes over: whatever the player was doing, the tracker
		// recording starts playing.
		m.screen = screenTracker
		if !m.trackerPlaying {
			m.trackerPlaying = true
			m.trackerStep = 0
			cmds = append(cmds, trackerTick())
		}

	case events.TypeInstallProgress:
		m.installing = true
		m.installStage = ev.Text
		m.installFrac = ev.Progress
		m.installFlash = ev.Text == story.InstallStageFlash
		if m.g.SiteCamInstalled() {
			m.installing = false
			if m.screen == screenSiteCam && !m.camTicking {
				m.camTicking = true
				cmds = append(cmds, camTick())
			}
		}

	case events.TypeCaveSceneChanged:
		m.caveLines = nil
		m.caveCurrent = ""
		m.caveChoices = nil
		m.caveTense = ev.Scene == story.SceneChase
		m.refreshCave()

	case events.TypeCaveCharTyped:
		m.caveCurrent += ev.Text
		m.refreshCave()

	case events.TypeCaveLineDone:
		m.caveLines = append(m.caveLines, ev.Text)
		m.caveCurrent = ""
		m.refreshCave()

	case events.TypeCaveChoicesShown:
		if adv := m.g.Cave(); adv != nil {
			m.caveChoices = adv.Choices()
		}
		m.refreshCave()

	case events.TypeCaveFadeTick:
		m.caveFade = ev.Progress
		m.refreshCave()

	case events.TypeCaveResolved:
		m.caveFade = 1
		m.caveMessage = ev.Text
		m.caveSeverity = ev.Severity
		m.refreshCave()
	}

	return m, tea.Batch(cmds...)
}

func (m phoneUI) updateQuitModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEnter:
			m.unsub()
			return m, tea.Quit
		default:
			switch msg.String() {
			case "y", "Y":
				m.unsub()
				return m, tea.Quit
			case "n", "N":
				m.showQuitModal = false
			}
		}
	}
	return m, nil
}

func (m phoneUI) renderQuitModal() string {
	var content strings.Builder
	content.WriteString(modalTitleStyle.Render("Sair?"))
	content.WriteString("\n\n")
	content.WriteString("O progresso da história não é guardado.")
	content.WriteString("\n\n")
	content.WriteString(mutedStyle.Render("Y para sair, N para continuar"))

	modal := modalStyle.Width(44).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "))
}

func (m phoneUI) View() string {
	if !m.ready {
		return "\n  A iniciar..."
	}
	if m.showQuitModal {
		return m.renderQuitModal()
	}

	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenChat:
		body = m.viewChatList()
	case screenConversation:
		body = m.viewConversation()
	case screenBank:
		body = m.viewBank()
	case screenGallery:
		body = m.viewGallery()
	case screenNotes:
		body = m.viewNotes()
	case screenEmail:
		body = m.viewEmail()
	case screenSiteCam:
		body = m.viewSiteCam()
	case screenTracker:
		body = m.viewTracker()
	case screenCave:
		body = m.viewCave()
	}

	if m.notifText != "" && m.screen != screenCave {
		banner := bannerStyle.Render(m.notifText)
		return lipgloss.JoinVertical(lipgloss.Left, banner, body)
	}
	return body
}

// displayName falls back to a cleaned-up contact ID when a contact arrives
// without a name.
func displayName(id, name string) string {
	if name != "" {
		return name
	}
	return titlePT.String(strings.ReplaceAll(id, "_", " "))
}
