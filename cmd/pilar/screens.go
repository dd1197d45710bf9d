package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

type homeApp struct {
	label  string
	target screen
}

func (m *phoneUI) homeApps() []homeApp {
	if m.g.Rebooted() {
		return []homeApp{{"SOMBRA_OS.EXE", screenCave}}
	}
	return []homeApp{
		{"Mensagens", screenChat},
		{"Banco", screenBank},
		{"Galeria", screenGallery},
		{"Notas", screenNotes},
		{"Email", screenEmail},
		{"SiteCam", screenSiteCam},
		{"MyTrack", screenTracker},
	}
}

func (m phoneUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenHome:
		return m.keyHome(msg)
	case screenChat:
		return m.keyChatList(msg)
	case screenConversation:
		return m.keyConversation(msg)
	case screenBank:
		return m.keyBank(msg)
	case screenGallery:
		return m.keyGallery(msg)
	case screenNotes:
		return m.keyNotes(msg)
	case screenEmail:
		return m.keyEmail(msg)
	case screenSiteCam:
		return m.keySiteCam(msg)
	case screenTracker:
		return m.keyTracker(msg)
	case screenCave:
		return m.keyCave(msg)
	}
	return m, nil
}

// --- Home ---

func (m phoneUI) keyHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	apps := m.homeApps()
	switch msg.String() {
	case "up", "k":
		if m.homeIndex > 0 {
			m.homeIndex--
		}
	case "down", "j":
		if m.homeIndex < len(apps)-1 {
			m.homeIndex++
		}
	case "enter":
		target := apps[m.homeIndex].target
		m.screen = target
		switch target {
		case screenBank:
			m.pinInput = ""
			m.pinError = ""
		case screenCave:
			m.g.StartCave()
			m.refreshCave()
		case screenSiteCam:
			if m.g.SiteCamInstalled() {
				return m.startCamTick()
			}
		}
	case "q", "esc":
		m.showQuitModal = true
	}
	return m, nil
}

func (m phoneUI) viewHome() string {
	var b strings.Builder
	if m.g.Rebooted() {
		b.WriteString(alertStyle.Render("SISTEMA CORROMPIDO") + "\n")
		b.WriteString(mutedStyle.Render("kernel de memória danificado · 1 aplicação disponível") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("PILAR IV") + "\n")
		b.WriteString(mutedStyle.Render("Telemóvel de Sofia Mendes · 23 Out") + "\n\n")
	}

	for i, app := range m.homeApps() {
		label := app.label
		if app.target == screenChat {
			if n := m.totalUnread(); n > 0 {
				label = fmt.Sprintf("%s (%d)", label, n)
			}
		}
		if app.target == screenEmail && m.g.State().HasUnreadEmails() {
			label += " (1)"
		}
		if i == m.homeIndex {
			b.WriteString(appSelectedStyle.Render("▶ "+label) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("↑/↓ navegar · Enter abrir · Ctrl+C sair"))
	return b.String()
}

func (m phoneUI) totalUnread() int {
	n := 0
	for _, c := range m.g.State().Contacts() {
		n += c.Unread()
	}
	return n
}

// --- Chat list ---

func (m phoneUI) keyChatList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	contacts := m.g.State().Contacts()
	switch msg.String() {
	case "up", "k":
		if m.chatIndex > 0 {
			m.chatIndex--
		}
	case "down", "j":
		if m.chatIndex < len(contacts)-1 {
			m.chatIndex++
		}
	case "enter":
		if len(contacts) == 0 {
			break
		}
		m.activeContact = contacts[m.chatIndex].ID
		m.g.EnterConversation(m.activeContact)
		m.screen = screenConversation
		m.refreshConversation()
	case "esc":
		m.screen = screenHome
	}
	return m, nil
}

func (m phoneUI) viewChatList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Mensagens") + "\n\n")

	contacts := m.g.State().Contacts()
	for i, c := range contacts {
		line := displayName(c.ID, c.Name)
		if last, ok := c.LastMessage(); ok {
			preview := last.Content
			if preview == "" && last.Attachment != "" {
				preview = "[foto]"
			}
			if len([]rune(preview)) > 40 {
				preview = string([]rune(preview)[:40]) + "…"
			}
			line += mutedStyle.Render("  " + preview)
		}
		if n := c.Unread(); n > 0 {
			line += warnStyle.Render(fmt.Sprintf("  ●%d", n))
		}
		if i == m.chatIndex {
			b.WriteString(appSelectedStyle.Render("▶ "+line) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Enter abrir · Esc voltar"))
	return b.String()
}

// --- Conversation ---

func (m phoneUI) keyConversation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenChat
		return m, nil
	case "1", "2", "3", "4":
		opts := m.g.Options(m.activeContact)
		idx := int(msg.String()[0] - '1')
		if idx < len(opts) {
			m.g.SelectOption(m.activeContact, opts[idx])
			m.refreshConversation()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.convViewport, cmd = m.convViewport.Update(msg)
	return m, cmd
}

func (m *phoneUI) refreshConversation() {
	c, ok := m.g.State().Contact(m.activeContact)
	if !ok {
		return
	}
	width := m.convViewport.Width - 2
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	name := displayName(c.ID, c.Name)
	for _, msg := range c.History {
		content := msg.Content
		if msg.Attachment != "" {
			if content == "" {
				content = "[foto: " + msg.Attachment + "]"
			} else {
				content += "  [foto: " + msg.Attachment + "]"
			}
		}
		if msg.FromPlayer {
			b.WriteString(playerStyle.Render("Tu: ") + wordwrap.String(content, width-4) + "\n")
		} else {
			b.WriteString(npcStyle.Render(name+": ") + wordwrap.String(content, width-4) + "\n")
		}
		b.WriteString(mutedStyle.Render("  "+msg.Timestamp) + "\n")
	}
	if m.typing[m.activeContact] {
		b.WriteString(npcStyle.Render(name) + mutedStyle.Render(" está a escrever...") + "\n")
	}
	m.convViewport.SetContent(b.String())
	m.convViewport.GotoBottom()
}

func (m phoneUI) viewConversation() string {
	c, ok := m.g.State().Contact(m.activeContact)
	if !ok {
		return "Contacto não encontrado."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(displayName(c.ID, c.Name)))
	b.WriteString(mutedStyle.Render("  ·  "+c.Status) + "\n\n")
	b.WriteString(m.convViewport.View() + "\n")

	opts := m.g.Options(m.activeContact)
	if len(opts) > 0 {
		b.WriteString("\n")
		for i, opt := range opts {
			b.WriteString(playerStyle.Render(fmt.Sprintf("%d. %s", i+1, opt.Text)) + "\n")
		}
		b.WriteString(mutedStyle.Render("1-4 responder · Esc voltar"))
	} else {
		b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
	}
	return b.String()
}

// --- Bank ---

func (m phoneUI) keyBank(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.bankUnlocked {
		if msg.String() == "esc" {
			m.screen = screenHome
		}
		return m, nil
	}
	return m.keyPinPad(msg, func(pin string) bool {
		if m.g.SubmitBankPIN(pin) {
			m.bankUnlocked = true
			return true
		}
		return false
	}, screenHome)
}

// keyPinPad handles a 4-digit PIN prompt shared by bank and gallery.
func (m phoneUI) keyPinPad(msg tea.KeyMsg, submit func(string) bool, back screen) (tea.Model, tea.Cmd) {
	s := msg.String()
	switch {
	case s >= "0" && s <= "9" && len(s) == 1:
		if len(m.pinInput) < 4 {
			m.pinInput += s
		}
	case s == "backspace":
		if len(m.pinInput) > 0 {
			m.pinInput = m.pinInput[:len(m.pinInput)-1]
		}
	case s == "enter":
		if submit(m.pinInput) {
			m.pinError = ""
		} else {
			m.pinError = "PIN INCORRETO"
		}
		m.pinInput = ""
	case s == "esc":
		m.pinInput = ""
		m.pinError = ""
		m.galleryPinMode = false
		m.screen = back
	}
	return m, nil
}

func renderPinPad(title, hint, input, errText string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(hint + "\n\n")
	dots := strings.Repeat("● ", len(input)) + strings.Repeat("○ ", 4-len(input))
	b.WriteString("  " + dots + "\n")
	if errText != "" {
		b.WriteString("\n" + alertStyle.Render(errText) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("0-9 dígitos · Enter confirmar · Esc voltar"))
	return b.String()
}

func (m phoneUI) viewBank() string {
	if !m.bankUnlocked {
		return renderPinPad("BANCO ATLÂNTICO", "Introduz o PIN de acesso.", m.pinInput, m.pinError)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("BANCO ATLÂNTICO") + "\n\n")
	b.WriteString("Saldo Disponível\n")
	b.WriteString(warnStyle.Render(story.BankBalance) + "\n\n")
	b.WriteString(mutedStyle.Render("MOVIMENTOS RECENTES") + "\n")
	for _, tr := range story.Transactions() {
		line := fmt.Sprintf("%-28s %12s  %s", tr.Title, tr.Amount, tr.Date)
		if tr.Suspicious {
			b.WriteString(alertStyle.Render(line) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
	return b.String()
}

// --- Gallery ---

func (m phoneUI) keyGallery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.galleryPinMode {
		return m.keyPinPad(msg, func(pin string) bool {
			if m.g.SubmitGalleryPIN(pin) {
				m.galleryUnlocked = true
				m.galleryPinMode = false
				m.inSecretAlbum = true
				m.g.RevealSecretPhoto()
				return true
			}
			return false
		}, screenGallery)
	}
	if m.inSecretAlbum || m.inEvidenceAlbum {
		if msg.String() == "esc" {
			m.inSecretAlbum = false
			m.inEvidenceAlbum = false
		}
		return m, nil
	}

	albums := m.galleryAlbums()
	switch msg.String() {
	case "up", "k":
		if m.galleryIndex > 0 {
			m.galleryIndex--
		}
	case "down", "j":
		if m.galleryIndex < len(albums)-1 {
			m.galleryIndex++
		}
	case "enter":
		switch albums[m.galleryIndex].Name {
		case "Oculto":
			if m.galleryUnlocked {
				m.inSecretAlbum = true
			} else {
				m.galleryPinMode = true
				m.pinInput = ""
				m.pinError = ""
			}
		case "Provas":
			m.inEvidenceAlbum = true
		}
	case "esc":
		m.screen = screenHome
	}
	return m, nil
}

func (m phoneUI) galleryAlbums() []story.Album {
	albums := story.Albums()
	if ev := m.g.State().Evidence(); len(ev) > 0 {
		albums = append(albums, story.Album{Name: "Provas", Count: len(ev)})
	}
	return albums
}

func (m phoneUI) viewGallery() string {
	if m.galleryPinMode {
		return renderPinPad("Pasta Oculta", "Esta pasta está protegida.", m.pinInput, m.pinError)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Galeria") + "\n\n")

	if m.inSecretAlbum {
		b.WriteString(upperPT.String("Pasta: Oculto") + "\n\n")
		b.WriteString(warnStyle.Render(story.SecretPhotoName) + "\n")
		b.WriteString(wordwrap.String(story.SecretPhotoCaption, 60) + "\n")
		b.WriteString("\n" + mutedStyle.Render("Esc fechar"))
		return b.String()
	}
	if m.inEvidenceAlbum {
		b.WriteString(upperPT.String("Pasta: Provas") + "\n\n")
		for _, ref := range m.g.State().Evidence() {
			b.WriteString(warnStyle.Render(ref+".jpg") + "\n")
		}
		b.WriteString("\n" + mutedStyle.Render("Esc fechar"))
		return b.String()
	}

	for i, album := range m.galleryAlbums() {
		label := fmt.Sprintf("%s (%d)", album.Name, album.Count)
		if album.Locked && !m.galleryUnlocked {
			label += "  🔒"
		}
		if i == m.galleryIndex {
			b.WriteString(appSelectedStyle.Render("▶ "+label) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+label) + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Enter abrir · Esc voltar"))
	return b.String()
}

// --- Notes ---

func (m phoneUI) keyNotes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := story.Notes()
	switch msg.String() {
	case "up", "k":
		if m.noteIndex > 0 {
			m.noteIndex--
		}
	case "down", "j":
		if m.noteIndex < len(notes)-1 {
			m.noteIndex++
		}
	case "esc":
		m.screen = screenHome
	}
	return m, nil
}

func (m phoneUI) viewNotes() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notas") + "\n\n")
	notes := story.Notes()
	for i, n := range notes {
		if i == m.noteIndex {
			b.WriteString(appSelectedStyle.Render("▶ "+n.Title) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+n.Title) + "\n")
		}
	}
	b.WriteString("\n" + notes[m.noteIndex].Content + "\n")
	b.WriteString("\n" + mutedStyle.Render("↑/↓ navegar · Esc voltar"))
	return b.String()
}

// --- Email ---

func (m phoneUI) keyEmail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	emails := m.g.State().Emails()
	if m.readingEmail {
		if msg.String() == "esc" {
			m.readingEmail = false
		}
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		if m.emailIndex > 0 {
			m.emailIndex--
		}
	case "down", "j":
		if m.emailIndex < len(emails)-1 {
			m.emailIndex++
		}
	case "enter":
		if len(emails) > 0 {
			m.readingEmail = true
			m.g.ReadEmail(emails[m.emailIndex].ID)
		}
	case "esc":
		m.screen = screenHome
	}
	return m, nil
}

func (m phoneUI) viewEmail() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Email") + "\n\n")

	emails := m.g.State().Emails()
	if len(emails) == 0 {
		b.WriteString(mutedStyle.Render("Caixa de entrada vazia.") + "\n")
		b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
		return b.String()
	}

	if m.readingEmail {
		e := emails[m.emailIndex]
		b.WriteString(warnStyle.Render(e.Subject) + "\n")
		b.WriteString(mutedStyle.Render("De: "+e.Sender+" · "+e.Date) + "\n\n")
		b.WriteString(wordwrap.String(e.Body, 70) + "\n")
		b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
		return b.String()
	}

	for i, e := range emails {
		line := e.Sender + "  " + e.Subject
		if !e.Read {
			line = warnStyle.Render("● " + line)
		}
		if i == m.emailIndex {
			b.WriteString(appSelectedStyle.Render("▶ "+line) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + mutedStyle.Render("Enter ler · Esc voltar"))
	return b.String()
}

// --- SiteCam ---

func (m phoneUI) startCamTick() (tea.Model, tea.Cmd) {
	if m.camTicking {
		return m, nil
	}
	m.camTicking = true
	return m, camTick()
}

func camTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return camTickMsg{}
	})
}

func (m phoneUI) handleCamTick() (tea.Model, tea.Cmd) {
	if m.screen != screenSiteCam || !m.g.SiteCamInstalled() || m.g.EvidenceComplete() {
		m.camTicking = false
		m.anomalyVisible = 0
		return m, nil
	}
	// Feeds stay dark until the ghost email has been read.
	if !m.g.State().Flag(story.FlagGhostEmailRead) {
		m.anomalyVisible = 0
		return m, camTick()
	}
	if m.anomalyVisible != 0 {
		m.anomalyVisible = 0
		return m, camTick()
	}
	// Surface the next uncaptured anomaly on CAM 02.
	ev := m.g.State().Evidence()
	switch {
	case !contains(ev, story.EvidenceShadow):
		m.anomalyVisible = 1
	case !contains(ev, story.EvidenceHand):
		m.anomalyVisible = 2
	}
	return m, camTick()
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func (m phoneUI) keySiteCam(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenHome
		return m, nil
	case "enter":
		if !m.g.SiteCamInstalled() && !m.installing {
			if m.g.InstallSiteCam() {
				m.installing = true
			}
		}
		return m, nil
	case "1", "2", "3":
		if m.g.SiteCamInstalled() {
			m.selectedCam = int(msg.String()[0] - '0')
			m.camFeedback = ""
		}
		return m, nil
	case " ", "c":
		if !m.g.SiteCamInstalled() {
			return m, nil
		}
		if m.selectedCam == 2 && m.anomalyVisible != 0 {
			if m.g.CaptureAnomaly(m.anomalyVisible) {
				m.camFeedback = "ANOMALIA GUARDADA NA PASTA PROVAS"
			} else {
				m.camFeedback = "JÁ REPORTADO"
			}
			m.anomalyVisible = 0
		} else {
			m.camFeedback = "ERRO: NADA DETETADO"
		}
		return m, nil
	}
	return m, nil
}

func (m phoneUI) viewSiteCam() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SiteCam Viewer") + "\n\n")

	if m.installing && !m.g.SiteCamInstalled() {
		stage := m.installStage
		if m.installFlash {
			stage = alertStyle.Render(stage)
		}
		b.WriteString(stage + "\n\n")
		b.WriteString(renderProgress(m.installFrac, 40) + "\n")
		return b.String()
	}
	if !m.g.SiteCamInstalled() {
		if !m.g.State().Flag(story.FlagTrackerFinished) {
			b.WriteString(mutedStyle.Render("Sem ligação às câmaras da obra.") + "\n")
			b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
			return b.String()
		}
		b.WriteString("Acede às câmaras de segurança da obra.\n\n")
		b.WriteString(warnStyle.Render("Requer instalação de software externo.") + "\n")
		b.WriteString("\n" + mutedStyle.Render("Enter instalar · Esc voltar"))
		return b.String()
	}

	if !m.g.State().Flag(story.FlagGhostEmailRead) {
		b.WriteString(terminalStyle.Render("  ▓▓▓ SEM SINAL ▓▓▓  ") + "\n")
		b.WriteString(mutedStyle.Render("  A aguardar autenticação do backdoor.") + "\n")
		b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
		return b.String()
	}

	cams := []string{"CAM 01 - PORTÃO", "CAM 02 - CAVE", "CAM 03 - ESCRITÓRIO"}
	for i, cam := range cams {
		if i+1 == m.selectedCam {
			b.WriteString(appSelectedStyle.Render("▶ "+cam) + "\n")
		} else {
			b.WriteString(appStyle.Render("  "+cam) + "\n")
		}
	}
	b.WriteString("\n")

	switch m.selectedCam {
	case 2:
		b.WriteString(terminalStyle.Render("  ▓▒░ SINAL INSTÁVEL ░▒▓  ") + "\n")
		switch m.anomalyVisible {
		case 1:
			b.WriteString(alertStyle.Render("  UM VULTO PARADO JUNTO AO PILAR. NÃO SE MEXE.") + "\n")
		case 2:
			b.WriteString(alertStyle.Render("  UMA MÃO SAI DO BETÃO FRESCO.") + "\n")
		default:
			b.WriteString(mutedStyle.Render("  A cave. Betão fresco. Nada se mexe.") + "\n")
		}
	default:
		b.WriteString(mutedStyle.Render("  Imagem estável. Nada a reportar.") + "\n")
	}

	if m.camFeedback != "" {
		b.WriteString("\n" + warnStyle.Render(m.camFeedback) + "\n")
	}
	captured := len(m.g.State().Evidence())
	b.WriteString(fmt.Sprintf("\nProvas capturadas: %d/2\n", captured))
	b.WriteString(mutedStyle.Render("1-3 câmaras · Espaço capturar · Esc voltar"))
	return b.String()
}

func renderProgress(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// --- Tracker ---

func trackerTick() tea.Cmd {
	return tea.Tick(800*time.Millisecond, func(time.Time) tea.Msg {
		return trackerTickMsg{}
	})
}

func (m phoneUI) handleTrackerTick() (tea.Model, tea.Cmd) {
	if !m.trackerPlaying || m.screen != screenTracker {
		return m, nil
	}
	m.trackerStep++
	if m.trackerStep >= len(story.TrackerPlayback()) {
		m.trackerPlaying = false
		m.g.FinishTracker()
		return m, nil
	}
	return m, trackerTick()
}

func (m phoneUI) keyTracker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		unlocked := m.g.State().Flag(story.FlagTrackerUnlocked)
		finished := m.g.State().Flag(story.FlagTrackerFinished)
		if unlocked && !finished && !m.trackerPlaying {
			m.trackerPlaying = true
			m.trackerStep = 0
			return m, trackerTick()
		}
	case "esc":
		// Playback cannot be skipped once it starts.
		if !m.trackerPlaying {
			m.screen = screenHome
		}
	}
	return m, nil
}

func (m phoneUI) viewTracker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("MyTrack") + "\n")
	b.WriteString(mutedStyle.Render("HISTÓRICO DE ATIVIDADES") + "\n\n")

	unlocked := m.g.State().Flag(story.FlagTrackerUnlocked)
	for _, a := range story.TrackerActivities() {
		if a.Suspicious {
			if unlocked {
				b.WriteString(alertStyle.Render(fmt.Sprintf("  %-24s %s  %s", a.Title, a.Date, a.Distance)) + "\n")
			} else {
				b.WriteString(alertStyle.Render("  DADOS ENCRIPTADOS") +
					mutedStyle.Render("  ACESSO NEGADO: FICHEIRO ENCRIPTADO") + "\n")
			}
			continue
		}
		b.WriteString(fmt.Sprintf("  %-24s %s  %s\n", a.Title, a.Date, a.Distance))
	}

	if m.trackerPlaying || m.g.State().Flag(story.FlagTrackerFinished) {
		b.WriteString("\n")
		steps := story.TrackerPlayback()
		limit := m.trackerStep
		if !m.trackerPlaying {
			limit = len(steps) - 1
		}
		for i := 0; i <= limit && i < len(steps); i++ {
			line := steps[i]
			if i == len(steps)-1 {
				b.WriteString(alertStyle.Render(line) + "\n")
			} else {
				b.WriteString(terminalStyle.Render(line) + "\n")
			}
		}
	} else if unlocked {
		b.WriteString("\n" + warnStyle.Render("Gravação desencriptada disponível.") + "\n")
		b.WriteString(mutedStyle.Render("Enter reproduzir") + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("Esc voltar"))
	return b.String()
}
