package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

func (m phoneUI) keyCave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	adv := m.g.Cave()
	if adv == nil {
		m.screen = screenHome
		return m, nil
	}

	if adv.Resolved() {
		switch msg.String() {
		case "c":
			// Copying may fail on headless terminals; the report stays on
			// screen either way.
			if err := clipboard.WriteAll(m.caveMessage); err == nil {
				m.copied = true
				m.refreshCave()
			}
		case "q":
			m.showQuitModal = true
		}
		return m, nil
	}

	switch s := msg.String(); s {
	case "enter", " ":
		adv.Advance()
	case "1", "2", "3":
		idx := int(s[0] - '1')
		if idx < len(m.caveChoices) {
			adv.Choose(m.caveChoices[idx].Target)
			m.caveChoices = nil
			m.refreshCave()
		}
	}
	return m, nil
}

func (m *phoneUI) refreshCave() {
	width := m.caveViewport.Width - 2
	if width < 20 {
		width = 20
	}

	style := terminalStyle
	if m.caveTense {
		style = alertStyle
	}
	if m.caveFade > 0 && m.caveFade < 1 {
		style = mutedStyle
	}

	var b strings.Builder
	for _, line := range m.caveLines {
		b.WriteString(style.Render(wordwrap.String(line, width)) + "\n")
	}
	if cur := m.caveCurrent; cur != "" {
		b.WriteString(style.Render(wordwrap.String(cur, width)) + "█\n")
	}

	if m.caveMessage != "" {
		b.WriteString("\n" + m.renderResolution(width))
	}

	m.caveViewport.SetContent(b.String())
	m.caveViewport.GotoBottom()
}

func (m *phoneUI) renderResolution(width int) string {
	var style lipgloss.Style
	switch m.caveSeverity {
	case story.SeverityGreen:
		style = okStyle
	case story.SeverityRed:
		style = alertStyle
	default:
		style = mutedStyle
	}

	var b strings.Builder
	for _, line := range strings.Split(m.caveMessage, "\n") {
		b.WriteString(style.Render(wordwrap.String(line, width)) + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("c copiar relatório · q sair"))
	if m.copied {
		b.WriteString("\n" + okStyle.Render("Relatório copiado."))
	}
	return b.String()
}

func (m phoneUI) viewCave() string {
	var b strings.Builder
	b.WriteString(terminalStyle.Render("SOMBRA_OS v0.4 — terminal de recuperação") + "\n\n")
	b.WriteString(m.caveViewport.View() + "\n")

	adv := m.g.Cave()
	if adv != nil && adv.Resolved() {
		return b.String()
	}

	if len(m.caveChoices) > 0 {
		b.WriteString("\n")
		for i, c := range m.caveChoices {
			b.WriteString(terminalStyle.Render(fmt.Sprintf("  [%d] %s", i+1, c.Label)) + "\n")
		}
	} else if m.caveFade == 0 {
		b.WriteString("\n" + mutedStyle.Render("Enter continuar"))
	}
	return b.String()
}
