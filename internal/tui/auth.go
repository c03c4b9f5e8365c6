package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
)

// updateAuth drives the phone → OTP → captcha flow. All validation is local
// and inline; no real verification happens.
func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || keyMsg.String() != "enter" {
		var cmd tea.Cmd
		m.authInput, cmd = m.authInput.Update(msg)
		return m, cmd
	}

	value := strings.TrimSpace(m.authInput.Value())

	switch m.authStep {
	case stepPhone:
		if !phonePattern.MatchString(value) {
			m.authError = m.t(i18n.KeyInvalidPhone)
			return m, nil
		}
		m.phone = value
		m.authStep = stepOTP
		m.authError = ""
		m.authInput = freshInput("123456", 6)

	case stepOTP:
		if value == "" {
			m.authError = m.t(i18n.KeyInvalidOTP)
			return m, nil
		}
		m.authStep = stepCaptcha
		m.authError = ""
		m.authInput = freshInput(m.captcha, 4)

	case stepCaptcha:
		if value != m.captcha {
			m.authError = m.t(i18n.KeyInvalidCaptcha)
			m.captcha = newCaptcha()
			m.authInput.SetValue("")
			return m, nil
		}
		m.store.Login(m.phone)
		m.refresh()
		m.authError = ""
		m.screen = screenModeSelect
	}

	return m, textinput.Blink
}

func freshInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Focus()
	return in
}

// updateModeSelect handles the initial mode choice. Selecting always seeds
// the ledger for the chosen mode.
func (m Model) updateModeSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keymap.Up):
		m.modeCursor = 0
	case key.Matches(keyMsg, m.keymap.Down):
		m.modeCursor = 1
	case key.Matches(keyMsg, m.keymap.Select):
		mode := model.ModePersonal
		if m.modeCursor == 1 {
			mode = model.ModeBusiness
		}
		m.store.SelectMode(mode)
		m.refresh()
		m.screen = screenMain
		m.page = pageHome
		m.summary = ""
	}
	return m, nil
}
