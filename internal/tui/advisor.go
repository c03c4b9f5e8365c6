package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
)

// openAdvisor overlays the advisor modal on the current page. The chat
// history starts fresh per session with the canned greeting.
func (m Model) openAdvisor() (tea.Model, tea.Cmd) {
	if len(m.messages) == 0 {
		m.messages = []model.Message{{Sender: model.SenderAI, Text: m.t(i18n.KeyAIGreeting)}}
	}
	m.modal = modalAdvisor
	m.chatInput = freshInput(m.t(i18n.KeyAskAdvice), 500)
	m.chatView.SetContent(m.renderChat())
	m.chatView.GotoBottom()
	return m, textinput.Blink
}

// updateAdvisor drives the advisor chat. Closing the modal cancels any
// in-flight stream; its remaining fragments are dropped by sequence check.
func (m Model) updateAdvisor(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.abandonStream()
			m.modal = modalNone
			return m, nil

		case "enter":
			text := strings.TrimSpace(m.chatInput.Value())
			if text == "" || m.streaming {
				return m, nil
			}
			m.messages = append(m.messages, model.Message{Sender: model.SenderUser, Text: text})
			m.chatInput.SetValue("")
			m.chatView.SetContent(m.renderChat())
			m.chatView.GotoBottom()
			return m, m.startAdviceCmd()

		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.chatView, cmd = m.chatView.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}
