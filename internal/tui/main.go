package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
)

// updateMain handles the main app pages.
func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(keyMsg, m.keymap.Quit):
		m.abandonStream()
		return m, tea.Quit

	case key.Matches(keyMsg, m.keymap.NextPage):
		m.page = pageOrder[(int(m.page)+1)%len(pageOrder)]
		return m, nil

	case key.Matches(keyMsg, m.keymap.PrevPage):
		m.page = pageOrder[(int(m.page)+len(pageOrder)-1)%len(pageOrder)]
		return m, nil

	case key.Matches(keyMsg, m.keymap.Advisor):
		// The advisor is a modal over the current page; closing it
		// returns to that page.
		return m.openAdvisor()
	}

	switch m.page {
	case pageHome:
		return m.updateHome(keyMsg)
	case pageHistory:
		return m.updateHistory(keyMsg)
	case pageProfile:
		return m.updateProfile(keyMsg)
	default:
		return m, nil
	}
}

func (m Model) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.keymap.Summary) && m.user.Mode == model.ModeBusiness {
		m.summary = "…"
		return m, m.summaryCmd()
	}
	return m, nil
}

func (m Model) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keymap.Up):
		if m.historyCursor > 0 {
			m.historyCursor--
		}

	case key.Matches(keyMsg, m.keymap.Down):
		if m.historyCursor < len(m.user.Transactions)-1 {
			m.historyCursor++
		}

	case key.Matches(keyMsg, m.keymap.Categorize):
		if tx, ok := m.selectedTransaction(); ok && !m.inFlight[tx.ID] {
			m.inFlight[tx.ID] = true
			return m, m.categorizeCmd(tx.ID)
		}

	case key.Matches(keyMsg, m.keymap.Add):
		return m.openAddForm()

	case key.Matches(keyMsg, m.keymap.Correct):
		if tx, ok := m.selectedTransaction(); ok {
			return m.openCorrectForm(tx)
		}
	}
	return m, nil
}

func (m Model) updateProfile(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, m.keymap.Theme):
		theme := model.ThemeDark
		if m.user.Theme == model.ThemeDark {
			theme = model.ThemeLight
		}
		m.store.SetTheme(theme)
		m.refresh()

	case key.Matches(keyMsg, m.keymap.Language):
		languages := model.Languages()
		for i, lang := range languages {
			if lang == m.user.Language {
				m.store.SetLanguage(languages[(i+1)%len(languages)])
				break
			}
		}
		m.refresh()

	case key.Matches(keyMsg, m.keymap.SwitchMode):
		mode := model.ModeBusiness
		if m.user.Mode == model.ModeBusiness {
			mode = model.ModePersonal
		}
		m.store.SetMode(mode)
		m.refresh()
		m.summary = ""
		m.historyCursor = 0

	case key.Matches(keyMsg, m.keymap.Logout):
		m.abandonStream()
		m.store.Logout()
		m.refresh()
		m.screen = screenAuth
		m.authStep = stepPhone
		m.authInput = freshInput("98765 43210", 10)
		m.captcha = newCaptcha()
		m.messages = nil
		m.summary = ""
	}
	return m, nil
}

func (m Model) selectedTransaction() (model.Transaction, bool) {
	if m.historyCursor < 0 || m.historyCursor >= len(m.user.Transactions) {
		return model.Transaction{}, false
	}
	return m.user.Transactions[m.historyCursor], true
}

// openAddForm shows the add-transaction modal.
func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	description := freshInput(m.t(i18n.KeyVendorDescription), 120)
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 12

	m.addInputs = []textinput.Model{description, amount}
	m.addFocus = fieldDescription
	m.addIsDebit = true
	m.addError = ""
	m.modal = modalAdd
	return m, textinput.Blink
}

// openCorrectForm shows the category-correction modal for a transaction.
func (m Model) openCorrectForm(tx model.Transaction) (tea.Model, tea.Cmd) {
	m.correctTarget = tx.ID
	m.correctOptions = model.CategoriesForMode(m.user.Mode)
	m.correctCursor = 0
	for i, c := range m.correctOptions {
		if c == tx.Category {
			m.correctCursor = i
			break
		}
	}
	m.correctRule = false
	m.modal = modalCorrect
	return m, nil
}

// updateModal routes input to whichever overlay is open.
func (m Model) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalAdvisor:
		return m.updateAdvisor(msg)
	case modalAdd:
		return m.updateAddForm(msg)
	case modalCorrect:
		return m.updateCorrectForm(msg)
	default:
		return m, nil
	}
}

func (m Model) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.modal = modalNone
			return m, nil

		case "tab", "shift+tab":
			m.addInputs[m.addFocus].Blur()
			if keyMsg.String() == "tab" {
				m.addFocus = (m.addFocus + 1) % 3
			} else {
				m.addFocus = (m.addFocus + 2) % 3
			}
			if m.addFocus != fieldDirection {
				m.addInputs[m.addFocus].Focus()
			}
			return m, textinput.Blink

		case " ":
			if m.addFocus == fieldDirection {
				m.addIsDebit = !m.addIsDebit
				return m, nil
			}

		case "enter":
			return m.submitAddForm()
		}
	}

	if m.addFocus != fieldDirection {
		var cmd tea.Cmd
		m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) submitAddForm() (tea.Model, tea.Cmd) {
	description := strings.TrimSpace(m.addInputs[fieldDescription].Value())
	if description == "" {
		m.addError = m.t(i18n.KeyVendorDescription)
		return m, nil
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(m.addInputs[fieldAmount].Value()), 64)
	if err != nil || amount < 0 {
		m.addError = m.t(i18n.KeyAmount)
		return m, nil
	}

	direction := model.DirectionCredit
	if m.addIsDebit {
		direction = model.DirectionDebit
	}

	m.addError = ""
	return m, m.addTransactionCmd(description, amount, direction)
}

func (m Model) updateCorrectForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case keyMsg.String() == "esc":
		m.modal = modalNone

	case key.Matches(keyMsg, m.keymap.Up):
		if m.correctCursor > 0 {
			m.correctCursor--
		}

	case key.Matches(keyMsg, m.keymap.Down):
		if m.correctCursor < len(m.correctOptions)-1 {
			m.correctCursor++
		}

	case keyMsg.String() == " ":
		m.correctRule = !m.correctRule

	case key.Matches(keyMsg, m.keymap.Select):
		_ = m.store.AddRuleAndRecategorize(m.correctTarget, m.correctOptions[m.correctCursor], m.correctRule)
		m.refresh()
		m.modal = modalNone
	}
	return m, nil
}
