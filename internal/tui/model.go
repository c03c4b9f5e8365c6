// Package tui implements the interactive terminal front-end: the auth flow,
// mode selection, and the main app pages, all driven by the session store
// and the AI gateway.
package tui

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
	"github.com/srivalli27/dhanai/internal/session"
)

// screen is the top-level routing state.
type screen int

const (
	screenAuth screen = iota
	screenModeSelect
	screenMain
)

// authStep is the sub-state of the auth flow.
type authStep int

const (
	stepPhone authStep = iota
	stepOTP
	stepCaptcha
)

// page is a sub-route of the main app.
type page int

const (
	pageHome page = iota
	pageHistory
	pageProfile
	pageEMI
)

var pageOrder = []page{pageHome, pageHistory, pageProfile, pageEMI}

// modal identifies the overlay shown above the current page, if any.
type modal int

const (
	modalNone modal = iota
	modalAdvisor
	modalAdd
	modalCorrect
)

// addField indexes the inputs of the add-transaction form.
type addField int

const (
	fieldDescription addField = iota
	fieldAmount
	fieldDirection
)

// Model holds the full TUI state.
type Model struct {
	store   *session.Store
	gateway *ai.Gateway
	user    model.UserData
	t       func(i18n.Key) string
	keymap  KeyMap

	screen screen
	page   page
	modal  modal

	// Auth flow.
	authStep  authStep
	authInput textinput.Model
	phone     string
	captcha   string
	authError string

	// Mode selection.
	modeCursor int

	// History page.
	historyCursor int
	inFlight      map[int64]bool

	// Add-transaction form.
	addInputs  []textinput.Model
	addFocus   addField
	addIsDebit bool
	addError   string

	// Correction form.
	correctTarget  int64
	correctCursor  int
	correctOptions []string
	correctRule    bool

	// Advisor modal. cancelStream aborts the in-flight reply when the modal
	// closes; streamSeq guards against fragments from an abandoned stream.
	messages     []model.Message
	chatInput    textinput.Model
	chatView     viewport.Model
	streaming    bool
	streamSeq    int
	cancelStream context.CancelFunc

	// Home page extras.
	summary string
	status  string

	width  int
	height int
}

// New creates the TUI model over a session store and AI gateway.
func New(store *session.Store, gateway *ai.Gateway) Model {
	user := store.Snapshot()

	authInput := textinput.New()
	authInput.Placeholder = "98765 43210"
	authInput.CharLimit = 10
	authInput.Focus()

	chatInput := textinput.New()
	chatInput.CharLimit = 500

	m := Model{
		store:     store,
		gateway:   gateway,
		user:      user,
		keymap:    DefaultKeyMap(),
		authInput: authInput,
		chatInput: chatInput,
		chatView:  viewport.New(60, 12),
		inFlight:  make(map[int64]bool),
		captcha:   newCaptcha(),
	}
	m.t = i18n.Translator(user.Language)
	m.chatInput.Placeholder = m.t(i18n.KeyAskAdvice)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, textinput.Blink)
}

// refresh re-reads the session snapshot after a store mutation and rebinds
// the translator in case the language changed.
func (m *Model) refresh() {
	m.user = m.store.Snapshot()
	m.t = i18n.Translator(m.user.Language)
	if m.historyCursor >= len(m.user.Transactions) {
		m.historyCursor = max(0, len(m.user.Transactions)-1)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.chatView.Width = max(40, msg.Width-8)
		m.chatView.Height = max(8, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.abandonStream()
			return m, tea.Quit
		}

	case categorizeDoneMsg:
		delete(m.inFlight, msg.id)
		m.refresh()
		m.status = m.t(i18n.KeyCategory) + " ✓"
		return m, nil

	case transactionAddedMsg:
		if msg.err != nil {
			m.addError = msg.err.Error()
			return m, nil
		}
		m.modal = modalNone
		m.refresh()
		return m, nil

	case summaryMsg:
		m.summary = msg.text
		return m, nil

	case adviceFragmentMsg:
		if msg.seq != m.streamSeq || m.modal != modalAdvisor {
			// Fragment from an abandoned stream.
			return m, nil
		}
		m.appendToReply(msg.text)
		return m, listenAdvice(msg.seq, msg.ch)

	case adviceDoneMsg:
		if msg.seq == m.streamSeq {
			m.streaming = false
			m.cancelStream = nil
		}
		return m, nil
	}

	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	switch m.screen {
	case screenAuth:
		return m.updateAuth(msg)
	case screenModeSelect:
		return m.updateModeSelect(msg)
	default:
		return m.updateMain(msg)
	}
}

// abandonStream cancels the in-flight advice stream, if any, and bumps the
// sequence so late fragments are dropped instead of applied to stale state.
func (m *Model) abandonStream() {
	if m.cancelStream != nil {
		m.cancelStream()
		m.cancelStream = nil
	}
	m.streamSeq++
	m.streaming = false
}

func (m *Model) appendToReply(text string) {
	if len(m.messages) == 0 || m.messages[len(m.messages)-1].Sender != model.SenderAI {
		m.messages = append(m.messages, model.Message{Sender: model.SenderAI})
	}
	m.messages[len(m.messages)-1].Text += text
	m.chatView.SetContent(m.renderChat())
	m.chatView.GotoBottom()
}

func newCaptcha() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
