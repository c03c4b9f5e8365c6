package tui

import (
	"context"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/srivalli27/dhanai/internal/model"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// categorizeCmd runs an AI categorization for one transaction. Multiple
// categorizations may be in flight at once; the store applies each result by
// id, so overlapping requests cannot cross-contaminate.
func (m Model) categorizeCmd(id int64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		_ = store.CategorizeTransaction(context.Background(), id)
		return categorizeDoneMsg{id: id}
	}
}

// addTransactionCmd categorizes and inserts a new transaction.
func (m Model) addTransactionCmd(description string, amount float64, direction model.TransactionDirection) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		id, err := store.AddTransaction(context.Background(), description, amount, direction)
		return transactionAddedMsg{id: id, err: err}
	}
}

// summaryCmd fetches the SME ledger summary.
func (m Model) summaryCmd() tea.Cmd {
	gateway := m.gateway
	transactions := m.user.Transactions
	return func() tea.Msg {
		return summaryMsg{text: gateway.GetSMELedgerSummary(context.Background(), transactions)}
	}
}

// startAdviceCmd opens the advice stream and returns the first listen
// command. The stream context is owned by the model so closing the modal
// cancels it.
func (m *Model) startAdviceCmd() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelStream = cancel
	m.streaming = true

	seq := m.streamSeq
	gateway := m.gateway
	history := append([]model.Message(nil), m.messages...)
	mode := m.user.Mode

	return func() tea.Msg {
		ch := gateway.GetFinancialAdvice(ctx, history, mode)
		return listenAdvice(seq, ch)()
	}
}

// listenAdvice waits for the next fragment of an open stream.
func listenAdvice(seq int, ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return adviceDoneMsg{seq: seq}
		}
		return adviceFragmentMsg{seq: seq, ch: ch, text: text}
	}
}
