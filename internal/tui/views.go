package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
	"github.com/srivalli27/dhanai/internal/session"
)

// View implements tea.Model.
func (m Model) View() string {
	switch {
	case m.modal == modalAdvisor:
		return m.viewAdvisor()
	case m.modal == modalAdd:
		return m.viewAddForm()
	case m.modal == modalCorrect:
		return m.viewCorrectForm()
	case m.screen == screenAuth:
		return m.viewAuth()
	case m.screen == screenModeSelect:
		return m.viewModeSelect()
	default:
		return m.viewMain()
	}
}

func (m Model) viewAuth() string {
	var prompt string
	switch m.authStep {
	case stepPhone:
		prompt = m.t(i18n.KeyEnterPhoneNumber)
	case stepOTP:
		prompt = m.t(i18n.KeyEnterOTP)
	case stepCaptcha:
		prompt = fmt.Sprintf("%s: %s", m.t(i18n.KeyEnterCaptcha), cli.TitleStyle.Render(m.captcha))
	}

	lines := []string{prompt, "", m.authInput.View()}
	if m.authError != "" {
		lines = append(lines, "", cli.FormatError(m.authError))
	}
	lines = append(lines, "", cli.SubtleStyle.Render("enter: continue · ctrl+c: quit"))

	return cli.RenderBox(m.t(i18n.KeyWelcomeTo), strings.Join(lines, "\n"))
}

func (m Model) viewModeSelect() string {
	options := []string{m.t(i18n.KeyPersonal), m.t(i18n.KeyBusiness)}
	var lines []string
	for i, opt := range options {
		cursor := "  "
		if i == m.modeCursor {
			cursor = cli.TitleStyle.UnsetMargins().Render("> ")
		}
		lines = append(lines, cursor+opt)
	}
	return cli.RenderBox(m.t(i18n.KeyModePrompt), strings.Join(lines, "\n"))
}

func (m Model) viewMain() string {
	var body string
	switch m.page {
	case pageHome:
		body = m.viewHome()
	case pageHistory:
		body = m.viewHistory()
	case pageProfile:
		body = m.viewProfile()
	case pageEMI:
		body = m.viewEMI()
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewTabs(), body, m.viewFooter())
}

func (m Model) viewTabs() string {
	labels := map[page]string{
		pageHome:    m.t(i18n.KeyHome),
		pageHistory: m.t(i18n.KeyHistory),
		pageProfile: m.t(i18n.KeyProfile),
		pageEMI:     m.t(i18n.KeyEMI),
	}

	var tabs []string
	for _, p := range pageOrder {
		if p == m.page {
			tabs = append(tabs, cli.TitleStyle.UnsetMargins().Render("["+labels[p]+"]"))
		} else {
			tabs = append(tabs, cli.SubtleStyle.Render(" "+labels[p]+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) viewFooter() string {
	hints := "tab: pages · v: advisor · q: quit"
	if m.page == pageHistory {
		hints = "c: categorize · a: add · e: correct · " + hints
	}
	if m.page == pageProfile {
		hints = "t: theme · l: language · m: mode · x: logout · " + hints
	}
	if m.status != "" {
		hints = m.status + "   " + hints
	}
	return cli.SubtleStyle.Render(hints)
}

func (m Model) viewHome() string {
	balance := fmt.Sprintf("%s%.2f", cli.RupeeIcon, m.store.Balance())
	lines := []string{
		fmt.Sprintf("%s, %s · %s", m.t(i18n.KeyWelcomeBack), m.user.UserName, m.user.Mode),
		"",
		m.t(i18n.KeyTotalBalance) + ": " + cli.TitleStyle.UnsetMargins().Render(balance),
		"",
		cli.TableHeaderStyle.Render(m.t(i18n.KeyRecentTransactions)),
	}

	recent := m.user.Transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}
	for i := range recent {
		lines = append(lines, m.renderTransactionLine(&recent[i], false))
	}

	if m.user.Mode == model.ModeBusiness {
		lines = append(lines, "", cli.TableHeaderStyle.Render(m.t(i18n.KeySMELedger)))
		if m.summary == "" {
			lines = append(lines, cli.SubtleStyle.Render("press s to generate"))
		} else {
			lines = append(lines, m.summary)
		}
	}

	return cli.RenderBox(m.t(i18n.KeyHome), strings.Join(lines, "\n"))
}

func (m Model) viewHistory() string {
	if len(m.user.Transactions) == 0 {
		return cli.RenderBox(m.t(i18n.KeyTransactionHistory), cli.SubtleStyle.Render(m.t(i18n.KeyNoSpendingData)))
	}

	var lines []string
	for i := range m.user.Transactions {
		tx := &m.user.Transactions[i]
		line := m.renderTransactionLine(tx, i == m.historyCursor)
		lines = append(lines, line)
		if i == m.historyCursor && tx.Explanation != "" {
			lines = append(lines, cli.SubtleStyle.Render("    "+tx.Explanation))
		}
	}
	return cli.RenderBox(m.t(i18n.KeyTransactionHistory), strings.Join(lines, "\n"))
}

func (m Model) renderTransactionLine(tx *model.Transaction, selected bool) string {
	cursor := "  "
	if selected {
		cursor = cli.TitleStyle.UnsetMargins().Render("> ")
	}

	category := cli.SubtleStyle.Render("· " + m.t(i18n.KeyCategorize))
	switch tx.Status {
	case model.StatusUserCorrected:
		category = cli.InfoStyle.Render("· " + tx.Category + " *")
	case model.StatusCategorizedAI:
		category = cli.InfoStyle.Render("· " + tx.Category)
	}

	if m.inFlight[tx.ID] {
		category = cli.WarningStyle.Render("· …")
	}

	return fmt.Sprintf("%s%s  %-34s %12s %s",
		cursor,
		cli.SubtleStyle.Render(tx.Date),
		truncate(tx.Description, 34),
		cli.FormatAmount(tx.Amount, tx.Direction == model.DirectionCredit),
		category)
}

func (m Model) viewProfile() string {
	lines := []string{
		m.user.UserName + " · " + m.user.PhoneNumber,
		"",
		fmt.Sprintf("%s: %s", m.t(i18n.KeySwitchMode), m.user.Mode),
		fmt.Sprintf("%s: %s", m.t(i18n.KeyTheme), m.user.Theme),
		fmt.Sprintf("%s: %s", m.t(i18n.KeyLanguage), m.user.Language),
		"",
		cli.TableHeaderStyle.Render(m.t(i18n.KeyAutoPay)),
	}
	for _, mandate := range session.Mandates() {
		lines = append(lines, fmt.Sprintf("  %-14s %s%.0f %s · %s",
			mandate.Vendor, cli.RupeeIcon, mandate.Amount, mandate.Frequency,
			cli.SubtleStyle.Render(mandate.NextPaymentDate)))
	}
	return cli.RenderBox(m.t(i18n.KeyProfile), strings.Join(lines, "\n"))
}

func (m Model) viewEMI() string {
	var lines []string
	for _, emi := range session.EMIs(m.user.Mode) {
		lines = append(lines,
			cli.TableHeaderStyle.Render(fmt.Sprintf("%s · %s", emi.LoanName, emi.Bank)),
			fmt.Sprintf("  EMI %s%.0f · %s: %s%.0f · %s: %.1f%% · %s: %d mo",
				cli.RupeeIcon, emi.EMIAmount,
				m.t(i18n.KeyPrincipal), cli.RupeeIcon, emi.Principal,
				m.t(i18n.KeyInterest), emi.InterestRate,
				m.t(i18n.KeyTenure), emi.TenureMonths),
			fmt.Sprintf("  %s: %s", m.t(i18n.KeyNextDueDate), cli.SubtleStyle.Render(emi.NextDueDate)),
			"",
		)
	}
	return cli.RenderBox(m.t(i18n.KeyEMIDashboard), strings.Join(lines, "\n"))
}

func (m Model) viewAdvisor() string {
	status := ""
	if m.streaming {
		status = cli.WarningStyle.Render("…")
	}
	content := strings.Join([]string{
		m.chatView.View(),
		"",
		m.chatInput.View() + " " + status,
		cli.SubtleStyle.Render("enter: send · esc: " + m.t(i18n.KeyClose)),
	}, "\n")
	return cli.RenderBox(m.t(i18n.KeyAIAdvisor), content)
}

func (m Model) renderChat() string {
	var b strings.Builder
	for _, msg := range m.messages {
		label := cli.InfoStyle.Render("DhanAI")
		if msg.Sender == model.SenderUser {
			label = cli.TitleStyle.UnsetMargins().Render(m.user.UserName)
		}
		b.WriteString(label + ": " + msg.Text + "\n\n")
	}
	return b.String()
}

func (m Model) viewAddForm() string {
	direction := m.t(i18n.KeyIncome)
	if m.addIsDebit {
		direction = m.t(i18n.KeyExpense)
	}
	directionLine := fmt.Sprintf("%s: %s", m.t(i18n.KeyTransactionType), direction)
	if m.addFocus == fieldDirection {
		directionLine += cli.SubtleStyle.Render("  (space to toggle)")
	}

	lines := []string{
		m.t(i18n.KeyVendorDescription) + ": " + m.addInputs[fieldDescription].View(),
		m.t(i18n.KeyAmount) + ": " + m.addInputs[fieldAmount].View(),
		directionLine,
	}
	if m.addError != "" {
		lines = append(lines, "", cli.FormatError(m.addError))
	}
	lines = append(lines, "", cli.SubtleStyle.Render("tab: next field · enter: save · esc: cancel"))
	return cli.RenderBox(m.t(i18n.KeyAddTransaction), strings.Join(lines, "\n"))
}

func (m Model) viewCorrectForm() string {
	var lines []string
	for i, category := range m.correctOptions {
		cursor := "  "
		if i == m.correctCursor {
			cursor = cli.TitleStyle.UnsetMargins().Render("> ")
		}
		lines = append(lines, cursor+category)
	}

	rule := "[ ]"
	if m.correctRule {
		rule = cli.SuccessStyle.Render("[x]")
	}
	lines = append(lines, "", fmt.Sprintf("%s %s", rule, m.t(i18n.KeyAlwaysCategorize)))
	lines = append(lines, "", cli.SubtleStyle.Render("space: toggle rule · enter: "+m.t(i18n.KeySubmitCorrection)+" · esc: cancel"))
	return cli.RenderBox(m.t(i18n.KeyCorrectCategory), strings.Join(lines, "\n"))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
