package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/model"
)

func adviseCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "advise <question...>",
		Short: "Ask the financial advisor (streamed reply)",
		Long: `Ask the conversational financial advisor a question. The reply streams to
the terminal as it is generated. The advisor persona follows the active
mode: analytical for business, friendly for personal.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gateway, err := openGateway(ctx)
			if err != nil {
				return err
			}

			store, err := resumeStore(gateway, modeFlag)
			if err != nil {
				return err
			}
			mode := store.Snapshot().Mode

			history := []model.Message{{Sender: model.SenderUser, Text: strings.Join(args, " ")}}

			fmt.Print(cli.InfoStyle.Render(cli.RobotIcon + " "))
			for fragment := range gateway.GetFinancialAdvice(ctx, history, mode) {
				fmt.Print(fragment)
			}
			fmt.Println()
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

func askCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask a question about your transactions",
		Long: `Ask a free-text question about the ledger. The full transaction list is
given to the model as context. In business mode, top/bottom client questions
are answered by summing Revenue credits per client.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			gateway, err := openGateway(ctx)
			if err != nil {
				return err
			}

			store, err := resumeStore(gateway, modeFlag)
			if err != nil {
				return err
			}
			user := store.Snapshot()

			answer := gateway.AnswerTransactionQuestion(ctx, strings.Join(args, " "), user.Transactions, user.Mode)
			fmt.Println(answer)
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Generate the SME ledger summary (business mode)",
		Long: `Generate a short accounting summary of the business ledger: total profit,
top expense category, and one cash-flow tip.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			gateway, err := openGateway(ctx)
			if err != nil {
				return err
			}

			store, err := resumeStore(gateway, string(model.ModeBusiness))
			if err != nil {
				return err
			}

			summary := gateway.GetSMELedgerSummary(ctx, store.Snapshot().Transactions)
			fmt.Println(cli.RenderBox("SME Ledger Summary", summary))
			return nil
		},
	}

	return cmd
}
