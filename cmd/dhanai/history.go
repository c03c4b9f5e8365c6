package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/model"
)

func historyCmd() *cobra.Command {
	var modeFlag string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List transactions",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := resumeStore(nil, modeFlag)
			if err != nil {
				return err
			}

			user := store.Snapshot()
			transactions := user.Transactions
			if limit > 0 && len(transactions) > limit {
				transactions = transactions[:limit]
			}

			fmt.Println(cli.FormatTitle("Transaction History · " + string(user.Mode)))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-14s %-12s %-36s %14s  %s", "ID", "DATE", "DESCRIPTION", "AMOUNT", "CATEGORY")))
			for i := range transactions {
				fmt.Println(formatHistoryRow(&transactions[i]))
			}
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many transactions")
	return cmd
}

func formatHistoryRow(tx *model.Transaction) string {
	category := cli.SubtleStyle.Render("(uncategorized)")
	switch tx.Status {
	case model.StatusCategorizedAI:
		category = tx.Category
	case model.StatusUserCorrected:
		category = tx.Category + " " + cli.InfoStyle.Render("(user)")
	}

	description := tx.Description
	if len(description) > 36 {
		description = description[:35] + "…"
	}

	return fmt.Sprintf("%-14d %-12s %-36s %14s  %s",
		tx.ID,
		tx.Date,
		description,
		cli.FormatAmount(tx.Amount, tx.Direction == model.DirectionCredit),
		category)
}

func rulesCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List categorization rules",
		Long: `List the user-defined keyword rules. A rule pre-empts the AI whenever its
keyword appears in a transaction description (case-insensitive).`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := resumeStore(nil, modeFlag)
			if err != nil {
				return err
			}

			rules := store.Snapshot().Rules
			if len(rules) == 0 {
				fmt.Println(cli.FormatInfo("No rules defined. Create one with 'dhanai correct <id> <category> --rule'"))
				return nil
			}

			var b strings.Builder
			for _, rule := range rules {
				b.WriteString(fmt.Sprintf("%q → %s\n", rule.Keyword, rule.Category))
			}
			fmt.Println(cli.RenderBox("Categorization Rules", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}
