package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/model"
)

func addCmd() *cobra.Command {
	var modeFlag string
	var credit bool

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Add a transaction (AI-categorized before insertion)",
		Long: `Add a transaction to the ledger. The description is categorized by the AI
before insertion, honoring any user-defined rules. Transactions are debits
unless --credit is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount < 0 {
				return fmt.Errorf("amount must be non-negative, got %v", amount)
			}

			gateway, err := openGateway(ctx)
			if err != nil {
				return err
			}

			store, err := resumeStore(gateway, modeFlag)
			if err != nil {
				return err
			}

			direction := model.DirectionDebit
			if credit {
				direction = model.DirectionCredit
			}

			id, err := store.AddTransaction(ctx, args[0], amount, direction)
			if err != nil {
				return err
			}

			user := store.Snapshot()
			tx := user.Transactions[0]
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added #%d %q as %s", id, tx.Description, tx.Category)))
			fmt.Println(cli.SubtleStyle.Render("  " + tx.Explanation))
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().BoolVar(&credit, "credit", false, "record as a credit (income) instead of a debit")
	return cmd
}
