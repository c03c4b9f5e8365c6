package main

import (
	"fmt"
	"strconv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/model"
)

func categorizeCmd() *cobra.Command {
	var modeFlag string
	var all bool

	cmd := &cobra.Command{
		Use:   "categorize [id]",
		Short: "AI-categorize a transaction, or all uncategorized ones",
		Long: `Ask the AI to categorize the transaction with the given id. With --all,
every uncategorized transaction in the ledger is processed in order.`,
		Args: cobra.MaximumNArgs(1),
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

			if all {
				var pending []int64
				for _, tx := range store.Snapshot().Transactions {
					if tx.Status == model.StatusUncategorized {
						pending = append(pending, tx.ID)
					}
				}
				if len(pending) == 0 {
					fmt.Println(cli.FormatInfo("Nothing to categorize"))
					return nil
				}

				bar := progressbar.Default(int64(len(pending)), "categorizing")
				for _, id := range pending {
					if err := store.CategorizeTransaction(ctx, id); err != nil {
						return err
					}
					_ = bar.Add(1)
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Categorized %d transactions", len(pending))))
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("provide a transaction id or --all")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}

			if err := store.CategorizeTransaction(ctx, id); err != nil {
				return err
			}

			for _, tx := range store.Snapshot().Transactions {
				if tx.ID == id {
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("#%d %q → %s", id, tx.Description, tx.Category)))
					fmt.Println(cli.SubtleStyle.Render("  " + tx.Explanation))
					break
				}
			}
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().BoolVar(&all, "all", false, "categorize every uncategorized transaction")
	return cmd
}

func correctCmd() *cobra.Command {
	var modeFlag string
	var rule bool

	cmd := &cobra.Command{
		Use:   "correct <id> <category>",
		Short: "Correct a transaction's category",
		Long: `Overwrite a transaction's category with a user correction. With --rule, a
keyword rule is saved for the transaction's description so future
categorizations of matching descriptions use the corrected category.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q: %w", args[0], err)
			}
			category := args[1]

			store, err := resumeStore(nil, modeFlag)
			if err != nil {
				return err
			}

			if mode := store.Snapshot().Mode; !model.IsValidCategory(mode, category) {
				return fmt.Errorf("unknown %s category %q", mode, category)
			}

			if err := store.AddRuleAndRecategorize(id, category, rule); err != nil {
				return err
			}

			message := fmt.Sprintf("#%d corrected to %s", id, category)
			if rule {
				message += " (rule saved)"
			}
			fmt.Println(cli.FormatSuccess(message))
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().BoolVar(&rule, "rule", false, "also save a keyword rule for this description")
	return cmd
}
