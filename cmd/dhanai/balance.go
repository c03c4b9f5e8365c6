package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/charts"
	"github.com/srivalli27/dhanai/internal/cli"
)

func balanceCmd() *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the derived balance and spending by category",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := resumeStore(nil, modeFlag)
			if err != nil {
				return err
			}

			user := store.Snapshot()
			totals := charts.SpendingByCategory(user.Transactions)

			categories := make([]string, 0, len(totals))
			for category := range totals {
				categories = append(categories, category)
			}
			sort.Slice(categories, func(i, j int) bool { return totals[categories[i]] > totals[categories[j]] })

			var b strings.Builder
			fmt.Fprintf(&b, "Total: %s%.2f\n\n", cli.RupeeIcon, store.Balance())
			for _, category := range categories {
				fmt.Fprintf(&b, "%-16s %s%.2f\n", category, cli.RupeeIcon, totals[category])
			}
			fmt.Println(cli.RenderBox(string(user.Mode)+" Balance", strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	return cmd
}

func chartCmd() *cobra.Command {
	var modeFlag string
	var output string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a spending-by-category chart to a PNG file",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := resumeStore(nil, modeFlag)
			if err != nil {
				return err
			}

			png, err := charts.RenderSpendingChart(store.Snapshot().Transactions)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, png, 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			fmt.Println(cli.FormatSuccess(cli.ChartIcon + " Chart written to " + output))
			return nil
		},
	}

	addModeFlag(cmd, &modeFlag)
	cmd.Flags().StringVarP(&output, "output", "o", "spending.png", "output file")
	return cmd
}
