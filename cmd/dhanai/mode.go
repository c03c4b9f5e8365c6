package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/model"
	"github.com/srivalli27/dhanai/internal/session"
)

func modeCmd() *cobra.Command {
	var reseed bool

	cmd := &cobra.Command{
		Use:   "mode <personal|business>",
		Short: "Select or switch the finance mode",
		Long: `Select or switch between personal and business mode. Switching seeds the
ledger for the new mode. With --reseed the ledger is replaced with the mock
seed set even when the mode is unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, err := model.ParseMode(args[0])
			if err != nil {
				return err
			}

			store := openStore()
			if reseed {
				store.SelectMode(mode)
			} else if store.LastMode() == mode {
				// Same mode as the stored record: keep the ledger.
				store.Resume(mode)
			} else {
				store.SelectMode(mode)
			}

			count := len(store.Snapshot().Transactions)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Mode set to %s (%d transactions)", mode, count)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reseed, "reseed", false, "replace the ledger with the mock seed set")
	return cmd
}

// resumeStore loads the store and re-enters the given or last-used mode.
// Shared by every command that needs a selected mode.
func resumeStore(categorizer session.Categorizer, modeFlag string) (*session.Store, error) {
	store := openStoreWith(categorizer)

	mode := store.LastMode()
	if modeFlag != "" {
		parsed, err := model.ParseMode(modeFlag)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}
	if mode == model.ModeNone {
		return nil, fmt.Errorf("no mode selected: run 'dhanai mode personal' or 'dhanai mode business' first")
	}

	store.Resume(mode)
	return store, nil
}

func addModeFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "mode", "", "finance mode (personal or business; default: last used)")
}
