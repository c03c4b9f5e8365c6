package main

import (
	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/tui"
)

// runApp starts the interactive terminal app.
func runApp(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	gateway, err := openGateway(ctx)
	if err != nil {
		return err
	}

	store := openStoreWith(gateway)
	return tui.Run(ctx, store, gateway)
}
