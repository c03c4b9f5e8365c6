package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
)

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <phone>",
		Short: "Start a session with a phone number",
		Long: `Start a session with a phone number. No real verification happens; any
plausible 10-digit Indian mobile number is accepted. Logging in resets the
mode so the next command selects one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			phone := args[0]
			if !phonePattern.MatchString(phone) {
				return fmt.Errorf("invalid phone number %q: want 10 digits starting with 6-9", phone)
			}

			store := openStore()
			store.Login(phone)
			fmt.Println(cli.FormatSuccess("Logged in as " + phone))
			fmt.Println(cli.FormatInfo("Pick a mode next: dhanai mode personal|business"))
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear all local data and remove the persisted record",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := openStore()
			store.Logout()
			fmt.Println(cli.FormatSuccess("Logged out, local data cleared"))
			return nil
		},
	}
}
