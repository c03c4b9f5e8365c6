package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/srivalli27/dhanai/internal/cli"
	"github.com/srivalli27/dhanai/internal/i18n"
	"github.com/srivalli27/dhanai/internal/model"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <light|dark>",
		Short: "Set the theme preference",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			theme, err := model.ParseTheme(args[0])
			if err != nil {
				return err
			}

			store := openStore()
			store.SetTheme(theme)
			fmt.Println(cli.FormatSuccess("Theme set to " + string(theme)))
			return nil
		},
	}
}

func languageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "language <English|Hindi|Telugu|Tamil>",
		Short: "Set the display language",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			lang, err := model.ParseLanguage(args[0])
			if err != nil {
				return err
			}

			store := openStore()
			store.SetLanguage(lang)
			fmt.Println(cli.FormatSuccess(i18n.Translate(lang, i18n.KeyWelcomeTo)))
			return nil
		},
	}
}
