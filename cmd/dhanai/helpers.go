package main

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/config"
	"github.com/srivalli27/dhanai/internal/session"
)

// dataPath resolves the location of the persisted user record.
func dataPath() string {
	if path := viper.GetString("data.path"); path != "" {
		return config.ExpandPath(path)
	}
	return config.DefaultDataPath()
}

// openStore loads the session store without an AI gateway, for commands
// that only read or mutate local state.
func openStore() *session.Store {
	return openStoreWith(nil)
}

func openStoreWith(categorizer session.Categorizer) *session.Store {
	return session.NewStore(session.Options{
		Path:        dataPath(),
		Categorizer: categorizer,
		Logger:      slog.Default(),
		PrefersDark: lipgloss.HasDarkBackground(),
	})
}

// openGateway constructs the AI gateway. The API key is required: its
// absence fails here, before any AI-dependent work starts.
func openGateway(ctx context.Context) (*ai.Gateway, error) {
	generator, err := ai.NewGeminiGenerator(ctx, viper.GetString("gemini.api_key"))
	if err != nil {
		return nil, err
	}
	return ai.NewGateway(generator, slog.Default()), nil
}
