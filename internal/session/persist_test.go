package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/model"
)

func reopenStore(t *testing.T, path string, categorizer Categorizer) *Store {
	t.Helper()
	return NewStore(Options{
		Path:        path,
		Categorizer: categorizer,
		Now:         func() time.Time { return time.Date(2025, 7, 16, 10, 0, 0, 0, time.UTC) },
	})
}

func TestRehydrationResetsSessionState(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Food", Explanation: "ok"}}
	store, path := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)
	store.SetTheme(model.ThemeDark)
	store.SetLanguage(model.LanguageHindi)

	id, err := store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
	require.NoError(t, err)
	require.NoError(t, store.AddRuleAndRecategorize(id, "Food", true))

	persisted := store.Snapshot()

	reopened := reopenStore(t, path, stub)
	user := reopened.Snapshot()

	assert.False(t, user.IsAuthenticated, "authentication never survives a restart")
	assert.Equal(t, model.ModeNone, user.Mode, "mode selection reappears after restart")
	assert.Equal(t, model.ModePersonal, reopened.LastMode(), "persisted mode is remembered for resume")
	assert.Equal(t, persisted.Transactions, user.Transactions, "ledger is preserved")
	assert.Equal(t, persisted.Rules, user.Rules, "rules are preserved")
	assert.Equal(t, model.ThemeDark, user.Theme)
	assert.Equal(t, model.LanguageHindi, user.Language)
	assert.Equal(t, "9876543210", user.PhoneNumber)
}

func TestResumeKeepsRehydratedLedger(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Food", Explanation: "ok"}}
	store, path := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)
	_, err := store.AddTransaction(context.Background(), "Chai Point", 40, model.DirectionDebit)
	require.NoError(t, err)
	want := store.Snapshot().Transactions

	reopened := reopenStore(t, path, stub)
	reopened.Resume(model.ModePersonal)

	got := reopened.Snapshot()
	assert.Equal(t, model.ModePersonal, got.Mode)
	assert.Equal(t, want, got.Transactions, "resume must not reseed a populated ledger")
}

func TestResumeSeedsEmptyLedger(t *testing.T) {
	store, _ := newTestStore(t, nil)
	store.Resume(model.ModeBusiness)

	user := store.Snapshot()
	assert.Equal(t, model.ModeBusiness, user.Mode)
	assert.Len(t, user.Transactions, len(businessSeeds), "first resume behaves like initial selection")
}

func TestMissingRecordUsesDefaults(t *testing.T) {
	tests := []struct {
		name        string
		prefersDark bool
		wantTheme   model.Theme
	}{
		{name: "light preference", prefersDark: false, wantTheme: model.ThemeLight},
		{name: "dark preference", prefersDark: true, wantTheme: model.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(Options{
				Path:        filepath.Join(t.TempDir(), "userdata.json"),
				PrefersDark: tt.prefersDark,
			})

			user := store.Snapshot()
			assert.Equal(t, defaultUserName, user.UserName)
			assert.Equal(t, model.ModeNone, user.Mode)
			assert.Equal(t, tt.wantTheme, user.Theme)
			assert.Equal(t, model.LanguageEnglish, user.Language)
			assert.False(t, user.IsAuthenticated)
			assert.Empty(t, user.Transactions)
			assert.Equal(t, model.ModeNone, store.LastMode())
		})
	}
}

func TestCorruptRecordUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "userdata.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := reopenStore(t, path, nil)

	user := store.Snapshot()
	assert.Equal(t, defaultUserName, user.UserName)
	assert.Empty(t, user.Transactions)
	assert.False(t, user.IsAuthenticated)
}

func TestLogoutRemovesRecord(t *testing.T) {
	store, path := newTestStore(t, nil)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)
	require.FileExists(t, path)

	store.Logout()

	assert.NoFileExists(t, path)
	user := store.Snapshot()
	assert.False(t, user.IsAuthenticated)
	assert.Equal(t, model.ModeNone, user.Mode)
	assert.Empty(t, user.Transactions)
	assert.Empty(t, user.PhoneNumber)

	// A fresh store over the same path starts from defaults.
	reopened := reopenStore(t, path, nil)
	assert.Empty(t, reopened.Snapshot().Transactions)
}

func TestLogoutKeepsThemePreference(t *testing.T) {
	store, _ := newTestStore(t, nil)
	store.Login("9876543210")
	store.SetTheme(model.ThemeDark)

	store.Logout()

	assert.Equal(t, model.ThemeDark, store.Snapshot().Theme)
}
