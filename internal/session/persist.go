package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/srivalli27/dhanai/internal/model"
)

// defaultUserName matches the seeded profile of the mobile app.
const defaultUserName = "Aarav"

func defaultUserData(prefersDark bool) model.UserData {
	theme := model.ThemeLight
	if prefersDark {
		theme = model.ThemeDark
	}
	return model.UserData{
		UserName: defaultUserName,
		Mode:     model.ModeNone,
		Theme:    theme,
		Language: model.LanguageEnglish,
	}
}

// load rehydrates the user record from disk. The authenticated flag and the
// mode are forced back to their defaults regardless of what was stored: a
// session never survives a restart, and the mode-selection screen must
// reappear. Transactions, rules and preferences are preserved. A missing or
// unparseable record falls back to defaults.
func (s *Store) load(prefersDark bool) model.UserData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("failed to read user record, using defaults",
				"path", s.path,
				"error", err)
		}
		return defaultUserData(prefersDark)
	}

	var user model.UserData
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn("user record is corrupt, using defaults",
			"path", s.path,
			"error", err)
		return defaultUserData(prefersDark)
	}

	s.lastMode = user.Mode
	user.IsAuthenticated = false
	user.Mode = model.ModeNone
	if user.UserName == "" {
		user.UserName = defaultUserName
	}
	if user.Language == "" {
		user.Language = model.LanguageEnglish
	}
	if user.Theme == "" {
		user.Theme = defaultUserData(prefersDark).Theme
	}
	return user
}

// persistLocked writes the current record to disk with the authenticated
// flag forced off. Persistence is a side effect of every mutation; a write
// failure is logged but never fails the mutation itself.
func (s *Store) persistLocked() {
	stored := cloneUserData(s.user)
	stored.IsAuthenticated = false

	raw, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode user record", "error", err)
		return
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			s.logger.Error("failed to create data directory",
				"dir", dir,
				"error", err)
			return
		}
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		s.logger.Error("failed to write user record",
			"path", s.path,
			"error", err)
	}
}

// removeRecord deletes the persisted record entirely. Used by Logout.
func (s *Store) removeRecord() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("failed to remove user record",
			"path", s.path,
			"error", err)
	}
}
