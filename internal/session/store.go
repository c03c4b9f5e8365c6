// Package session owns the client-side user record: identity, preferences,
// the transaction ledger and categorization rules. It is the single source
// of truth for the view layer; every mutation goes through an operation on
// Store and is persisted as a side effect.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/model"
)

// Operation errors. These mark requests that leave state untouched.
var (
	// ErrNoMode is returned by operations that need a selected mode.
	ErrNoMode = errors.New("no mode selected")
	// ErrTransactionNotFound is returned when a transaction id does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// Explanation markers written by the correction workflow.
const (
	explanationRuleSaved  = "User defined correction: Rule Saved."
	explanationOneTimeFix = "User defined correction: One-time fix."
)

// Categorizer is the slice of the AI gateway the store depends on.
type Categorizer interface {
	CategorizeTransaction(ctx context.Context, description string, mode model.Mode, rules []model.CategorizationRule) ai.CategorizationResult
}

// Options configures a Store.
type Options struct {
	// Path is the location of the persisted JSON record.
	Path string
	// Categorizer handles AI-assisted categorization. Required for
	// CategorizeTransaction and AddTransaction.
	Categorizer Categorizer
	Logger      *slog.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
	// PrefersDark seeds the default theme on first run.
	PrefersDark bool
}

// Store is the user session state container. All methods are safe for
// concurrent use; AI calls are made without holding the lock so the UI stays
// responsive while a request is in flight.
type Store struct {
	now         func() time.Time
	categorizer Categorizer
	logger      *slog.Logger
	path        string
	user        model.UserData
	lastMode    model.Mode
	lastID      int64
	mu          sync.Mutex
}

// NewStore creates a store, rehydrating state from the record at
// opts.Path when one exists. A missing or corrupt record falls back to
// defaults. The authenticated flag and mode are always reset on load, so the
// login and mode-selection flows reappear after every restart.
func NewStore(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Store{
		path:        opts.Path,
		categorizer: opts.Categorizer,
		logger:      logger,
		now:         now,
	}
	s.user = s.load(opts.PrefersDark)
	return s
}

// Snapshot returns a deep copy of the current user record.
func (s *Store) Snapshot() model.UserData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneUserData(s.user)
}

// Balance is the derived account balance: credits minus debits. It is
// recomputed from the transaction list on every call.
func (s *Store) Balance() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var balance float64
	for i := range s.user.Transactions {
		balance += s.user.Transactions[i].Signed()
	}
	return balance
}

// Login marks the session authenticated and records the phone number. Mode
// is reset so the user picks one on the next screen, and the ledger is
// cleared until that selection seeds it. No real verification happens here.
func (s *Store) Login(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.IsAuthenticated = true
	s.user.PhoneNumber = phone
	s.user.Mode = model.ModeNone
	s.user.Transactions = nil
	s.persistLocked()
}

// Logout resets all state to defaults and removes the persisted record.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefersDark := s.user.Theme == model.ThemeDark
	s.user = defaultUserData(prefersDark)
	s.removeRecord()
}

// SelectMode is the initial-selection path: it sets the mode and always
// replaces the ledger with that mode's seed set, even if the mode is
// unchanged.
func (s *Store) SelectMode(mode model.Mode) {
	if mode == model.ModeNone {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.Mode = mode
	s.user.Transactions = s.seedTransactionsLocked(mode)
	s.persistLocked()
}

// SetMode switches modes later in the session. Unlike SelectMode it is a
// no-op when the mode is unchanged, so redundant calls do not discard
// in-session edits.
func (s *Store) SetMode(mode model.Mode) {
	if mode == model.ModeNone {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user.Mode == mode {
		return
	}
	s.user.Mode = mode
	s.user.Transactions = s.seedTransactionsLocked(mode)
	s.persistLocked()
}

// Resume re-enters a mode non-interactively after a restart, keeping the
// rehydrated ledger instead of reseeding. This is the path used by one-shot
// commands; the interactive mode-selection flow uses SelectMode. An empty
// ledger is still seeded so first use behaves like an initial selection.
func (s *Store) Resume(mode model.Mode) {
	if mode == model.ModeNone {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user.Mode = mode
	if len(s.user.Transactions) == 0 {
		s.user.Transactions = s.seedTransactionsLocked(mode)
	}
	s.persistLocked()
}

// LastMode reports the mode found in the persisted record at load time,
// before it was reset. ModeNone when there was no record.
func (s *Store) LastMode() model.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastMode
}

// SetTheme records the theme preference.
func (s *Store) SetTheme(theme model.Theme) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Theme = theme
	s.persistLocked()
}

// SetLanguage records the language preference.
func (s *Store) SetLanguage(lang model.Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Language = lang
	s.persistLocked()
}

// CategorizeTransaction asks the AI gateway to categorize the transaction
// with the given id and writes the result back onto it. The gateway call is
// made without the lock held: concurrent categorizations of different
// transactions cannot cross-contaminate because each result is applied by
// id, and concurrent categorizations of the same id resolve last-write-wins.
func (s *Store) CategorizeTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	if s.user.Mode == model.ModeNone {
		s.mu.Unlock()
		return ErrNoMode
	}
	tx, ok := findTransaction(s.user.Transactions, id)
	if !ok {
		s.mu.Unlock()
		return ErrTransactionNotFound
	}
	description := tx.Description
	mode := s.user.Mode
	rules := cloneRules(s.user.Rules)
	s.mu.Unlock()

	result := s.categorizer.CategorizeTransaction(ctx, description, mode, rules)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.user.Transactions {
		if s.user.Transactions[i].ID == id {
			s.user.Transactions[i].Category = result.Category
			s.user.Transactions[i].Explanation = result.Explanation
			s.user.Transactions[i].Status = model.StatusCategorizedAI
			break
		}
	}
	s.persistLocked()
	return nil
}

// AddTransaction creates a transaction from user input, categorizes it
// before insertion, and prepends it to the ledger. The new transaction's id
// is returned.
func (s *Store) AddTransaction(ctx context.Context, description string, amount float64, direction model.TransactionDirection) (int64, error) {
	s.mu.Lock()
	if s.user.Mode == model.ModeNone {
		s.mu.Unlock()
		return 0, ErrNoMode
	}
	if amount < 0 {
		s.mu.Unlock()
		return 0, fmt.Errorf("amount must be non-negative, got %v", amount)
	}
	mode := s.user.Mode
	rules := cloneRules(s.user.Rules)
	s.mu.Unlock()

	result := s.categorizer.CategorizeTransaction(ctx, description, mode, rules)

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := model.Transaction{
		ID:          s.nextIDLocked(),
		Description: description,
		Amount:      amount,
		Direction:   direction,
		Date:        s.now().Format(model.DateLayout),
		Category:    result.Category,
		Explanation: result.Explanation,
		Status:      model.StatusCategorizedAI,
	}
	s.user.Transactions = append([]model.Transaction{tx}, s.user.Transactions...)
	s.persistLocked()
	return tx.ID, nil
}

// AddRuleAndRecategorize overwrites the named transaction's category with
// the user's correction and marks it user-corrected. When createRule is
// true it also upserts a rule keyed by the transaction's exact description,
// replacing any prior rule with the same keyword, so future categorizations
// of matching descriptions pre-empt the model.
func (s *Store) AddRuleAndRecategorize(transactionID int64, newCategory string, createRule bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := findTransaction(s.user.Transactions, transactionID)
	if !ok {
		return ErrTransactionNotFound
	}

	explanation := explanationOneTimeFix
	if createRule {
		explanation = explanationRuleSaved

		keyword := tx.Description
		kept := make([]model.CategorizationRule, 0, len(s.user.Rules)+1)
		for _, r := range s.user.Rules {
			if r.Keyword != keyword {
				kept = append(kept, r)
			}
		}
		s.user.Rules = append(kept, model.CategorizationRule{Keyword: keyword, Category: newCategory})
	}

	for i := range s.user.Transactions {
		if s.user.Transactions[i].ID == transactionID {
			s.user.Transactions[i].Category = newCategory
			s.user.Transactions[i].Explanation = explanation
			s.user.Transactions[i].Status = model.StatusUserCorrected
			break
		}
	}
	s.persistLocked()
	return nil
}

// nextIDLocked returns a fresh transaction id. Ids are timestamp-derived
// and strictly increasing within a session.
func (s *Store) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func findTransaction(transactions []model.Transaction, id int64) (model.Transaction, bool) {
	for i := range transactions {
		if transactions[i].ID == id {
			return transactions[i], true
		}
	}
	return model.Transaction{}, false
}

func cloneUserData(u model.UserData) model.UserData {
	out := u
	out.Transactions = append([]model.Transaction(nil), u.Transactions...)
	out.Rules = cloneRules(u.Rules)
	return out
}

func cloneRules(rules []model.CategorizationRule) []model.CategorizationRule {
	return append([]model.CategorizationRule(nil), rules...)
}
