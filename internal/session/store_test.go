package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srivalli27/dhanai/internal/ai"
	"github.com/srivalli27/dhanai/internal/model"
)

// stubCategorizer mimics the gateway's never-fail contract: it applies
// matching rules first, then returns the canned result.
type stubCategorizer struct {
	result ai.CategorizationResult
	mu     sync.Mutex
	calls  []string
}

func (s *stubCategorizer) CategorizeTransaction(_ context.Context, description string, _ model.Mode, rules []model.CategorizationRule) ai.CategorizationResult {
	s.mu.Lock()
	s.calls = append(s.calls, description)
	s.mu.Unlock()
	for _, r := range rules {
		if r.Matches(description) {
			return ai.CategorizationResult{Category: r.Category, Explanation: "Matched user rule."}
		}
	}
	return s.result
}

func newTestStore(t *testing.T, categorizer Categorizer) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "userdata.json")
	store := NewStore(Options{
		Path:        path,
		Categorizer: categorizer,
		Now:         func() time.Time { return time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC) },
	})
	return store, path
}

func TestBalanceDerivation(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Food", Explanation: "Food delivery."}}
	store, _ := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	var want float64
	for _, tx := range store.Snapshot().Transactions {
		if tx.Direction == model.DirectionCredit {
			want += tx.Amount
		} else {
			want -= tx.Amount
		}
	}
	assert.InDelta(t, want, store.Balance(), 0.001)

	before := store.Balance()
	_, err := store.AddTransaction(context.Background(), "Freelance Payment", 1500, model.DirectionCredit)
	require.NoError(t, err)
	assert.InDelta(t, before+1500, store.Balance(), 0.001, "credit of 1500 should raise balance by exactly 1500")

	_, err = store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
	require.NoError(t, err)
	assert.InDelta(t, before+1500-450, store.Balance(), 0.001, "debit of 450 should lower balance by exactly 450")
}

func TestSelectModeSeedsExactSets(t *testing.T) {
	tests := []struct {
		name      string
		mode      model.Mode
		wantFirst string
		wantLen   int
	}{
		{name: "personal seed", mode: model.ModePersonal, wantFirst: "Salary Credit - July", wantLen: len(personalSeeds)},
		{name: "business seed", mode: model.ModeBusiness, wantFirst: "Client Payment #INV001 - TechCorp", wantLen: len(businessSeeds)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t, nil)
			store.Login("9876543210")
			store.SelectMode(tt.mode)

			transactions := store.Snapshot().Transactions
			require.Len(t, transactions, tt.wantLen)
			assert.Equal(t, tt.wantFirst, transactions[0].Description)

			// Every seeded transaction with a category carries a valid one.
			for _, tx := range transactions {
				if tx.Category != "" {
					assert.True(t, model.IsValidCategory(tt.mode, tx.Category),
						"seed category %q invalid for %s", tx.Category, tt.mode)
				}
			}

			// Ids are unique and increasing with position stability.
			seen := make(map[int64]bool)
			for _, tx := range transactions {
				assert.False(t, seen[tx.ID], "duplicate id %d", tx.ID)
				seen[tx.ID] = true
			}
		})
	}
}

func TestSetModeIdempotent(t *testing.T) {
	store, _ := newTestStore(t, nil)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	before := store.Snapshot().Transactions
	store.SetMode(model.ModePersonal)
	after := store.Snapshot().Transactions

	assert.Equal(t, before, after, "redundant SetMode must not reseed")

	store.SetMode(model.ModeBusiness)
	assert.NotEqual(t, before, store.Snapshot().Transactions, "mode switch must reseed")
}

func TestSelectModeAlwaysReseeds(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Food", Explanation: "ok"}}
	store, _ := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	_, err := store.AddTransaction(context.Background(), "Chai Point", 40, model.DirectionDebit)
	require.NoError(t, err)
	withEdit := len(store.Snapshot().Transactions)

	store.SelectMode(model.ModePersonal)
	assert.Equal(t, withEdit-1, len(store.Snapshot().Transactions), "SelectMode discards in-session edits")
}

func TestAddTransactionRequiresMode(t *testing.T) {
	store, _ := newTestStore(t, &stubCategorizer{})
	store.Login("9876543210")

	_, err := store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
	assert.ErrorIs(t, err, ErrNoMode)
	assert.Empty(t, store.Snapshot().Transactions)
}

func TestAddTransactionPrependsCategorized(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Travel", Explanation: "Cab ride."}}
	store, _ := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	id, err := store.AddTransaction(context.Background(), "Ola Ride", 320, model.DirectionDebit)
	require.NoError(t, err)

	transactions := store.Snapshot().Transactions
	require.NotEmpty(t, transactions)
	tx := transactions[0]
	assert.Equal(t, id, tx.ID, "new transaction is prepended")
	assert.Equal(t, "Ola Ride", tx.Description)
	assert.Equal(t, "Travel", tx.Category)
	assert.Equal(t, "Cab ride.", tx.Explanation)
	assert.Equal(t, model.StatusCategorizedAI, tx.Status)
	assert.Equal(t, "2025-07-15", tx.Date, "date is date-only, from the clock")
	assert.Equal(t, []string{"Ola Ride"}, stub.calls, "categorization happens before insertion")
}

func TestCategorizeTransactionAppliesByID(t *testing.T) {
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Health", Explanation: "Pharmacy purchase."}}
	store, _ := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	var target model.Transaction
	for _, tx := range store.Snapshot().Transactions {
		if tx.Status == model.StatusUncategorized {
			target = tx
			break
		}
	}
	require.NotZero(t, target.ID, "personal seed should contain an uncategorized transaction")

	require.NoError(t, store.CategorizeTransaction(context.Background(), target.ID))

	for i, tx := range store.Snapshot().Transactions {
		if tx.ID == target.ID {
			assert.Equal(t, "Health", tx.Category)
			assert.Equal(t, model.StatusCategorizedAI, tx.Status)
			assert.Equal(t, target.Description, tx.Description, "identity unchanged")
			assert.Equal(t, i, indexOf(store.Snapshot().Transactions, target.ID), "position unchanged")
		}
	}
}

func TestCategorizeTransactionMissing(t *testing.T) {
	store, _ := newTestStore(t, &stubCategorizer{})
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	assert.ErrorIs(t, store.CategorizeTransaction(context.Background(), 424242), ErrTransactionNotFound)
}

func TestAddRuleAndRecategorize(t *testing.T) {
	t.Run("with rule creation", func(t *testing.T) {
		stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Shopping", Explanation: "guess"}}
		store, _ := newTestStore(t, stub)
		store.Login("9876543210")
		store.SelectMode(model.ModePersonal)

		id, err := store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
		require.NoError(t, err)

		require.NoError(t, store.AddRuleAndRecategorize(id, "Food", true))

		user := store.Snapshot()
		tx := user.Transactions[0]
		assert.Equal(t, "Food", tx.Category)
		assert.Equal(t, model.StatusUserCorrected, tx.Status)
		assert.Contains(t, tx.Explanation, "User defined correction")
		require.Len(t, user.Rules, 1)
		assert.Equal(t, model.CategorizationRule{Keyword: "Swiggy Order", Category: "Food"}, user.Rules[0])

		// A later categorization of a matching description honors the rule.
		id2, err := store.AddTransaction(context.Background(), "SWIGGY ORDER #99", 210, model.DirectionDebit)
		require.NoError(t, err)
		for _, got := range store.Snapshot().Transactions {
			if got.ID == id2 {
				assert.Equal(t, "Food", got.Category, "rule pre-empts the model")
			}
		}
	})

	t.Run("one-time fix leaves rules unchanged", func(t *testing.T) {
		store, _ := newTestStore(t, &stubCategorizer{result: ai.CategorizationResult{Category: "Shopping", Explanation: "guess"}})
		store.Login("9876543210")
		store.SelectMode(model.ModePersonal)

		id, err := store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
		require.NoError(t, err)

		require.NoError(t, store.AddRuleAndRecategorize(id, "Food", false))

		user := store.Snapshot()
		assert.Empty(t, user.Rules)
		assert.Equal(t, "Food", user.Transactions[0].Category)
		assert.Equal(t, model.StatusUserCorrected, user.Transactions[0].Status)
	})

	t.Run("rule upsert replaces same keyword", func(t *testing.T) {
		store, _ := newTestStore(t, &stubCategorizer{result: ai.CategorizationResult{Category: "Shopping", Explanation: "guess"}})
		store.Login("9876543210")
		store.SelectMode(model.ModePersonal)

		id, err := store.AddTransaction(context.Background(), "Swiggy Order", 450, model.DirectionDebit)
		require.NoError(t, err)

		require.NoError(t, store.AddRuleAndRecategorize(id, "Food", true))
		require.NoError(t, store.AddRuleAndRecategorize(id, "Entertainment", true))

		rules := store.Snapshot().Rules
		require.Len(t, rules, 1, "same keyword must replace, not accumulate")
		assert.Equal(t, "Entertainment", rules[0].Category)
	})

	t.Run("missing transaction is a no-op", func(t *testing.T) {
		store, _ := newTestStore(t, nil)
		store.Login("9876543210")
		store.SelectMode(model.ModePersonal)

		before := store.Snapshot()
		assert.ErrorIs(t, store.AddRuleAndRecategorize(999999, "Food", true), ErrTransactionNotFound)
		assert.Equal(t, before, store.Snapshot())
	})
}

func TestLoginResetsModeAndLedger(t *testing.T) {
	store, _ := newTestStore(t, nil)
	store.Login("9876543210")
	store.SelectMode(model.ModeBusiness)
	require.NotEmpty(t, store.Snapshot().Transactions)

	store.Login("9123456789")

	user := store.Snapshot()
	assert.True(t, user.IsAuthenticated)
	assert.Equal(t, "9123456789", user.PhoneNumber)
	assert.Equal(t, model.ModeNone, user.Mode)
	assert.Empty(t, user.Transactions, "login forces mode re-selection")
}

func indexOf(transactions []model.Transaction, id int64) int {
	for i := range transactions {
		if transactions[i].ID == id {
			return i
		}
	}
	return -1
}

func TestConcurrentCategorizationLastWriteWins(t *testing.T) {
	// Two categorizations of the same id may overlap; whichever result is
	// applied last sticks, and the store is never left inconsistent.
	stub := &stubCategorizer{result: ai.CategorizationResult{Category: "Bills", Explanation: "ok"}}
	store, _ := newTestStore(t, stub)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	id := store.Snapshot().Transactions[0].ID

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			done <- store.CategorizeTransaction(context.Background(), id)
		}()
	}
	require.NoError(t, <-done)
	require.NoError(t, <-done)

	for _, tx := range store.Snapshot().Transactions {
		if tx.ID == id {
			assert.Equal(t, "Bills", tx.Category)
			assert.Equal(t, model.StatusCategorizedAI, tx.Status)
		}
	}
}

func TestPersistedRecordNeverStoresAuth(t *testing.T) {
	store, path := newTestStore(t, nil)
	store.Login("9876543210")
	store.SelectMode(model.ModePersonal)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var stored model.UserData
	require.NoError(t, json.Unmarshal(raw, &stored))
	assert.False(t, stored.IsAuthenticated, "authenticated flag must be stored as false")
	assert.Equal(t, model.ModePersonal, stored.Mode)
	assert.NotEmpty(t, stored.Transactions)
}
