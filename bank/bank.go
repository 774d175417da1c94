// Package bank implements the in-memory ledger: the account collection,
// credential checks, transfers, loan deposits, and the derived balance and
// summary figures. A single mutex serializes all reads and writes so
// cross-account operations complete atomically; every accessor returns
// copies, never internal pointers.
package bank

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// Bank is the aggregate holding every open account, keyed by username.
// Accounts are only added at load time and removed when their owner closes
// them.
type Bank struct {
	mu    sync.Mutex
	accts map[string]*Account
}

// New returns an empty bank.
func New() *Bank {
	return &Bank{accts: make(map[string]*Account)}
}

// Add registers an account. Usernames must stay unique.
func (b *Bank) Add(a *Account) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[a.Username]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, a.Username)
	}
	b.accts[a.Username] = a
	return nil
}

// Authenticate resolves a username/PIN pair to an account snapshot.
// Unknown user and wrong PIN both come back as ErrLoginRejected.
func (b *Bank) Authenticate(username, pin string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok || !a.checkPIN(pin) {
		return nil, ErrLoginRejected
	}
	return a.clone(), nil
}

// Get returns a snapshot of the named account.
func (b *Bank) Get(username string) (*Account, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	return a.clone(), nil
}

// Movements returns a copy of the account's ledger. With sortAscending the
// copy is ordered by amount; the authoritative ledger keeps its
// chronological order either way.
func (b *Bank) Movements(username string, sortAscending bool) ([]Movement, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	out := append([]Movement(nil), a.Movements...)
	if sortAscending {
		sort.Slice(out, func(i, j int) bool {
			return out[i].Amount.LessThan(out[j].Amount)
		})
	}
	return out, nil
}

// Balance recomputes the account balance from its full ledger.
func (b *Bank) Balance(username string) (decimal.Decimal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	return a.Balance(), nil
}

// Summary recomputes the income/expense/interest totals for the account.
func (b *Bank) Summary(username string) (Summary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	return a.Summarize(), nil
}

// Transfer moves amount between two accounts inside a single critical
// section: both ledgers gain a movement stamped with now, or neither
// changes. Transfers are zero-sum across the bank.
func (b *Bank) Transfer(from, to string, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if from == to {
		return ErrSameAccount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	src, ok := b.accts[from]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, from)
	}
	dst, ok := b.accts[to]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, to)
	}
	if src.Balance().LessThan(amount) {
		return ErrInsufficient
	}
	src.Movements = append(src.Movements, Movement{Amount: amount.Neg(), Date: now})
	dst.Movements = append(dst.Movements, Movement{Amount: amount, Date: now})
	return nil
}

// Deposit appends a positive movement stamped with now. Approved loans
// land here.
func (b *Bank) Deposit(username string, amount decimal.Decimal, now time.Time) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	a.Movements = append(a.Movements, Movement{Amount: amount, Date: now})
	return nil
}

// LoanEligible reports whether the account qualifies for a loan of the
// given amount: at least one existing movement must cover a tenth of the
// requested sum.
func (b *Bank) LoanEligible(username string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	a, ok := b.accts[username]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	tenth := amount.Div(ten)
	for _, m := range a.Movements {
		if m.Amount.GreaterThanOrEqual(tenth) {
			return nil
		}
	}
	return ErrNotEligible
}

// Remove permanently deletes the account. There is no soft delete and no
// undo.
func (b *Bank) Remove(username string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.accts[username]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, username)
	}
	delete(b.accts, username)
	return nil
}

// Size returns the number of open accounts.
func (b *Bank) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.accts)
}
