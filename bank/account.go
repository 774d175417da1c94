package bank

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost keeps seed hashing fast; the PINs are four-digit demo
// credentials, not real secrets.
const bcryptCost = 8

// Movement is one signed ledger entry. Positive amounts are deposits,
// negative amounts are withdrawals. The effective date travels with the
// amount so the two can never fall out of step.
type Movement struct {
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
}

// Account is a single bank account. Username is derived from Owner at
// construction and never edited independently. The PIN is held only as a
// bcrypt digest.
type Account struct {
	Owner        string
	Username     string
	Movements    []Movement
	InterestRate decimal.Decimal
	Currency     string
	Locale       string

	pinHash []byte
}

// DeriveUsername lower-cases the initials of each word of the owner name:
// "Jonas Schmedtmann" becomes "js".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(strings.ToLower(owner)) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}
	return b.String()
}

// NewAccount builds an account with a derived username and a hashed PIN.
// The ledger starts empty; seed loading appends historical movements.
func NewAccount(owner, pin string, interestRate decimal.Decimal, currency, locale string) (*Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing pin: %w", err)
	}
	return &Account{
		Owner:        owner,
		Username:     DeriveUsername(owner),
		InterestRate: interestRate,
		Currency:     currency,
		Locale:       locale,
		pinHash:      hash,
	}, nil
}

func (a *Account) checkPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword(a.pinHash, []byte(pin)) == nil
}

// FirstName returns the leading word of the owner name, used in the
// welcome message.
func (a *Account) FirstName() string {
	if fields := strings.Fields(a.Owner); len(fields) > 0 {
		return fields[0]
	}
	return a.Owner
}

// Balance is the sum of every movement. It is always recomputed from the
// full ledger, never cached.
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		total = total.Add(m.Amount)
	}
	return total
}

// Summary holds the derived totals shown beside the ledger. Out is the
// absolute value of all withdrawals.
type Summary struct {
	In       decimal.Decimal
	Out      decimal.Decimal
	Interest decimal.Decimal
}

var (
	hundred       = decimal.NewFromInt(100)
	interestFloor = decimal.NewFromInt(1)
)

// Summarize recomputes income, expenses, and interest from the full
// movement list. Interest is paid per deposit at the account rate; computed
// amounts under one currency unit are discarded.
func (a *Account) Summarize() Summary {
	s := Summary{In: decimal.Zero, Out: decimal.Zero, Interest: decimal.Zero}
	for _, m := range a.Movements {
		switch {
		case m.Amount.IsPositive():
			s.In = s.In.Add(m.Amount)
			interest := m.Amount.Mul(a.InterestRate).Div(hundred)
			if interest.GreaterThanOrEqual(interestFloor) {
				s.Interest = s.Interest.Add(interest)
			}
		case m.Amount.IsNegative():
			s.Out = s.Out.Add(m.Amount)
		}
	}
	s.Out = s.Out.Abs()
	return s
}

// clone returns a snapshot with its own copy of the movement slice.
func (a *Account) clone() *Account {
	cp := *a
	cp.Movements = append([]Movement(nil), a.Movements...)
	return &cp
}
