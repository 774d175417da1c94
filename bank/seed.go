package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:embed seed.json
var defaultSeed []byte

// SeedAccount is one entry of the JSON seed file read at startup. PINs
// arrive in clear text and are hashed during loading.
type SeedAccount struct {
	Owner        string          `json:"owner"`
	PIN          string          `json:"pin"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Currency     string          `json:"currency"`
	Locale       string          `json:"locale"`
	Movements    []Movement      `json:"movements"`
}

// FromSeed builds a bank from a JSON seed document. Empty data loads the
// embedded demo accounts.
func FromSeed(data []byte) (*Bank, error) {
	if len(data) == 0 {
		data = defaultSeed
	}
	var seeds []SeedAccount
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	b := New()
	for _, s := range seeds {
		a, err := NewAccount(s.Owner, s.PIN, s.InterestRate, s.Currency, s.Locale)
		if err != nil {
			return nil, fmt.Errorf("seeding %q: %w", s.Owner, err)
		}
		a.Movements = append(a.Movements, s.Movements...)
		if err := b.Add(a); err != nil {
			return nil, err
		}
	}
	return b, nil
}
