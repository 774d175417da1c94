package session

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmarsland/bankist/bank"
	"github.com/dmarsland/bankist/clock"
)

var start = time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// newFixture builds a manager over two seeded accounts (js with 200/-100,
// jd with 50) on a fake clock with the default timings.
func newFixture(t *testing.T) (*Manager, *clock.Fake, *bank.Bank) {
	t.Helper()
	doc := []byte(`[
		{"owner": "Jonas Schmedtmann", "pin": "1111", "interest_rate": 1.2, "currency": "EUR", "locale": "pt-PT",
		 "movements": [{"amount": 200, "date": "2024-06-01T00:00:00Z"}, {"amount": -100, "date": "2024-06-02T00:00:00Z"}]},
		{"owner": "Jessica Davis", "pin": "2222", "interest_rate": 1.5, "currency": "USD", "locale": "en-US",
		 "movements": [{"amount": 50, "date": "2024-06-01T00:00:00Z"}]}
	]`)
	b, err := bank.FromSeed(doc)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	clk := clock.NewFake(start)
	return NewManager(b, clk, 0, 0), clk, b
}

func login(t *testing.T, m *Manager, username, pin string) *Session {
	t.Helper()
	s, _, err := m.Login(username, pin)
	if err != nil {
		t.Fatalf("Login(%s): %v", username, err)
	}
	return s
}

func TestLoginOpensSessionWithCountdown(t *testing.T) {
	m, _, _ := newFixture(t)

	s, acct, err := m.Login("js", "1111")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if s.Token == "" || s.Username != "js" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if acct.Owner != "Jonas Schmedtmann" {
		t.Fatalf("unexpected account: %+v", acct)
	}
	left, err := m.Remaining(s.Token)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != DefaultIdleTimeout {
		t.Fatalf("remaining=%v want %v", left, DefaultIdleTimeout)
	}
}

func TestLoginRejectedMutatesNothing(t *testing.T) {
	m, _, _ := newFixture(t)
	if _, _, err := m.Login("js", "9999"); !errors.Is(err, bank.ErrLoginRejected) {
		t.Fatalf("got %v, want ErrLoginRejected", err)
	}
	if got := m.Active(); got != 0 {
		t.Fatalf("sessions=%d want 0", got)
	}
}

func TestCountdownExpiresSession(t *testing.T) {
	m, clk, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	clk.Advance(DefaultIdleTimeout - time.Second)
	if _, err := m.Lookup(s.Token); err != nil {
		t.Fatalf("session expired early: %v", err)
	}

	clk.Advance(time.Second)
	if _, err := m.Lookup(s.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
}

func TestTransferResetsCountdown(t *testing.T) {
	m, clk, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	clk.Advance(100 * time.Second)
	if err := m.Transfer(s.Token, "jd", dec("10")); err != nil {
		t.Fatalf("Transfer: %v", err)
	}

	// The old countdown would have ended the session at t=120s.
	clk.Advance(100 * time.Second)
	if _, err := m.Lookup(s.Token); err != nil {
		t.Fatalf("session expired despite reset: %v", err)
	}
	left, _ := m.Remaining(s.Token)
	if left != 20*time.Second {
		t.Fatalf("remaining=%v want 20s", left)
	}
}

func TestFailedTransferLeavesCountdownRunning(t *testing.T) {
	m, clk, b := newFixture(t)
	s := login(t, m, "js", "1111")

	clk.Advance(100 * time.Second)
	if err := m.Transfer(s.Token, "jd", dec("100000")); !errors.Is(err, bank.ErrInsufficient) {
		t.Fatalf("got %v, want ErrInsufficient", err)
	}
	if got, _ := b.Balance("js"); !got.Equal(dec("100")) {
		t.Fatalf("balance moved on rejected transfer: %s", got)
	}

	// No reset happened, so the original deadline still holds.
	clk.Advance(20 * time.Second)
	if _, err := m.Lookup(s.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
}

func TestExpiryFiresOnlyForLastCountdown(t *testing.T) {
	m, clk, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	// Several racing resets; only the last countdown may end the session.
	for i := 0; i < 5; i++ {
		clk.Advance(30 * time.Second)
		if err := m.Transfer(s.Token, "jd", dec("1")); err != nil {
			t.Fatalf("Transfer: %v", err)
		}
	}
	clk.Advance(DefaultIdleTimeout - time.Second)
	if _, err := m.Lookup(s.Token); err != nil {
		t.Fatalf("stale countdown ended the session: %v", err)
	}
	clk.Advance(time.Second)
	if _, err := m.Lookup(s.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
}

func TestLoanAppliesAfterDelay(t *testing.T) {
	m, clk, b := newFixture(t)
	s := login(t, m, "js", "1111")

	granted, err := m.RequestLoan(s.Token, dec("1500.9"))
	if err != nil {
		t.Fatalf("RequestLoan: %v", err)
	}
	// Requested amounts are floored to whole units.
	if !granted.Equal(dec("1500")) {
		t.Fatalf("granted=%s want 1500", granted)
	}

	// Nothing lands before the processing delay elapses.
	if got, _ := b.Balance("js"); !got.Equal(dec("100")) {
		t.Fatalf("balance=%s before delay", got)
	}
	clk.Advance(DefaultLoanDelay)
	if got, _ := b.Balance("js"); !got.Equal(dec("1600")) {
		t.Fatalf("balance=%s want 1600", got)
	}

	// The applied loan also reset the countdown.
	left, _ := m.Remaining(s.Token)
	if left != DefaultIdleTimeout {
		t.Fatalf("remaining=%v want %v", left, DefaultIdleTimeout)
	}
}

func TestLoanRejectedWithoutQualifyingDeposit(t *testing.T) {
	m, _, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	// Largest movement is 200, so anything above 2000 has no qualifying
	// deposit.
	if _, err := m.RequestLoan(s.Token, dec("2001")); !errors.Is(err, bank.ErrNotEligible) {
		t.Fatalf("got %v, want ErrNotEligible", err)
	}
	if _, err := m.RequestLoan(s.Token, dec("0.9")); !errors.Is(err, bank.ErrBadAmount) {
		t.Fatalf("floored-to-zero loan: got %v, want ErrBadAmount", err)
	}
}

func TestLoanDroppedWhenSessionEndsFirst(t *testing.T) {
	m, clk, b := newFixture(t)
	s := login(t, m, "js", "1111")

	if _, err := m.RequestLoan(s.Token, dec("500")); err != nil {
		t.Fatalf("RequestLoan: %v", err)
	}
	if err := m.Logout(s.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	clk.Advance(DefaultLoanDelay)
	if got, _ := b.Balance("js"); !got.Equal(dec("100")) {
		t.Fatalf("loan landed after logout: balance=%s", got)
	}
}

func TestLogoutCancelsCountdown(t *testing.T) {
	m, clk, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	if err := m.Logout(s.Token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if err := m.Logout(s.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("second logout: got %v, want ErrNoSession", err)
	}
	// The cancelled timer must not fire into anything.
	clk.Advance(2 * DefaultIdleTimeout)
	if got := m.Active(); got != 0 {
		t.Fatalf("sessions=%d want 0", got)
	}
}

func TestCloseAccountEndsSessionsAndRemovesAccount(t *testing.T) {
	m, _, b := newFixture(t)
	s1 := login(t, m, "js", "1111")
	s2 := login(t, m, "js", "1111")
	other := login(t, m, "jd", "2222")

	if err := m.CloseAccount(s1.Token, "js", "1111"); err != nil {
		t.Fatalf("CloseAccount: %v", err)
	}
	if _, err := b.Get("js"); !errors.Is(err, bank.ErrNotFound) {
		t.Fatalf("account still present: %v", err)
	}
	if _, err := m.Lookup(s2.Token); !errors.Is(err, ErrNoSession) {
		t.Fatalf("second session survived close: %v", err)
	}
	if _, err := m.Lookup(other.Token); err != nil {
		t.Fatalf("unrelated session ended: %v", err)
	}
	if got := b.Size(); got != 1 {
		t.Fatalf("bank size=%d want 1", got)
	}
}

func TestCloseAccountRequiresMatchingCredentials(t *testing.T) {
	m, _, b := newFixture(t)
	s := login(t, m, "js", "1111")

	if err := m.CloseAccount(s.Token, "jd", "2222"); !errors.Is(err, bank.ErrLoginRejected) {
		t.Fatalf("foreign username: got %v, want ErrLoginRejected", err)
	}
	if err := m.CloseAccount(s.Token, "js", "9999"); !errors.Is(err, bank.ErrLoginRejected) {
		t.Fatalf("wrong pin: got %v, want ErrLoginRejected", err)
	}
	if got := b.Size(); got != 2 {
		t.Fatalf("bank size=%d want 2", got)
	}
	if _, err := m.Lookup(s.Token); err != nil {
		t.Fatalf("session ended by rejected close: %v", err)
	}
}

func TestRemainingCountsDown(t *testing.T) {
	m, clk, _ := newFixture(t)
	s := login(t, m, "js", "1111")

	clk.Advance(45 * time.Second)
	left, err := m.Remaining(s.Token)
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if left != 75*time.Second {
		t.Fatalf("remaining=%v want 75s", left)
	}
}
