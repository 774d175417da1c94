// Package session implements the authenticated session lifecycle: login,
// the inactivity countdown, and the ledger operations a logged-in user may
// perform. All mutating operations go through the Manager so the countdown
// reset rules live in one place.
package session

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dmarsland/bankist/bank"
	"github.com/dmarsland/bankist/clock"
)

// Defaults mirror the reference behavior: two minutes of inactivity, two
// and a half seconds of simulated loan processing.
const (
	DefaultIdleTimeout = 120 * time.Second
	DefaultLoanDelay   = 2500 * time.Millisecond
)

// ErrNoSession means the bearer token does not resolve to a live session.
var ErrNoSession = errors.New("session expired or not found")

// Session is one authenticated period against one account. The account is
// referenced by username, never by pointer, so closing it cannot leave a
// dangling reference.
type Session struct {
	Token    string
	Username string

	deadline time.Time
	timer    clock.Timer
	gen      uint64
}

// Manager owns the session table and every countdown timer, and fronts
// the bank for all authenticated operations.
type Manager struct {
	mu       sync.Mutex
	bank     *bank.Bank
	clk      clock.Clock
	idle     time.Duration
	loanWait time.Duration
	sessions map[string]*Session
}

// NewManager wires a manager over the given bank and clock. Non-positive
// durations fall back to the defaults.
func NewManager(b *bank.Bank, clk clock.Clock, idle, loanWait time.Duration) *Manager {
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}
	if loanWait <= 0 {
		loanWait = DefaultLoanDelay
	}
	return &Manager{
		bank:     b,
		clk:      clk,
		idle:     idle,
		loanWait: loanWait,
		sessions: make(map[string]*Session),
	}
}

// Now exposes the manager's clock for view rendering.
func (m *Manager) Now() time.Time { return m.clk.Now() }

// Login authenticates a username/PIN pair and opens a session with a fresh
// inactivity countdown. Failure mutates nothing.
func (m *Manager) Login(username, pin string) (*Session, *bank.Account, error) {
	acct, err := m.bank.Authenticate(username, pin)
	if err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s := &Session{Token: uuid.NewString(), Username: acct.Username}
	m.sessions[s.Token] = s
	m.resetCountdown(s)
	slog.Info("session opened", "username", s.Username)
	cp := *s
	return &cp, acct, nil
}

// resetCountdown cancels any running countdown for s and starts a new one;
// two countdowns never run at once. The generation counter guarantees a
// timer that already fired concurrently cannot end a refreshed session.
// Caller holds mu.
func (m *Manager) resetCountdown(s *Session) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	token := s.Token
	s.deadline = m.clk.Now().Add(m.idle)
	s.timer = m.clk.AfterFunc(m.idle, func() { m.expire(token, gen) })
}

// expire ends a session whose countdown ran out. A stale generation means
// the countdown was reset after this timer was scheduled; it must not fire.
func (m *Manager) expire(token string, gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok || s.gen != gen {
		return
	}
	delete(m.sessions, token)
	slog.Info("session expired", "username", s.Username)
}

// touch restarts the countdown after a successful mutating operation.
func (m *Manager) touch(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[token]; ok {
		m.resetCountdown(s)
	}
}

// Lookup resolves a bearer token to a copy of its live session.
func (m *Manager) Lookup(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrNoSession
	}
	cp := *s
	return &cp, nil
}

// Remaining reports how long until the session's countdown expires.
func (m *Manager) Remaining(token string) (time.Duration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return 0, ErrNoSession
	}
	left := s.deadline.Sub(m.clk.Now())
	if left < 0 {
		left = 0
	}
	return left, nil
}

// Logout ends the session and cancels its countdown.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[token]
	if !ok {
		return ErrNoSession
	}
	m.remove(s)
	slog.Info("session closed", "username", s.Username)
	return nil
}

// remove drops a session and stops its timer. Caller holds mu.
func (m *Manager) remove(s *Session) {
	if s.timer != nil {
		s.timer.Stop()
	}
	delete(m.sessions, s.Token)
}

// Active returns the number of live sessions.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Account returns a snapshot of the session's account. Reading does not
// reset the countdown.
func (m *Manager) Account(token string) (*bank.Account, error) {
	s, err := m.Lookup(token)
	if err != nil {
		return nil, err
	}
	return m.bank.Get(s.Username)
}

// Movements returns a copy of the session account's ledger, by value
// ascending when sortAscending is set.
func (m *Manager) Movements(token string, sortAscending bool) ([]bank.Movement, error) {
	s, err := m.Lookup(token)
	if err != nil {
		return nil, err
	}
	return m.bank.Movements(s.Username, sortAscending)
}

// Transfer sends amount to another account. On success the countdown
// restarts; a rejected transfer leaves the running countdown untouched.
func (m *Manager) Transfer(token, to string, amount decimal.Decimal) error {
	s, err := m.Lookup(token)
	if err != nil {
		return err
	}
	if err := m.bank.Transfer(s.Username, to, amount, m.clk.Now()); err != nil {
		return err
	}
	m.touch(token)
	slog.Info("transfer applied", "from", s.Username, "to", to, "amount", amount)
	return nil
}

// RequestLoan validates the request immediately and applies the deposit
// after the processing delay. The amount is floored to a whole unit before
// any check. The deferred deposit re-checks that the session is still
// live, so a loan can never land after logout, timeout, or closure.
func (m *Manager) RequestLoan(token string, amount decimal.Decimal) (decimal.Decimal, error) {
	s, err := m.Lookup(token)
	if err != nil {
		return decimal.Zero, err
	}
	amount = amount.Floor()
	if err := m.bank.LoanEligible(s.Username, amount); err != nil {
		return decimal.Zero, err
	}
	username := s.Username
	m.clk.AfterFunc(m.loanWait, func() {
		if _, err := m.Lookup(token); err != nil {
			slog.Warn("loan dropped, session ended", "username", username)
			return
		}
		if err := m.bank.Deposit(username, amount, m.clk.Now()); err != nil {
			slog.Warn("loan dropped", "username", username, "error", err)
			return
		}
		m.touch(token)
		slog.Info("loan approved", "username", username, "amount", amount)
	})
	return amount, nil
}

// CloseAccount permanently removes the session's account after the user
// re-confirms their credentials, then ends every session open against it.
func (m *Manager) CloseAccount(token, username, pin string) error {
	s, err := m.Lookup(token)
	if err != nil {
		return err
	}
	if username != s.Username {
		return bank.ErrLoginRejected
	}
	if _, err := m.bank.Authenticate(username, pin); err != nil {
		return err
	}
	if err := m.bank.Remove(username); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, open := range m.sessions {
		if open.Username == username {
			m.remove(open)
		}
	}
	slog.Info("account closed", "username", username)
	return nil
}
