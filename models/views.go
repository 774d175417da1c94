package models

// MovementRow is one rendered ledger row. Rows arrive already in render
// order: the most recent-looking entry first. Index numbers the row in the
// chosen iteration order, matching the ledger display.
type MovementRow struct {
	Index  int    `json:"index"`
	Type   string `json:"type"` // deposit or withdrawal
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// SummaryView holds the formatted income/expense/interest totals.
type SummaryView struct {
	In       string `json:"in"`
	Out      string `json:"out"`
	Interest string `json:"interest"`
}

// AccountView is the full authenticated view of an account.
type AccountView struct {
	Owner     string        `json:"owner"`
	Username  string        `json:"username"`
	AsOf      string        `json:"as_of"`
	Balance   string        `json:"balance"`
	Movements []MovementRow `json:"movements"`
	Summary   SummaryView   `json:"summary"`
}

// LoginView is returned on a successful login.
type LoginView struct {
	Token   string      `json:"token"`
	Welcome string      `json:"welcome"`
	Account AccountView `json:"account"`
}

// SessionView reports the inactivity countdown.
type SessionView struct {
	Username         string `json:"username"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Timer            string `json:"timer"` // mm:ss
}

// LoanView acknowledges a scheduled loan.
type LoanView struct {
	Amount string `json:"amount"`
	Status string `json:"status"`
}
