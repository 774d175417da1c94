// Domain errors for the ledger. These are business-level failures; the
// handler layer maps them onto HTTP status codes.

package bank

import "errors"

var (
	// ErrLoginRejected covers both an unknown username and a wrong PIN.
	// Callers deliberately cannot tell the two apart.
	ErrLoginRejected = errors.New("login not accepted")

	// ErrNotFound means the referenced account is not in the bank.
	ErrNotFound = errors.New("account not found")

	// ErrBadAmount means the amount is zero or negative.
	ErrBadAmount = errors.New("amount must be > 0")

	// ErrInsufficient means the sender's balance does not cover the amount.
	ErrInsufficient = errors.New("insufficient balance")

	// ErrSameAccount rejects a transfer to the sending account.
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrNotEligible means no existing deposit covers a tenth of the
	// requested loan.
	ErrNotEligible = errors.New("no qualifying deposit for requested loan")

	// ErrDuplicate means the username is already taken at load time.
	ErrDuplicate = errors.New("username already taken")
)
