package handlers

import (
	"time"

	"github.com/dmarsland/bankist/bank"
	"github.com/dmarsland/bankist/format"
	"github.com/dmarsland/bankist/models"
)

// accountView assembles the authenticated view of an account: rendered
// ledger rows, the recomputed balance, and the summary totals, all as
// display strings in the account's locale and currency.
func accountView(a *bank.Account, movs []bank.Movement, now time.Time) models.AccountView {
	sum := a.Summarize()
	return models.AccountView{
		Owner:     a.Owner,
		Username:  a.Username,
		AsOf:      format.HeaderDate(now, a.Locale),
		Balance:   format.Money(a.Balance(), a.Locale, a.Currency),
		Movements: movementRows(a, movs, now),
		Summary: models.SummaryView{
			In:       format.Money(sum.In, a.Locale, a.Currency),
			Out:      format.Money(sum.Out, a.Locale, a.Currency),
			Interest: format.Money(sum.Interest, a.Locale, a.Currency),
		},
	}
}

// movementRows numbers rows in the given iteration order, then reverses
// them so the most recent-looking entry renders first. This is purely a
// presentation convention; the ledger itself is never reordered.
func movementRows(a *bank.Account, movs []bank.Movement, now time.Time) []models.MovementRow {
	rows := make([]models.MovementRow, 0, len(movs))
	for i, m := range movs {
		kind := "deposit"
		if m.Amount.IsNegative() {
			kind = "withdrawal"
		}
		rows = append(rows, models.MovementRow{
			Index:  i + 1,
			Type:   kind,
			Date:   format.MovementDate(m.Date, now, a.Locale),
			Amount: format.Money(m.Amount, a.Locale, a.Currency),
		})
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows
}
