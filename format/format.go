// Package format renders amounts, dates, and the countdown for display.
// It is the presentation-only formatter collaborator: no business rule
// depends on any string produced here.
package format

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money renders an amount with the locale's digit grouping and the
// currency symbol. Unparseable locales fall back to English, unknown
// currency codes to EUR.
func Money(v decimal.Decimal, locale, code string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.EUR
	}
	f, _ := v.Float64()
	return message.NewPrinter(tag).Sprintf("%v", currency.Symbol(unit.Amount(f)))
}

// MovementDate renders a ledger date relative to now: Today, Yesterday,
// "N days ago" up to a week, then a numeric date in the locale's field
// order.
func MovementDate(t, now time.Time, locale string) string {
	days := int(math.Round(math.Abs(now.Sub(t).Hours()) / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	}
	return t.Format(dateLayout(locale))
}

// HeaderDate renders the "as of" date and time shown after login.
func HeaderDate(t time.Time, locale string) string {
	return t.Format(dateLayout(locale) + ", 15:04")
}

// Countdown renders remaining session time as mm:ss.
func Countdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// dateLayout picks the numeric field order for the locale: month-first for
// US regions, day-first everywhere else.
func dateLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err == nil {
		if region, _ := tag.Region(); region.String() == "US" {
			return "1/2/2006"
		}
	}
	return "02/01/2006"
}
