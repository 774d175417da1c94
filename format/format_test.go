package format

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var now = time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

func TestMovementDateRelative(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), "Today"},
		{"one day back", now.AddDate(0, 0, -1), "Yesterday"},
		{"three days back", now.AddDate(0, 0, -3), "3 days ago"},
		{"a week back", now.AddDate(0, 0, -7), "7 days ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MovementDate(tc.date, now, "pt-PT"); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestMovementDateAbsoluteLocaleOrder(t *testing.T) {
	date := time.Date(2020, 1, 28, 9, 15, 0, 0, time.UTC)

	if got := MovementDate(date, now, "pt-PT"); got != "28/01/2020" {
		t.Fatalf("pt-PT: got %q", got)
	}
	if got := MovementDate(date, now, "en-US"); got != "1/28/2020" {
		t.Fatalf("en-US: got %q", got)
	}
	// Unparseable locales fall back to day-first.
	if got := MovementDate(date, now, "???"); got != "28/01/2020" {
		t.Fatalf("fallback: got %q", got)
	}
}

func TestHeaderDateIncludesTime(t *testing.T) {
	at := time.Date(2024, 7, 10, 9, 5, 0, 0, time.UTC)
	if got := HeaderDate(at, "en-US"); got != "7/10/2024, 09:05" {
		t.Fatalf("got %q", got)
	}
}

func TestMoneyProducesLocalizedAmount(t *testing.T) {
	v := decimal.RequireFromString("1234.5")

	got := Money(v, "en-US", "USD")
	if !strings.Contains(got, "1,234.5") {
		t.Fatalf("en-US/USD: got %q, want grouped amount", got)
	}
	if !strings.Contains(got, "$") {
		t.Fatalf("en-US/USD: got %q, want dollar symbol", got)
	}

	// Bad inputs fall back instead of failing.
	if got := Money(v, "???", "???"); got == "" {
		t.Fatal("fallback produced empty string")
	}
}

func TestCountdown(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{120 * time.Second, "02:00"},
		{119 * time.Second, "01:59"},
		{61 * time.Second, "01:01"},
		{0, "00:00"},
		{-5 * time.Second, "00:00"},
	}
	for _, tc := range cases {
		if got := Countdown(tc.d); got != tc.want {
			t.Errorf("Countdown(%v)=%q want %q", tc.d, got, tc.want)
		}
	}
}
