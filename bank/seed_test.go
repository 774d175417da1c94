package bank

import (
	"errors"
	"testing"
)

func TestFromSeedEmbeddedDefault(t *testing.T) {
	b, err := FromSeed(nil)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	if got := b.Size(); got != 2 {
		t.Fatalf("size=%d want 2", got)
	}

	js, err := b.Authenticate("js", "1111")
	if err != nil {
		t.Fatalf("Authenticate js: %v", err)
	}
	if js.Owner != "Jonas Schmedtmann" || js.Currency != "EUR" || js.Locale != "pt-PT" {
		t.Fatalf("unexpected js account: %+v", js)
	}
	if len(js.Movements) != 8 {
		t.Fatalf("js movements=%d want 8", len(js.Movements))
	}
	if got := js.Balance(); !got.Equal(dec("3840")) {
		t.Fatalf("js balance=%s want 3840", got)
	}

	jd, err := b.Authenticate("jd", "2222")
	if err != nil {
		t.Fatalf("Authenticate jd: %v", err)
	}
	if jd.Currency != "USD" || !jd.InterestRate.Equal(dec("1.5")) {
		t.Fatalf("unexpected jd account: %+v", jd)
	}
}

func TestFromSeedCustomDocument(t *testing.T) {
	doc := []byte(`[
		{
			"owner": "Sarah Smith",
			"pin": "3333",
			"interest_rate": 0.7,
			"currency": "GBP",
			"locale": "en-GB",
			"movements": [{"amount": 430, "date": "2024-01-02T10:00:00Z"}]
		}
	]`)
	b, err := FromSeed(doc)
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	a, err := b.Get("ss")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !a.Balance().Equal(dec("430")) {
		t.Fatalf("balance=%s want 430", a.Balance())
	}
}

func TestFromSeedRejectsBadJSON(t *testing.T) {
	if _, err := FromSeed([]byte("{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromSeedRejectsDuplicateInitials(t *testing.T) {
	doc := []byte(`[
		{"owner": "Sarah Smith", "pin": "1111", "interest_rate": 1, "currency": "EUR", "locale": "pt-PT"},
		{"owner": "Simon Stone", "pin": "2222", "interest_rate": 1, "currency": "EUR", "locale": "pt-PT"}
	]`)
	if _, err := FromSeed(doc); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}
}
