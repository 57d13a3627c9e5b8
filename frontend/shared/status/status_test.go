package status

import (
	"net/url"
	"testing"
)

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []Status{
		OK("Die Bestellung wurde gespeichert!"),
		Invalid("Bitte gib den Vornamen ein!"),
		Failed("Beim Abschicken ist ein Fehler aufgetreten!"),
	} {
		q, err := url.ParseQuery(s.Query())
		if err != nil {
			t.Fatalf("parse query %q: %v", s.Query(), err)
		}
		got := FromQuery(q)
		if got != s {
			t.Fatalf("round trip lost status: %+v != %+v", got, s)
		}
	}
}

func TestFromQuery_Empty(t *testing.T) {
	t.Parallel()

	got := FromQuery(url.Values{})
	if got.Kind != Idle || got.Message != "" {
		t.Fatalf("expected idle status, got %+v", got)
	}
}

func TestQuery_TransientKindsAreNotEncoded(t *testing.T) {
	t.Parallel()

	if q := (Status{Kind: InProgress}).Query(); q != "" {
		t.Fatalf("in-progress status must not survive a redirect, got %q", q)
	}
	if q := (Status{Kind: Idle}).Query(); q != "" {
		t.Fatalf("idle status must encode to nothing, got %q", q)
	}
}
