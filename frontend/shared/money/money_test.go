package money

import (
	"errors"
	"testing"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want int64
	}{
		{"12.50", 1250},
		{"12.5", 1250},
		{"12", 1200},
		{"0.05", 5},
		{".5", 50},
		{" 3.10 ", 310},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := ParsePrice(c.in)
		if err != nil {
			t.Fatalf("ParsePrice(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "abc", "-1", "1,50", "12.345", "1.2.3", "12."} {
		if _, err := ParsePrice(in); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("ParsePrice(%q) expected ErrInvalidPrice, got %v", in, err)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int64
		want string
	}{
		{1250, "12.50"},
		{5, "0.05"},
		{0, "0.00"},
		{-1250, "-12.50"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.in); got != c.want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	for _, cents := range []int64{0, 1, 99, 100, 1250, 999999} {
		parsed, err := ParsePrice(FormatPrice(cents))
		if err != nil {
			t.Fatalf("round trip of %d failed: %v", cents, err)
		}
		if parsed != cents {
			t.Fatalf("round trip of %d yielded %d", cents, parsed)
		}
	}
}
