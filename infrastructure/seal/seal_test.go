package seal

import (
	"encoding/hex"
	"strings"
	"testing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	t.Parallel()

	key := hex.EncodeToString([]byte(strings.Repeat("k", 32)))
	sealer, err := New(key)
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}

	blob, err := sealer.Seal("YWRtaW46c2VjcmV0")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if strings.Contains(string(blob), "YWRtaW46c2VjcmV0") {
		t.Fatalf("sealed blob contains plaintext")
	}

	plaintext, err := sealer.Open(blob)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if plaintext != "YWRtaW46c2VjcmV0" {
		t.Fatalf("unexpected plaintext %q", plaintext)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	t.Parallel()

	sealerA, err := New(hex.EncodeToString([]byte(strings.Repeat("a", 32))))
	if err != nil {
		t.Fatalf("new sealer a: %v", err)
	}
	sealerB, err := New(hex.EncodeToString([]byte(strings.Repeat("b", 32))))
	if err != nil {
		t.Fatalf("new sealer b: %v", err)
	}

	blob, err := sealerA.Seal("credential")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if _, err := sealerB.Open(blob); err == nil {
		t.Fatalf("expected open with wrong key to fail")
	}
}

func TestNew_RejectsBadKeys(t *testing.T) {
	t.Parallel()

	if _, err := New("zz"); err == nil {
		t.Fatalf("expected error for non-hex key")
	}
	if _, err := New(hex.EncodeToString([]byte("short"))); err == nil {
		t.Fatalf("expected error for short key")
	}
}

func TestNew_EmptyKeyIsEphemeral(t *testing.T) {
	t.Parallel()

	sealer, err := New("")
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	blob, err := sealer.Seal("credential")
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	plaintext, err := sealer.Open(blob)
	if err != nil || plaintext != "credential" {
		t.Fatalf("round trip with ephemeral key failed: %q %v", plaintext, err)
	}
}
