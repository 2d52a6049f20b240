package session

import (
	"testing"
	"time"
)

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := newCodec("store-secret")
	if err != nil {
		t.Fatalf("newCodec error: %v", err)
	}

	s := Session{
		ID:        "sid-1",
		Email:     "ann@x.com",
		Name:      "Ann",
		Role:      "admin",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Second),
	}

	sealed, err := c.seal(s)
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	got, err := c.open(sealed)
	if err != nil {
		t.Fatalf("open error: %v", err)
	}
	if got.Email != s.Email || got.Name != s.Name || got.Role != s.Role {
		t.Fatalf("payload mismatch: %+v", got)
	}
	if !got.ExpiresAt.Equal(s.ExpiresAt) {
		t.Fatalf("expiry mismatch: got %v want %v", got.ExpiresAt, s.ExpiresAt)
	}
}

func TestCodecRejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	c, err := newCodec("store-secret")
	if err != nil {
		t.Fatalf("newCodec error: %v", err)
	}

	sealed, err := c.seal(Session{ID: "sid-1", Email: "ann@x.com"})
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	sealed[len(sealed)-1] ^= 0xff
	if _, err := c.open(sealed); err == nil {
		t.Fatal("expected tampered ciphertext to fail")
	}
}

func TestCodecRejectsWrongKey(t *testing.T) {
	t.Parallel()

	sealer, err := newCodec("one-secret")
	if err != nil {
		t.Fatalf("newCodec error: %v", err)
	}
	opener, err := newCodec("another-secret")
	if err != nil {
		t.Fatalf("newCodec error: %v", err)
	}

	sealed, err := sealer.seal(Session{ID: "sid-1", Email: "ann@x.com"})
	if err != nil {
		t.Fatalf("seal error: %v", err)
	}

	if _, err := opener.open(sealed); err == nil {
		t.Fatal("expected wrong key to fail")
	}
}

func TestCodecRejectsShortPayload(t *testing.T) {
	t.Parallel()

	c, err := newCodec("store-secret")
	if err != nil {
		t.Fatalf("newCodec error: %v", err)
	}

	if _, err := c.open([]byte("short")); err == nil {
		t.Fatal("expected short payload to fail")
	}
}

func TestNewCodecEmptySecret(t *testing.T) {
	t.Parallel()

	if _, err := newCodec(""); err == nil {
		t.Fatal("expected empty secret to be rejected")
	}
}
