package stt

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestSignURLIsDeterministic(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	a, err := signURL("wss://speech.example.com/v2/iat", "key", "secret", at)
	if err != nil {
		t.Fatalf("signURL: %v", err)
	}
	b, _ := signURL("wss://speech.example.com/v2/iat", "key", "secret", at)
	if a != b {
		t.Error("same inputs must sign identically")
	}

	u, err := url.Parse(a)
	if err != nil {
		t.Fatalf("parse signed url: %v", err)
	}
	q := u.Query()
	if q.Get("host") != "speech.example.com" {
		t.Errorf("host param = %q", q.Get("host"))
	}
	if q.Get("date") != "Fri, 28 Aug 2026 10:00:00 GMT" {
		t.Errorf("date param = %q", q.Get("date"))
	}

	raw, err := base64.StdEncoding.DecodeString(q.Get("authorization"))
	if err != nil {
		t.Fatalf("authorization is not base64: %v", err)
	}
	auth := string(raw)
	for _, want := range []string{`api_key="key"`, `algorithm="hmac-sha256"`, `signature="`} {
		if !strings.Contains(auth, want) {
			t.Errorf("authorization %q missing %q", auth, want)
		}
	}
}

func TestSignURLSecretChangesSignature(t *testing.T) {
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	a, _ := signURL("wss://speech.example.com/v2/iat", "key", "secret-one", at)
	b, _ := signURL("wss://speech.example.com/v2/iat", "key", "secret-two", at)
	if a == b {
		t.Error("different secrets must not produce the same signature")
	}
}

func TestNewVendorValidatesCredentials(t *testing.T) {
	_, err := NewVendor(VendorConfig{URL: "wss://speech.example.com/v2/iat"})
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestPCMToBytes(t *testing.T) {
	out := pcmToBytes([]float32{0, 1, -1, 2})
	if len(out) != 8 {
		t.Fatalf("len = %d", len(out))
	}
	if out[0] != 0 || out[1] != 0 {
		t.Error("zero sample should encode as zero")
	}
	// Out-of-range samples clip instead of wrapping.
	if int16(uint16(out[6])|uint16(out[7])<<8) != 32767 {
		t.Error("overrange sample should clip to max")
	}
}
