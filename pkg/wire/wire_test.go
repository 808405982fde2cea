package wire

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data, err := Text(KindUserText, "打开空调").Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if f.Kind != KindUserText || f.Text != "打开空调" {
		t.Errorf("frame = %+v", f)
	}
}

func TestValidateRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name string
		f    Frame
	}{
		{"unknown kind", Frame{Kind: "telemetry", Text: "x"}},
		{"empty kind", Frame{Text: "x"}},
		{"text frame without text", Frame{Kind: KindAssistant}},
		{"state frame without payload", Frame{Kind: KindState}},
	}
	for _, tt := range tests {
		if err := tt.f.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := Decode([]byte(`{"kind":"user_text"}`)); err == nil {
		t.Fatal("expected validation error for missing text")
	}
}

func TestStateFrame(t *testing.T) {
	f, err := State(map[string]int{"temperature": 24})
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !strings.Contains(string(f.State), "temperature") {
		t.Errorf("payload = %s", f.State)
	}
}
