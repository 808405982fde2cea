// Package wire defines the JSON frames exchanged between the daemon and chat
// clients over a websocket, plus a reconnecting client for them.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	// client → daemon
	KindUserText    Kind = "user_text"
	KindQuickAction Kind = "quick_action"

	// daemon → clients
	KindUser      Kind = "user"      // user message echoed to every screen
	KindAssistant Kind = "assistant" // spoken reply
	KindState     Kind = "state"     // vehicle snapshot after a command
	KindError     Kind = "error"     // transient error notice
)

type Frame struct {
	Kind  Kind            `json:"kind"`
	Text  string          `json:"text,omitempty"`
	State json.RawMessage `json:"state,omitempty"`
	At    time.Time       `json:"at,omitempty"`
}

var kinds = map[Kind]bool{
	KindUserText:    true,
	KindQuickAction: true,
	KindUser:        true,
	KindAssistant:   true,
	KindState:       true,
	KindError:       true,
}

func (f Frame) Validate() error {
	if !kinds[f.Kind] {
		return fmt.Errorf("unknown frame kind %q", f.Kind)
	}
	switch f.Kind {
	case KindUserText, KindQuickAction, KindUser, KindAssistant, KindError:
		if f.Text == "" {
			return fmt.Errorf("%s frame needs text", f.Kind)
		}
	case KindState:
		if len(f.State) == 0 {
			return errors.New("state frame needs a payload")
		}
	}
	return nil
}

func (f Frame) Encode() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(f)
}

func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("decode frame: %w", err)
	}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Text builds a text-bearing frame stamped now.
func Text(kind Kind, text string) Frame {
	return Frame{Kind: kind, Text: text, At: time.Now()}
}

// State builds a state frame from any JSON-marshalable snapshot.
func State(snapshot any) (Frame, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return Frame{}, fmt.Errorf("marshal state: %w", err)
	}
	return Frame{Kind: KindState, State: raw, At: time.Now()}, nil
}
