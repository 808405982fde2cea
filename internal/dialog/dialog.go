// Package dialog keeps the chat transcript between the user and the
// assistant. The log is append-only; the only removal is a full clear.
package dialog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID   string    `json:"id"`
	Role Role      `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

type Log struct {
	mu   sync.RWMutex
	msgs []Message
}

func NewLog() *Log { return &Log{} }

func (l *Log) Append(role Role, text string) Message {
	msg := Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
		At:   time.Now(),
	}

	l.mu.Lock()
	l.msgs = append(l.msgs, msg)
	l.mu.Unlock()

	return msg
}

// Messages returns a snapshot copy in append order.
func (l *Log) Messages() []Message {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Message, len(l.msgs))
	copy(out, l.msgs)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.msgs)
}

func (l *Log) Clear() {
	l.mu.Lock()
	l.msgs = nil
	l.mu.Unlock()
}
