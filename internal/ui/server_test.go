package ui

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/gorilla/websocket"

	"cabin/pkg/wire"
)

func dialTest(t *testing.T, s *Server) *ws.Conn {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *ws.Conn) wire.Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	f, err := wire.Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return f
}

func TestInboundTextReachesHandler(t *testing.T) {
	got := make(chan string, 1)
	s := NewServer(func(text string) error {
		got <- text
		return nil
	})
	conn := dialTest(t, s)

	data, _ := wire.Text(wire.KindUserText, "打开空调").Encode()
	if err := conn.WriteMessage(ws.TextMessage, data); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case text := <-got:
		if text != "打开空调" {
			t.Errorf("handler got %q", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never called")
	}
}

func TestQuickActionReachesHandler(t *testing.T) {
	got := make(chan string, 1)
	s := NewServer(func(text string) error {
		got <- text
		return nil
	})
	conn := dialTest(t, s)

	data, _ := wire.Text(wire.KindQuickAction, "播放音乐").Encode()
	conn.WriteMessage(ws.TextMessage, data)

	select {
	case text := <-got:
		if text != "播放音乐" {
			t.Errorf("handler got %q", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("handler never called")
	}
}

func TestBusyReportedToSender(t *testing.T) {
	s := NewServer(func(string) error { return errors.New("busy") })
	conn := dialTest(t, s)

	data, _ := wire.Text(wire.KindUserText, "打开空调").Encode()
	conn.WriteMessage(ws.TextMessage, data)

	f := readFrame(t, conn)
	if f.Kind != wire.KindError {
		t.Errorf("frame kind = %s, want error", f.Kind)
	}
}

func TestBroadcast(t *testing.T) {
	s := NewServer(func(string) error { return nil })
	a := dialTest(t, s)
	b := dialTest(t, s)

	deadline := time.Now().Add(2 * time.Second)
	for s.Count() < 2 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	s.Broadcast(wire.Text(wire.KindAssistant, "空调已打开"))
	for _, conn := range []*ws.Conn{a, b} {
		f := readFrame(t, conn)
		if f.Kind != wire.KindAssistant || f.Text != "空调已打开" {
			t.Errorf("frame = %+v", f)
		}
	}
}
