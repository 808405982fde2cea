// Package ui bridges the daemon to chat screens over a websocket: inbound
// frames become utterances, every dialog message and state change is fanned
// out to all connected screens.
package ui

import (
	"net/http"
	"sync"

	log "log/slog"

	ws "github.com/gorilla/websocket"

	"cabin/pkg/wire"
)

// HandleFunc runs one utterance. An error reply (assistant.ErrBusy included)
// is reported back only to the screen that sent the frame.
type HandleFunc func(text string) error

type Server struct {
	handle   HandleFunc
	upgrader ws.Upgrader

	mu    sync.Mutex
	conns map[*ws.Conn]struct{}
}

func NewServer(handle HandleFunc) *Server {
	return &Server{
		handle: handle,
		conns:  make(map[*ws.Conn]struct{}),
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	s.mu.Unlock()
	log.Info("screen connected", "remote", conn.RemoteAddr())

	go s.readLoop(conn)
}

func (s *Server) readLoop(conn *ws.Conn) {
	defer s.drop(conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !wire.IsClosed(err) {
				log.Warn("screen read failed", "err", err)
			}
			return
		}

		f, err := wire.Decode(data)
		if err != nil {
			log.Warn("bad frame from screen", "err", err)
			continue
		}

		switch f.Kind {
		case wire.KindUserText, wire.KindQuickAction:
			if err := s.handle(f.Text); err != nil {
				s.send(conn, wire.Text(wire.KindError, "正在处理上一条指令，请稍候"))
			}
		default:
			log.Warn("unexpected frame kind from screen", "kind", f.Kind)
		}
	}
}

// Broadcast sends one frame to every connected screen. Dead connections are
// dropped on the way.
func (s *Server) Broadcast(f wire.Frame) {
	data, err := f.Encode()
	if err != nil {
		log.Error("broadcast encode failed", "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		if err := conn.WriteMessage(ws.TextMessage, data); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
}

func (s *Server) send(conn *ws.Conn, f wire.Frame) {
	data, err := f.Encode()
	if err != nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := conn.WriteMessage(ws.TextMessage, data); err != nil {
		conn.Close()
		delete(s.conns, conn)
	}
}

func (s *Server) drop(conn *ws.Conn) {
	conn.Close()
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	log.Info("screen disconnected", "remote", conn.RemoteAddr())
}

// Count reports connected screens.
func (s *Server) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
