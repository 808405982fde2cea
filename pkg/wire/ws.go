package wire

import (
	log "log/slog"
	"time"

	ws "github.com/gorilla/websocket"
)

// Client is a dialing websocket peer that survives daemon restarts by
// reconnecting with a fixed backoff.
type Client struct {
	conn   *ws.Conn
	url    string
	reconn time.Duration
}

func Dial(url string, reconn time.Duration) (*Client, error) {
	log.Debug("dialing daemon", "url", url)

	if reconn <= 0 {
		reconn = 2 * time.Second
	}
	c := &Client{url: url, reconn: reconn}

	conn, _, err := ws.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

func (c *Client) Send(f Frame) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	return c.conn.WriteMessage(ws.TextMessage, data)
}

type IncomeKind uint

const (
	ConnClose IncomeKind = iota
	ReadFailure
	ReadOK
)

type Income struct {
	Kind  IncomeKind
	Frame Frame
	Err   error
}

func (c *Client) Read() Income {
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		if IsClosed(err) {
			return Income{Kind: ConnClose, Err: err}
		}
		return Income{Kind: ReadFailure, Err: err}
	}

	f, err := Decode(msg)
	if err != nil {
		return Income{Kind: ReadFailure, Err: err}
	}
	return Income{Kind: ReadOK, Frame: f}
}

// TryReconn redials until the daemon answers again.
func (c *Client) TryReconn() {
	for {
		conn, _, err := ws.DefaultDialer.Dial(c.url, nil)
		if err == nil {
			c.conn = conn
			return
		}
		time.Sleep(c.reconn)
	}
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func IsClosed(err error) bool {
	return ws.IsCloseError(err,
		ws.CloseNormalClosure,
		ws.CloseGoingAway,
		ws.CloseAbnormalClosure)
}
