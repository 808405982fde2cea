package stt

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	ws "github.com/gorilla/websocket"
	xproxy "golang.org/x/net/proxy"
)

// VendorConfig carries the opaque cloud credentials. The handshake is the
// vendor's HMAC-signed websocket scheme; we never interpret the strings.
type VendorConfig struct {
	URL       string
	AppID     string
	APIKey    string
	APISecret string
	Language  string
	Proxy     string // optional SOCKS5 address for locked-down networks
}

// VendorEngine streams PCM to the cloud recognizer over a websocket and
// collects partial results until the final frame.
type VendorEngine struct {
	cfg    VendorConfig
	dialer *ws.Dialer
}

const vendorChunk = 1280 // 40ms of 16 kHz 16-bit mono

func NewVendor(cfg VendorConfig) (*VendorEngine, error) {
	if cfg.URL == "" || cfg.AppID == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("vendor credentials incomplete")
	}
	if cfg.Language == "" {
		cfg.Language = "zh_cn"
	}

	dialer := &ws.Dialer{HandshakeTimeout: 10 * time.Second}
	if cfg.Proxy != "" {
		socks, err := xproxy.SOCKS5("tcp", cfg.Proxy, nil, xproxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("socks proxy: %w", err)
		}
		dialer.NetDial = func(network, addr string) (net.Conn, error) {
			return socks.Dial(network, addr)
		}
	}

	return &VendorEngine{cfg: cfg, dialer: dialer}, nil
}

func (v *VendorEngine) Close() error { return nil }

type vendorRequest struct {
	Common *struct {
		AppID string `json:"app_id"`
	} `json:"common,omitempty"`
	Business *struct {
		Language string `json:"language"`
	} `json:"business,omitempty"`
	Data struct {
		Status   int    `json:"status"` // 0 first, 1 middle, 2 last
		Format   string `json:"format"`
		Encoding string `json:"encoding"`
		Audio    string `json:"audio"`
	} `json:"data"`
}

type vendorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int `json:"status"`
		Result struct {
			Ws []struct {
				Cw []struct {
					W string `json:"w"`
				} `json:"cw"`
			} `json:"ws"`
		} `json:"result"`
	} `json:"data"`
}

func (v *VendorEngine) Transcribe(ctx context.Context, pcm16k []float32) (Result, error) {
	if len(pcm16k) == 0 {
		return Result{}, errors.New("no audio samples provided")
	}

	signed, err := signURL(v.cfg.URL, v.cfg.APIKey, v.cfg.APISecret, time.Now())
	if err != nil {
		return Result{}, err
	}

	conn, _, err := v.dialer.DialContext(ctx, signed, nil)
	if err != nil {
		return Result{}, fmt.Errorf("dial vendor: %w", err)
	}
	defer conn.Close()

	if err := v.sendAudio(conn, pcmToBytes(pcm16k)); err != nil {
		return Result{}, err
	}

	var text strings.Builder
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			return Result{}, fmt.Errorf("read vendor: %w", err)
		}

		var resp vendorResponse
		if err := json.Unmarshal(data, &resp); err != nil {
			return Result{}, fmt.Errorf("decode vendor frame: %w", err)
		}
		if resp.Code != 0 {
			return Result{}, fmt.Errorf("vendor error %d: %s", resp.Code, resp.Message)
		}

		for _, w := range resp.Data.Result.Ws {
			for _, cw := range w.Cw {
				text.WriteString(cw.W)
			}
		}
		if resp.Data.Status == 2 {
			break
		}
	}

	return Result{Text: text.String(), Language: v.cfg.Language}, nil
}

func (v *VendorEngine) sendAudio(conn *ws.Conn, audio []byte) error {
	status := 0
	for off := 0; off < len(audio) || status == 0; off += vendorChunk {
		end := off + vendorChunk
		if end > len(audio) {
			end = len(audio)
		}

		var req vendorRequest
		if status == 0 {
			req.Common = &struct {
				AppID string `json:"app_id"`
			}{AppID: v.cfg.AppID}
			req.Business = &struct {
				Language string `json:"language"`
			}{Language: v.cfg.Language}
		}
		req.Data.Status = status
		if end >= len(audio) {
			req.Data.Status = 2
		}
		req.Data.Format = "audio/L16;rate=16000"
		req.Data.Encoding = "raw"
		req.Data.Audio = base64.StdEncoding.EncodeToString(audio[off:end])

		if err := conn.WriteJSON(req); err != nil {
			return fmt.Errorf("send audio: %w", err)
		}
		if req.Data.Status == 2 {
			break
		}
		status = 1
	}
	return nil
}

// signURL appends the vendor's authorization query: an HMAC-SHA256 over
// "host date request-line", keyed by the API secret.
func signURL(rawURL, apiKey, apiSecret string, at time.Time) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse vendor url: %w", err)
	}

	date := at.UTC().Format(http.TimeFormat)
	base := fmt.Sprintf("host: %s\ndate: %s\nGET %s HTTP/1.1", u.Host, date, u.Path)

	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(base))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	origin := fmt.Sprintf(
		`api_key="%s", algorithm="hmac-sha256", headers="host date request-line", signature="%s"`,
		apiKey, signature)

	q := url.Values{}
	q.Set("authorization", base64.StdEncoding.EncodeToString([]byte(origin)))
	q.Set("date", date)
	q.Set("host", u.Host)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func pcmToBytes(pcm []float32) []byte {
	out := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(s*32767)))
	}
	return out
}
