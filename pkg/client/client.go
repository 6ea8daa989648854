// Package client talks to the clockalert command API and event stream.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"clockalert/internal/models"
	"clockalert/pkg/protocol"

	"github.com/gorilla/websocket"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Dialer  *websocket.Dialer
}

// New creates a client for the daemon at baseURL, e.g. http://127.0.0.1:8080.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Dialer:  websocket.DefaultDialer,
	}
}

func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/v1/ping", nil, nil)
}

// Add asks the daemon to store an alarm. The daemon reports success even if
// the store rejected it; List to confirm.
func (c *Client) Add(ctx context.Context, alarmTime string) error {
	return c.do(ctx, http.MethodPost, "/v1/alarms", map[string]string{"time": alarmTime}, nil)
}

func (c *Client) Remove(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/v1/alarms/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *Client) List(ctx context.Context) ([]models.Alarm, error) {
	var out struct {
		Alarms []models.Alarm `json:"alarms"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/alarms", nil, &out); err != nil {
		return nil, err
	}
	return out.Alarms, nil
}

// Watch subscribes to the event stream and delivers triggered alarm ids. The
// channel is closed when ctx ends or the connection drops.
func (c *Client) Watch(ctx context.Context) (<-chan int64, error) {
	url := "ws" + strings.TrimPrefix(c.BaseURL, "http") + "/v1/events"
	conn, _, err := c.Dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("client: dial events: %w", err)
	}

	out := make(chan int64)
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(out)
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			msg, err := protocol.Decode(bytes.TrimSpace(data))
			if err != nil || msg.Event != protocol.EventAlarmTriggered {
				continue
			}
			id, err := msg.AlarmID()
			if err != nil {
				continue
			}
			select {
			case out <- id:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("client: %s %s: %s: %s", method, path, resp.Status, e.Error)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
