package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WSChannel invokes bridge methods over a persistent WebSocket connection to
// the native side. Calls are serialized on the connection: one envelope out,
// one reply back.
type WSChannel struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// DialWS connects to a WebSocket bridge host.
func DialWS(ctx context.Context, url string) (*WSChannel, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial bridge host: %w", err)
	}
	slog.Debug("bridge connection established", "url", url)
	return &WSChannel{conn: conn}, nil
}

// Invoke sends one method invocation and waits for its reply.
func (c *WSChannel) Invoke(ctx context.Context, channel, method string, args map[string]any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(60 * time.Second)
	}

	call := callEnvelope{
		ID:        uuid.NewString(),
		Channel:   channel,
		Method:    method,
		Arguments: args,
	}

	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteJSON(&call); err != nil {
		return nil, fmt.Errorf("failed to send invocation: %w", err)
	}

	_ = c.conn.SetReadDeadline(deadline)
	var reply replyEnvelope
	if err := c.conn.ReadJSON(&reply); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			slog.Error("bridge connection error", "error", err)
		}
		return nil, fmt.Errorf("failed to read reply: %w", err)
	}
	if reply.ID != "" && reply.ID != call.ID {
		return nil, fmt.Errorf("reply id mismatch: sent %s, got %s", call.ID, reply.ID)
	}

	return reply.unwrap()
}

// Close shuts the underlying connection down.
func (c *WSChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.conn.Close()
}
