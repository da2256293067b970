// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocketTransport frames JSON-RPC messages as individual WebSocket
// text frames, one message per frame, suitable for connecting to a
// server exposed over HTTP rather than a spawned subprocess's stdio.
type WebSocketTransport struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	msgs    chan TransportMessage
	readErr chan error

	closeOnce sync.Once
	closed    chan struct{}
}

// DialWebSocket connects to a server's WebSocket endpoint and returns a
// ready-to-use transport.
func DialWebSocket(ctx context.Context, url string) (*WebSocketTransport, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("transport: websocket dial: %w", err)
	}
	return NewWebSocketTransport(conn), nil
}

// NewWebSocketTransport wraps an already-established *websocket.Conn,
// such as one accepted by an HTTP server's upgrade handler.
func NewWebSocketTransport(conn *websocket.Conn) *WebSocketTransport {
	t := &WebSocketTransport{
		conn:    conn,
		msgs:    make(chan TransportMessage, 64),
		readErr: make(chan error, 1),
		closed:  make(chan struct{}),
	}
	go t.readLoop()
	return t
}

func (t *WebSocketTransport) readLoop() {
	for {
		_, data, err := t.conn.ReadMessage()
		if err != nil {
			select {
			case t.readErr <- err:
			default:
			}
			close(t.msgs)
			return
		}
		select {
		case t.msgs <- data:
		case <-t.closed:
			close(t.msgs)
			return
		}
	}
}

// Send implements Transport.
func (t *WebSocketTransport) Send(ctx context.Context, msg TransportMessage) error {
	select {
	case <-t.closed:
		return ErrClosed
	default:
	}

	done := make(chan error, 1)
	go func() {
		t.writeMu.Lock()
		defer t.writeMu.Unlock()
		done <- t.conn.WriteMessage(websocket.TextMessage, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("transport: websocket write: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.closed:
		return ErrClosed
	}
}

// Receive implements Transport.
func (t *WebSocketTransport) Receive(ctx context.Context) (TransportMessage, error) {
	select {
	case msg, ok := <-t.msgs:
		if !ok {
			select {
			case err := <-t.readErr:
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return nil, ErrClosed
				}
				return nil, fmt.Errorf("transport: websocket read: %w", err)
			default:
				return nil, ErrClosed
			}
		}
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.closed:
		return nil, ErrClosed
	}
}

// Close implements Transport.
func (t *WebSocketTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		err = t.conn.Close()
	})
	return err
}
