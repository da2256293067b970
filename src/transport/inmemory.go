// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"context"
	"sync"
)

// InMemoryTransport is a channel-backed Transport with no underlying
// process or socket, used to connect a session to an in-process peer
// (typically a test double, or a server embedded in the same binary).
type InMemoryTransport struct {
	recv chan TransportMessage
	send chan TransportMessage

	closeOnce sync.Once
	closed    chan struct{}
}

// NewInMemoryPair returns two InMemoryTransport values wired so that
// everything sent on one arrives on the other's Receive, mirroring the
// channel-pump pattern used to bridge an in-process client and server.
func NewInMemoryPair() (a, b *InMemoryTransport) {
	ab := make(chan TransportMessage, 64)
	ba := make(chan TransportMessage, 64)
	a = &InMemoryTransport{recv: ba, send: ab, closed: make(chan struct{})}
	b = &InMemoryTransport{recv: ab, send: ba, closed: make(chan struct{})}
	return a, b
}

// Send implements Transport.
func (t *InMemoryTransport) Send(ctx context.Context, msg TransportMessage) error {
	select {
	case <-t.closed:
		return ErrClosed
	default:
	}
	select {
	case t.send <- msg:
		return nil
	case <-t.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Receive implements Transport.
func (t *InMemoryTransport) Receive(ctx context.Context) (TransportMessage, error) {
	select {
	case msg := <-t.recv:
		return msg, nil
	case <-t.closed:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close implements Transport. It does not close the underlying channels,
// since the peer transport may still be draining them; it only unblocks
// this side's Send/Receive.
func (t *InMemoryTransport) Close() error {
	t.closeOnce.Do(func() { close(t.closed) })
	return nil
}
