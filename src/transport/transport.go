// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package transport defines the duplex byte-stream contract a client
// session runs on, plus the stdio, in-memory, and WebSocket
// implementations this repository ships. A Transport only moves
// complete JSON-RPC messages; framing (line-delimited stdio, WebSocket
// text frames, channel sends) is the transport's concern, not the
// session's.
package transport

import (
	"context"
	"errors"
)

// TransportMessage is one complete, framed JSON-RPC message: either a
// single envelope or a batch array, still encoded as raw JSON bytes. The
// session decodes it with protocol.DecodeBatch.
type TransportMessage = []byte

// ErrClosed is returned by Send or Receive once the transport has been
// closed, either locally via Close or because the peer ended the stream.
var ErrClosed = errors.New("transport: closed")

// Transport is the duplex channel a session sends and receives JSON-RPC
// messages over. Implementations must make Send safe for concurrent use:
// the session sends requests, responses and notifications from several
// goroutines at once. Receive is only called from the session's single
// receive loop, concurrently with Send but never with itself.
//
// A transport may return a JSON-RPC batch frame from Receive as-is; the
// session decodes every frame with protocol.DecodeBatch and routes the
// elements one at a time.
type Transport interface {
	// Send writes one complete message. It blocks until the message is
	// handed off to the underlying stream or ctx is done.
	Send(ctx context.Context, msg TransportMessage) error

	// Receive blocks until one complete message arrives, ctx is done, or
	// the transport is closed (returning ErrClosed).
	Receive(ctx context.Context) (TransportMessage, error)

	// Close releases the transport's resources. It is safe to call Close
	// more than once and concurrently with Send/Receive; a blocked
	// Receive must unblock with ErrClosed.
	Close() error
}
