// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// Sentinel errors a caller can compare against with errors.Is. They wrap
// the error-kind taxonomy from the session's error handling design: fatal
// transport loss, per-request timeout, caller shutdown, and a failed
// protocol version negotiation.
var (
	// ErrShutdown is returned to every pending and future caller once the
	// session has been stopped, whether by the caller or by a fatal
	// transport failure.
	ErrShutdown = errors.New("session: stopped")

	// ErrTimeout is returned when a request's deadline elapses before a
	// response arrives. A notifications/cancelled message is sent for
	// the timed-out request id before this error reaches the caller.
	ErrTimeout = errors.New("session: request timed out")

	// ErrVersionMismatch is returned by Initialize when the server's
	// negotiated protocolVersion does not equal the client's.
	ErrVersionMismatch = errors.New("session: protocol version mismatch")

	// ErrCapabilityMissing names the condition of an inbound request whose
	// required capability was not declared. The session's inbound handlers
	// answer such a request with a METHOD_NOT_FOUND protocol error built
	// directly; they do not return or wrap this value.
	ErrCapabilityMissing = errors.New("session: capability not available")

	// errSessionNotStarting is returned by Initialize if the session was
	// not in StateStarting when the handshake attempt began, for example
	// because Stop had already run. Initialize starts an Idle session
	// itself, so a missing Start call does not lead here.
	errSessionNotStarting = errors.New("session: Start must be called before Initialize")

	// errUnexpectedResult guards against a resultFactories mismatch: the
	// decoder registered for "initialize" must always be *InitializeResult.
	errUnexpectedResult = errors.New("session: decoded result has unexpected type")
)

// MCPError wraps a server-returned JSON-RPC error together with any
// transport metadata that arrived on the same response, so a caller can
// inspect both the protocol-level failure and out-of-band transport
// context (e.g. HTTP headers) in one value.
type MCPError struct {
	Err      *protocol.Error
	Metadata map[string]any
}

// Error implements the error interface.
func (e *MCPError) Error() string {
	if e == nil || e.Err == nil {
		return "session: mcp error"
	}
	return e.Err.Error()
}

// Unwrap lets errors.Is/errors.As see through to the wrapped protocol.Error.
func (e *MCPError) Unwrap() error { return e.Err }

// timeoutError wraps ErrTimeout with the request method for a more useful
// message while still satisfying errors.Is(err, ErrTimeout).
type timeoutError struct {
	method string
}

func (e *timeoutError) Error() string {
	return fmt.Sprintf("session: %s timed out", e.method)
}

func (e *timeoutError) Unwrap() error { return ErrTimeout }

// shutdownError wraps ErrShutdown with the reason the session stopped.
type shutdownError struct {
	reason string
}

func (e *shutdownError) Error() string {
	if e.reason == "" {
		return ErrShutdown.Error()
	}
	return fmt.Sprintf("session: stopped: %s", e.reason)
}

func (e *shutdownError) Unwrap() error { return ErrShutdown }

// versionMismatchError wraps ErrVersionMismatch with the two versions
// that failed to agree.
type versionMismatchError struct {
	want, got string
}

func (e *versionMismatchError) Error() string {
	return fmt.Sprintf("session: server protocol version %q does not match client %q", e.got, e.want)
}

func (e *versionMismatchError) Unwrap() error { return ErrVersionMismatch }
