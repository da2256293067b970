// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"errors"
	"time"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// SendRequest sends req and blocks for its response, decoding the result
// into the concrete type protocol.NewResultDecoder associates with the
// request's method. timeout of 0 uses the session's configured default
// (30s unless overridden with WithRequestTimeout).
//
// A session that has not completed its handshake yet is brought to
// StateReady first: SendRequest calls Start (if it has not run) and
// awaits Initialize with default parameters before sending req, per the
// requirement that non-handshake traffic never races the handshake.
//
// Whenever the wait ends without a response — caller cancellation or
// timeout — a notifications/cancelled message naming req's id is sent to
// the server before the error is returned, per the cancellation contract.
func (s *Session) SendRequest(ctx context.Context, req protocol.Request, timeout time.Duration) (protocol.ResultDecoder, map[string]any, error) {
	if err := s.ensureReady(ctx); err != nil {
		return nil, nil, err
	}
	return s.doRequest(ctx, req, timeout, reasonRequestTimedOut)
}

// ensureReady brings the session to StateReady, starting the receive loop
// and running the handshake with default parameters if neither has
// happened yet. Concurrent callers all join the single Initialize
// attempt via initOnce.
func (s *Session) ensureReady(ctx context.Context) error {
	switch s.State() {
	case StateReady:
		return nil
	case StateStopped:
		return &shutdownError{reason: "session stopped"}
	case StateIdle:
		s.Start()
	}
	_, err := s.Initialize(ctx, 0)
	return err
}

// reasonRequestTimedOut and reasonInitTimedOut are the literal
// notifications/cancelled reason strings §4.6 and the seed scenario in
// §8 require for a timed-out ordinary request versus a timed-out
// initialize attempt. reasonCallerCancelled covers the other way
// callCtx can end early: the caller's own context, not a deadline.
const (
	reasonRequestTimedOut = "Request timed out"
	reasonInitTimedOut    = "Initialization timed out"
	reasonCallerCancelled = "Request cancelled by caller"
)

// doRequest sends req and blocks for its completion. timeoutReason is
// the notifications/cancelled reason text used whenever callCtx ends with
// context.DeadlineExceeded, whether from timeout or from a deadline already
// on ctx — it lets callers distinguish an ordinary request timeout from an
// initialize handshake timeout without duplicating the send/select plumbing.
func (s *Session) doRequest(ctx context.Context, req protocol.Request, timeout time.Duration, timeoutReason string) (protocol.ResultDecoder, map[string]any, error) {
	if timeout <= 0 {
		timeout = s.cfg.requestTimeout
	}

	spanCtx, span := s.startSpan(ctx, req.Method())
	defer func() { endSpan(span, nil) }()

	callCtx, cancel := context.WithTimeout(spanCtx, timeout)
	defer cancel()

	id := s.correlator.NextID()
	ch, err := s.sendRequestEnvelope(callCtx, id, req)
	if err != nil {
		return nil, nil, err
	}

	select {
	case c := <-ch:
		return s.finishRequest(req.Method(), c)

	case <-s.stopped:
		s.correlator.Forget(id)
		return nil, nil, &shutdownError{reason: "session stopped"}

	case <-callCtx.Done():
		stillPending := s.correlator.Forget(id)
		timedOut := errors.Is(callCtx.Err(), context.DeadlineExceeded)
		if stillPending {
			if timedOut {
				s.emitCancelled(id, timeoutReason)
			} else {
				s.emitCancelled(id, reasonCallerCancelled)
			}
		}
		if timedOut {
			return nil, nil, &timeoutError{method: req.Method()}
		}
		return nil, nil, callCtx.Err()
	}
}

func (s *Session) finishRequest(method string, c completion) (protocol.ResultDecoder, map[string]any, error) {
	if c.localErr != nil {
		return nil, c.meta, c.localErr
	}
	if c.mcpErr != nil {
		return nil, c.meta, &MCPError{Err: c.mcpErr, Metadata: c.meta}
	}

	decoder, ok := protocol.NewResultDecoder(method)
	if !ok {
		return nil, c.meta, errors.New("session: no result type registered for method " + method)
	}
	if len(c.result) > 0 {
		if err := decoder.UnmarshalResult(c.result); err != nil {
			return nil, c.meta, err
		}
	}
	return decoder, c.meta, nil
}

// emitCancelled best-effort notifies the server that a request this
// session will no longer wait on should stop running. Failure to send is
// logged, not propagated, since the caller is already unwinding from a
// timeout or cancellation of their own. reason is sent verbatim as the
// notification's literal text, per the wording §8's seed scenario 3
// requires on the wire ("Request timed out").
func (s *Session) emitCancelled(id protocol.RequestId, reason string) {
	note := &protocol.CancelledNotification{RequestId: id, Reason: reason}
	// Use a fresh, short-lived context: callCtx is already done and would
	// make this send fail immediately.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.SendNotification(ctx, note); err != nil {
		s.log.Printf("failed to send cancellation notice for request %v: %v", id, err)
	}
}
