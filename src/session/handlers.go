// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"fmt"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// handleInboundRequest answers one server-initiated request. It is run on
// its own goroutine per request so a slow sampling handler can never
// block a concurrent ping or another inbound request from being
// answered promptly.
func (s *Session) handleInboundRequest(id protocol.RequestId, method string, params []byte) {
	ctx := context.Background()

	result, rpcErr := s.dispatchInbound(ctx, method, params)

	var data []byte
	var err error
	if rpcErr != nil {
		data, err = protocol.EncodeErrorResponse(id, rpcErr)
	} else {
		data, err = protocol.EncodeResponse(id, result)
	}
	if err != nil {
		s.log.Printf("failed to encode response to %s: %v", method, err)
		return
	}

	sendCtx, cancel := context.WithTimeout(context.Background(), s.cfg.requestTimeout)
	defer cancel()
	if err := s.t.Send(sendCtx, data); err != nil {
		s.log.Printf("failed to send response to %s: %v", method, err)
	}
}

// dispatchInbound implements the capability-gating table: ping is always
// allowed, roots/list requires the session to have declared the roots
// capability, sampling/createMessage requires both the sampling
// capability and a registered handler.
func (s *Session) dispatchInbound(ctx context.Context, method string, params []byte) (protocol.Result, *protocol.Error) {
	switch method {
	case protocol.MethodPing:
		return s.handlePing(params)

	case protocol.MethodRootsList:
		if s.cfg.capabilities.Roots == nil {
			return nil, protocol.NewError(protocol.CodeMethodNotFound, "roots capability not declared")
		}
		return s.handleRootsList(params)

	case protocol.MethodSamplingCreate:
		if !s.cfg.capabilities.Sampling {
			return nil, protocol.NewError(protocol.CodeMethodNotFound, "sampling capability not declared")
		}
		if s.cfg.samplingHandler == nil {
			return nil, protocol.NewError(protocol.CodeInternalError, "sampling capability declared but no handler registered")
		}
		return s.handleSamplingCreate(ctx, params)

	default:
		return nil, protocol.NewError(protocol.CodeMethodNotFound, fmt.Sprintf("method %q not supported", method))
	}
}

func (s *Session) handlePing(params []byte) (protocol.Result, *protocol.Error) {
	var req protocol.PingRequest
	if len(params) > 0 {
		if err := req.UnmarshalParams(params); err != nil {
			return nil, protocol.NewError(protocol.CodeInvalidParams, err.Error())
		}
	}
	return &protocol.EmptyResult{}, nil
}

func (s *Session) handleRootsList(params []byte) (protocol.Result, *protocol.Error) {
	var req protocol.ListRootsRequest
	if len(params) > 0 {
		if err := req.UnmarshalParams(params); err != nil {
			return nil, protocol.NewError(protocol.CodeInvalidParams, err.Error())
		}
	}

	s.mu.Lock()
	roots := make([]protocol.Root, len(s.cfg.roots))
	copy(roots, s.cfg.roots)
	s.mu.Unlock()

	return &protocol.ListRootsResult{Roots: roots}, nil
}

func (s *Session) handleSamplingCreate(ctx context.Context, params []byte) (protocol.Result, *protocol.Error) {
	var req protocol.CreateMessageRequest
	if err := req.UnmarshalParams(params); err != nil {
		return nil, protocol.NewError(protocol.CodeInvalidParams, err.Error())
	}

	result, err := s.runSamplingHandler(ctx, &req)
	if err != nil {
		return nil, protocol.NewErrorFromCause(protocol.CodeInternalError, err)
	}
	return result, nil
}

// runSamplingHandler isolates a panic in caller-supplied code to an
// INTERNAL_ERROR response instead of crashing the receive loop. A panic
// value that is itself an error is wrapped with %w so its Unwrap chain
// (and therefore protocol.NewErrorFromCause's Data) still reaches it.
func (s *Session) runSamplingHandler(ctx context.Context, req *protocol.CreateMessageRequest) (result *protocol.CreateMessageResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = fmt.Errorf("sampling handler panicked: %w", rerr)
			} else {
				err = fmt.Errorf("sampling handler panicked: %v", r)
			}
		}
	}()
	return s.cfg.samplingHandler(ctx, req)
}

// SetRoots replaces the session's declared filesystem roots. If the
// roots capability advertised listChanged support, a
// notifications/roots/list_changed message is also sent.
func (s *Session) SetRoots(ctx context.Context, roots []protocol.Root) error {
	s.mu.Lock()
	s.cfg.roots = roots
	notify := s.cfg.capabilities.Roots != nil &&
		s.cfg.capabilities.Roots.ListChanged != nil &&
		*s.cfg.capabilities.Roots.ListChanged
	s.mu.Unlock()

	if !notify {
		return nil
	}
	return s.SendNotification(ctx, &protocol.RootsListChangedNotification{})
}
