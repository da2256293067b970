// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"time"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// Initialize performs the MCP handshake: it sends an initialize request,
// validates the server's negotiated protocol version, sends
// notifications/initialized, and transitions the session to StateReady.
//
// Concurrent callers of Initialize all join the single in-flight
// attempt and observe its result; Initialize is otherwise meant to be
// called exactly once per session. Calling it again after a successful
// handshake returns the cached result without contacting the server
// again.
func (s *Session) Initialize(ctx context.Context, timeout time.Duration) (*protocol.InitializeResult, error) {
	if s.State() == StateIdle {
		s.Start()
	}

	s.initOnce.Do(func() {
		s.initErr = s.doInitialize(ctx, timeout)
		close(s.initDone)
	})

	select {
	case <-s.initDone:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-s.stopped:
		return nil, &shutdownError{reason: "session stopped"}
	}

	if s.initErr != nil {
		return nil, s.initErr
	}
	return &protocol.InitializeResult{
		ProtocolVersion: protocol.ProtocolVersion,
		Capabilities:    s.serverCaps,
		ServerInfo:      s.serverInfo,
		Instructions:    s.instructions,
	}, nil
}

func (s *Session) doInitialize(ctx context.Context, timeout time.Duration) error {
	s.mu.Lock()
	if s.state != StateStarting {
		s.mu.Unlock()
		return errSessionNotStarting
	}
	s.state = StateInitializing
	s.mu.Unlock()

	req := protocol.NewInitializeRequest(s.cfg.clientInfo, s.cfg.capabilities)

	decoder, _, err := s.doRequest(ctx, req, timeout, reasonInitTimedOut)
	if err != nil {
		s.setState(StateStopped)
		return err
	}

	result, ok := decoder.(*protocol.InitializeResult)
	if !ok {
		s.setState(StateStopped)
		return errUnexpectedResult
	}

	if result.ProtocolVersion != protocol.ProtocolVersion {
		s.setState(StateStopped)
		return &versionMismatchError{want: protocol.ProtocolVersion, got: result.ProtocolVersion}
	}

	s.serverInfo = result.ServerInfo
	s.serverCaps = result.Capabilities
	s.instructions = result.Instructions

	if err := s.SendNotification(ctx, &protocol.InitializedNotification{}); err != nil {
		s.setState(StateStopped)
		return err
	}

	s.setState(StateReady)
	return nil
}
