// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
	"github.com/H0llyW00dzZ/mcp-client-session/src/transport"
)

// receiveLoop is the session's single reader: it pulls frames off the
// transport, expands them into individual envelopes, and routes each one
// by its protocol.Kind. A malformed frame or a single bad envelope inside
// a batch is logged and skipped rather than treated as fatal; only a
// transport-level failure ends the loop.
func (s *Session) receiveLoop() {
	defer close(s.loopDone)

	ctx := context.Background()
	for {
		msg, err := s.t.Receive(ctx)
		if err != nil {
			if errors.Is(err, transport.ErrClosed) {
				s.log.Printf("receive loop exiting: transport closed")
			} else {
				s.log.Printf("receive loop exiting: %v", err)
			}
			go s.Stop()
			return
		}

		envelopes, err := protocol.DecodeBatch(msg)
		if err != nil {
			s.log.Printf("dropping unparseable frame: %v", err)
			continue
		}

		for _, env := range envelopes {
			s.routeEnvelope(env)
		}
	}
}

func (s *Session) routeEnvelope(env protocol.Envelope) {
	if err := env.Validate(); err != nil {
		s.log.Printf("dropping invalid envelope: %v", err)
		return
	}

	switch env.Kind() {
	case protocol.KindRequest:
		go s.handleInboundRequest(env.ID, env.Method, env.Params)

	case protocol.KindNotification:
		s.dispatchNotification(env.Method, env.Params)

	case protocol.KindResponse:
		s.correlator.Resolve(env.ID, env.Result, nil, nil)

	case protocol.KindErrorResponse:
		s.correlator.Resolve(env.ID, nil, env.Error, nil)

	default:
		s.log.Printf("dropping envelope of unrecognized kind")
	}
}
