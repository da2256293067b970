// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package session implements a single-use Model Context Protocol client
// session: the handshake state machine, request/response correlation,
// inbound request dispatch, and the notification queue, all running over
// a transport.Transport supplied at construction.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/H0llyW00dzZ/mcp-client-session/src/logger"
	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
	"github.com/H0llyW00dzZ/mcp-client-session/src/transport"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// State is a point in the session's one-way lifecycle. No state is ever
// revisited: Stopped is terminal and a session is single-use.
type State int

const (
	// StateIdle is the state immediately after New, before Start has run.
	StateIdle State = iota
	// StateStarting means Start has been called and the receive loop is
	// coming up, but Initialize has not yet been called.
	StateStarting
	// StateInitializing means an initialize request is in flight.
	StateInitializing
	// StateReady means the handshake completed and the session will
	// accept SendRequest/SendNotification calls.
	StateReady
	// StateStopped is terminal: every future SendRequest fails with
	// ErrShutdown. Stop also closes the transport and fails every
	// outstanding call with ErrShutdown; a failed handshake sets this state
	// without closing the transport or ending the receive loop, which stay
	// up until Stop is called.
	StateStopped
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Session is a single Model Context Protocol client session bound to one
// transport. Construct with New, bring the receive loop up with Start,
// perform the handshake with Initialize, then exchange requests and
// notifications until Stop. A Session is safe for concurrent use by
// multiple goroutines once Start has returned, except that Initialize and
// Stop are each meant to be called once (Initialize tolerates concurrent
// callers by joining the single in-flight attempt; Stop is idempotent).
type Session struct {
	t   transport.Transport
	cfg *config

	id string

	log    *logger.SessionLogger
	tracer trace.Tracer

	correlator *Correlator
	queue      *notificationQueue

	mu    sync.Mutex
	state State

	serverInfo   protocol.Implementation
	serverCaps   protocol.ServerCapabilities
	instructions string

	initOnce    sync.Once
	initDone    chan struct{}
	initErr     error

	stopOnce sync.Once
	stopped  chan struct{}

	loopDone chan struct{}
}

// New constructs a Session bound to t. The session does not touch the
// transport until Start is called.
func New(t transport.Transport, opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("mcp-client-session")
	}

	return &Session{
		t:          t,
		cfg:        cfg,
		id:         uuid.NewString(),
		log:        cfg.logger,
		tracer:     tracer,
		correlator: NewCorrelator(cfg.orphanCapacity),
		queue:      newNotificationQueue(),
		state:      StateIdle,
		initDone:   make(chan struct{}),
		stopped:    make(chan struct{}),
		loopDone:   make(chan struct{}),
	}
}

// ID returns a random identifier generated when the session was
// constructed, stable for the session's lifetime. It has no protocol
// meaning; it exists to correlate this session's spans and log lines
// across a host process that may run several sessions concurrently.
func (s *Session) ID() string { return s.id }

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) setState(next State) {
	s.mu.Lock()
	s.state = next
	s.mu.Unlock()
}

// ServerInfo returns the peer's self-reported implementation details.
// Only meaningful once Initialize has returned successfully.
func (s *Session) ServerInfo() protocol.Implementation { return s.serverInfo }

// ServerCapabilities returns the peer's declared capabilities. Only
// meaningful once Initialize has returned successfully.
func (s *Session) ServerCapabilities() protocol.ServerCapabilities { return s.serverCaps }

// Instructions returns any free-form instructions the server returned
// from initialize.
func (s *Session) Instructions() string { return s.instructions }

// Start brings the receive loop up. Initialize (and SendRequest, through
// it) calls Start itself on an Idle session, so an explicit call is
// optional. Calling Start more than once has no additional effect.
func (s *Session) Start() {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return
	}
	s.state = StateStarting
	s.mu.Unlock()

	go s.receiveLoop()
}

// Stop idempotently tears the session down: the transport is closed,
// every outstanding SendRequest call fails with ErrShutdown, the
// notification queue is closed, and the state becomes StateStopped. Stop
// blocks until the receive loop has exited.
func (s *Session) Stop() error {
	var closeErr error
	s.stopOnce.Do(func() {
		s.setState(StateStopped)
		close(s.stopped)
		closeErr = s.t.Close()
		s.correlator.Shutdown("session stopped")
		s.queue.close()
		<-s.loopDone
	})
	return closeErr
}

// Done returns a channel closed once the session has stopped, for
// callers that want to select on session lifetime.
func (s *Session) Done() <-chan struct{} { return s.stopped }

// sendRequestEnvelope serializes and writes one request envelope, registering it
// with the correlator first so a response racing the write can never be
// missed.
func (s *Session) sendRequestEnvelope(ctx context.Context, id protocol.RequestId, req protocol.Request) (<-chan completion, error) {
	data, err := protocol.EncodeRequest(id, req)
	if err != nil {
		return nil, fmt.Errorf("session: encode %s: %w", req.Method(), err)
	}
	ch := s.correlator.Register(id, req.Method())
	if err := s.t.Send(ctx, data); err != nil {
		s.correlator.Forget(id)
		return nil, fmt.Errorf("session: send %s: %w", req.Method(), err)
	}
	return ch, nil
}

// SendNotification writes a one-way notification. It is valid once the
// session is Ready (or, for notifications/initialized, while still
// Initializing).
func (s *Session) SendNotification(ctx context.Context, n protocol.Notification) error {
	select {
	case <-s.stopped:
		return &shutdownError{reason: "session stopped"}
	default:
	}
	data, err := protocol.EncodeNotification(n)
	if err != nil {
		return fmt.Errorf("session: encode %s: %w", n.Method(), err)
	}
	if err := s.t.Send(ctx, data); err != nil {
		return fmt.Errorf("session: send %s: %w", n.Method(), err)
	}
	return nil
}

// NextNotification blocks until a server-to-client notification arrives,
// ctx is done, or the session stops (returning ErrShutdown once the queue
// has been drained).
func (s *Session) NextNotification(ctx context.Context) (protocol.Notification, error) {
	return s.queue.next(ctx)
}
