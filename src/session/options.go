// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"io"
	"time"

	"github.com/H0llyW00dzZ/mcp-client-session/src/logger"
	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
	"github.com/H0llyW00dzZ/mcp-client-session/src/version"

	"go.opentelemetry.io/otel/trace"
)

// defaultRequestTimeout is used by SendRequest and Initialize when the
// caller does not supply one.
const defaultRequestTimeout = 30 * time.Second

// SamplingHandler answers an inbound sampling/createMessage request. It is
// only invoked when the session was built with the sampling capability
// enabled; an error it returns is reported to the server as
// CodeInternalError.
type SamplingHandler func(ctx context.Context, req *protocol.CreateMessageRequest) (*protocol.CreateMessageResult, error)

// Option configures a Session at construction time.
type Option func(*config)

type config struct {
	clientInfo   protocol.Implementation
	capabilities protocol.ClientCapabilities

	samplingHandler SamplingHandler
	roots           []protocol.Root

	logger *logger.SessionLogger

	tracer trace.Tracer

	orphanCapacity int
	requestTimeout time.Duration
}

func defaultConfig() *config {
	return &config{
		clientInfo:     protocol.Implementation{Name: version.Name, Version: version.Version},
		logger:         logger.NewSessionLogger(io.Discard, true),
		orphanCapacity: defaultOrphanCapacity,
		requestTimeout: defaultRequestTimeout,
	}
}

// WithClientInfo sets the name/version this session identifies itself
// with during initialize. Defaults to {version.Name, version.Version}.
func WithClientInfo(info protocol.Implementation) Option {
	return func(c *config) { c.clientInfo = info }
}

// WithRoots declares a static set of filesystem roots this session
// exposes to the server and enables the roots capability. Use SetRoots
// on the running Session to change the set later.
func WithRoots(roots ...protocol.Root) Option {
	return func(c *config) {
		c.roots = roots
		listChanged := true
		c.capabilities.Roots = &protocol.RootsCapability{ListChanged: &listChanged}
	}
}

// WithSamplingHandler registers the function that answers inbound
// sampling/createMessage requests and enables the sampling capability. A
// session built without this option does not declare sampling and answers
// sampling requests with METHOD_NOT_FOUND; passing a nil h declares the
// capability with no handler, and sampling requests get INTERNAL_ERROR.
func WithSamplingHandler(h SamplingHandler) Option {
	return func(c *config) {
		c.samplingHandler = h
		c.capabilities.Sampling = true
	}
}

// WithLogger routes session diagnostics through l instead of a silent
// default logger.
func WithLogger(l *logger.SessionLogger) Option {
	return func(c *config) { c.logger = l }
}

// WithTracer attaches an OpenTelemetry tracer; SendRequest and Initialize
// each open one span. Defaults to a no-op tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithOrphanCapacity overrides how many unmatched responses the
// correlator retains before evicting the oldest. Defaults to 1024.
func WithOrphanCapacity(n int) Option {
	return func(c *config) { c.orphanCapacity = n }
}

// WithRequestTimeout overrides the default deadline SendRequest and
// Initialize apply when the caller does not pass one explicitly.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *config) { c.requestTimeout = d }
}
