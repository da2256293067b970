// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"
)

// Logger defines the interface for logging operations.
// It provides formatted and line output and a way to redirect it; it has
// no per-level methods.
//
// This interface supports both CLI and an MCP client sessions, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// SessionLogger implements Logger for an MCP client session.
// It suppresses output by default since MCP communication happens over stdio
// and any unstructured write to stdout would corrupt the JSON-RPC framing,
// but can be configured to write structured logs to a separate destination
// (typically stderr, or a session log file).
//
// Every entry carries a monotonic seq so a reader can tell dropped-frame and
// receive-loop-exit lines emitted from the dispatch goroutine back into the
// order they actually happened, even when interleaved with lines from
// request timeouts or response-encoding failures on other goroutines.
//
// SessionLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type SessionLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
	seq    atomic.Uint64
}

// NewSessionLogger creates a new session logger.
// By default, it's silent (output suppressed) to avoid interfering with the MCP stdio transport.
// Set silent=false and provide a writer to enable structured logging to a file or stderr.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewSessionLogger(writer io.Writer, silent bool) *SessionLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &SessionLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// The JSON format is suitable for redirecting to a file or stderr alongside session diagnostics.
//
// Printf is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (m *SessionLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}

	m.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// The JSON format is suitable for redirecting to a file or stderr alongside session diagnostics.
//
// Println is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (m *SessionLogger) Println(v ...any) {
	if m.silent {
		return
	}

	m.write(fmt.Sprint(v...))
}

// write serializes a single log line and appends it to the destination.
// The seq field lets a reader reconstruct emission order across the
// several goroutines (receive loop, request timeouts, response encoding)
// that can all log concurrently during a session.
func (m *SessionLogger) write(msg string) {
	logEntry := map[string]any{
		"level":     "info",
		"component": "session",
		"seq":       m.seq.Add(1),
		"message":   msg,
	}

	data, _ := json.Marshal(logEntry)

	m.mu.Lock()
	fmt.Fprintln(m.writer, string(data))
	m.mu.Unlock()
}

// SetOutput sets the output destination for the session logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *SessionLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
