// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/H0llyW00dzZ/mcp-client-session/src/internal/helper/gc"
)

// StdioTransport frames JSON-RPC messages as newline-delimited JSON over
// an arbitrary io.Reader/io.Writer pair, typically a spawned server
// process's Stdout/Stdin. Reads run on a background goroutine so Receive
// can be cancelled by context even though the underlying bufio.Scanner
// has no cancellation of its own.
type StdioTransport struct {
	w      io.Writer
	writeMu sync.Mutex

	msgs   chan TransportMessage
	readErr chan error

	closeOnce sync.Once
	closed    chan struct{}
	closer    io.Closer
}

// NewStdioTransport wraps r/w as a line-delimited JSON-RPC transport. If
// rc implements io.Closer, Close also closes it (e.g. a process's
// combined stdio pipe); pass nil if the caller owns closing r/w itself.
func NewStdioTransport(r io.Reader, w io.Writer, rc io.Closer) *StdioTransport {
	t := &StdioTransport{
		w:       w,
		msgs:    make(chan TransportMessage, 64),
		readErr: make(chan error, 1),
		closed:  make(chan struct{}),
		closer:  rc,
	}
	go t.readLoop(r)
	return t
}

// readLoop scans newline-delimited messages off r and feeds them to msgs
// until r is exhausted or the transport is closed.
func (t *StdioTransport) readLoop(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		msg := make([]byte, len(line))
		copy(msg, line)
		select {
		case t.msgs <- msg:
		case <-t.closed:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case t.readErr <- err:
		default:
		}
	} else {
		select {
		case t.readErr <- io.EOF:
		default:
		}
	}
	close(t.msgs)
}

// Send implements Transport, writing msg with a trailing newline through
// a pooled buffer to avoid a per-call allocation.
func (t *StdioTransport) Send(ctx context.Context, msg TransportMessage) error {
	select {
	case <-t.closed:
		return ErrClosed
	default:
	}

	buf := gc.Default.Get()
	buf.Write(msg)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		buf.WriteByte('\n')
	}

	done := make(chan error, 1)
	go func() {
		defer gc.Default.Put(buf)
		t.writeMu.Lock()
		defer t.writeMu.Unlock()
		_, err := t.w.Write(buf.Bytes())
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("transport: stdio write: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-t.closed:
		return ErrClosed
	}
}

// Receive implements Transport.
func (t *StdioTransport) Receive(ctx context.Context) (TransportMessage, error) {
	select {
	case msg, ok := <-t.msgs:
		if !ok {
			select {
			case err := <-t.readErr:
				if err == io.EOF {
					return nil, ErrClosed
				}
				return nil, fmt.Errorf("transport: stdio read: %w", err)
			default:
				return nil, ErrClosed
			}
		}
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-t.closed:
		return nil, ErrClosed
	}
}

// Close implements Transport.
func (t *StdioTransport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		if t.closer != nil {
			err = t.closer.Close()
		}
	})
	return err
}
