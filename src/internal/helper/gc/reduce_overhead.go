// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// Default is the default buffer pool used to assemble outbound wire
// frames without a per-call allocation.
//
// The stdio transport's Send is the one call site in this tree: it
// writes the JSON-RPC payload and a trailing newline into a pooled
// buffer, sends the buffer's bytes to the peer process, and returns the
// buffer to the pool once the write completes.
//
//	buf := gc.Default.Get()
//	defer gc.Default.Put(buf)
//
//	buf.Write(payload)
//	if payload[len(payload)-1] != '\n' {
//		buf.WriteByte('\n')
//	}
//	if _, err := w.Write(buf.Bytes()); err != nil {
//		return fmt.Errorf("transport: stdio write: %w", err)
//	}
//
// Put resets the buffer before pooling it, so a buffer from Get starts
// empty; a caller that keeps one buffer across several writes without
// Put must Reset it itself.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
