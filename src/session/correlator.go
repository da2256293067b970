// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"container/list"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// defaultOrphanCapacity bounds the orphan-response buffer: responses that
// arrive for an id the correlator no longer recognizes (already resolved,
// already cancelled, or never sent by this session) are kept here briefly
// rather than silently dropped, in case they help diagnose a
// misbehaving server. Oldest entries are evicted first once full.
const defaultOrphanCapacity = 1024

// completion is what a pending outbound request is waiting to receive:
// exactly one of result/mcpErr/localErr will be set.
type completion struct {
	result  json.RawMessage
	mcpErr  *protocol.Error
	meta    map[string]any
	localErr error
}

// pendingRequest is the correlator's record of one outstanding request.
type pendingRequest struct {
	id     protocol.RequestId
	method string
	ch     chan completion
	once   sync.Once
}

func (p *pendingRequest) complete(c completion) {
	p.once.Do(func() {
		p.ch <- c
	})
}

// orphanEntry is a response the correlator could not match to a pending
// request, kept for diagnostics.
type orphanEntry struct {
	key    string
	result json.RawMessage
	mcpErr *protocol.Error
	meta   map[string]any
}

// Correlator assigns monotonically increasing request ids, tracks the
// completion slot for each outstanding request, and buffers responses
// that arrive with an id it no longer (or never did) recognize. Matching
// is done on the response id verbatim, type-preserving across int/string,
// by normalizing both sides to a comparable string key.
type Correlator struct {
	nextID int64

	mu      sync.Mutex
	pending map[string]*pendingRequest

	orphanCap   int
	orphanList  *list.List
	orphanIndex map[string]*list.Element
}

// NewCorrelator builds a Correlator whose orphan buffer holds at most cap
// entries. A cap of 0 selects defaultOrphanCapacity.
func NewCorrelator(cap int) *Correlator {
	if cap <= 0 {
		cap = defaultOrphanCapacity
	}
	return &Correlator{
		pending:     make(map[string]*pendingRequest),
		orphanCap:   cap,
		orphanList:  list.New(),
		orphanIndex: make(map[string]*list.Element),
	}
}

// NextID returns the next request id for this session. Ids are emitted as
// int64, monotonically increasing from 1.
func (c *Correlator) NextID() protocol.RequestId {
	return atomic.AddInt64(&c.nextID, 1)
}

// Register records a new outstanding request and returns the channel its
// eventual completion will be delivered on.
func (c *Correlator) Register(id protocol.RequestId, method string) <-chan completion {
	pr := &pendingRequest{id: id, method: method, ch: make(chan completion, 1)}
	key := idKey(id)

	c.mu.Lock()
	c.pending[key] = pr
	c.mu.Unlock()

	return pr.ch
}

// Forget removes a pending request without completing it, used when a
// caller's context is done or a timeout fires and the caller will
// synthesize its own error locally. It reports whether the id was still
// pending (false means a response already raced it to completion).
func (c *Correlator) Forget(id protocol.RequestId) bool {
	key := idKey(id)
	c.mu.Lock()
	_, ok := c.pending[key]
	delete(c.pending, key)
	c.mu.Unlock()
	return ok
}

// Resolve delivers a response to the pending request matching id. If no
// request with that id is outstanding, the response is stashed in the
// orphan buffer instead and Resolve reports false.
func (c *Correlator) Resolve(id protocol.RequestId, result json.RawMessage, mcpErr *protocol.Error, meta map[string]any) bool {
	key := idKey(id)

	c.mu.Lock()
	pr, ok := c.pending[key]
	if ok {
		delete(c.pending, key)
	}
	c.mu.Unlock()

	if !ok {
		c.stashOrphan(key, result, mcpErr, meta)
		return false
	}

	pr.complete(completion{result: result, mcpErr: mcpErr, meta: meta})
	return true
}

func (c *Correlator) stashOrphan(key string, result json.RawMessage, mcpErr *protocol.Error, meta map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.orphanIndex[key]; ok {
		c.orphanList.Remove(el)
		delete(c.orphanIndex, key)
	}

	el := c.orphanList.PushBack(orphanEntry{key: key, result: result, mcpErr: mcpErr, meta: meta})
	c.orphanIndex[key] = el

	for c.orphanList.Len() > c.orphanCap {
		oldest := c.orphanList.Front()
		if oldest == nil {
			break
		}
		c.orphanList.Remove(oldest)
		delete(c.orphanIndex, oldest.Value.(orphanEntry).key)
	}
}

// Orphaned reports how many unmatched responses are currently buffered.
func (c *Correlator) Orphaned() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orphanList.Len()
}

// Shutdown completes every outstanding request with a shutdown error and
// clears the pending table. It does not touch the orphan buffer.
func (c *Correlator) Shutdown(reason string) {
	c.mu.Lock()
	pending := c.pending
	c.pending = make(map[string]*pendingRequest)
	c.mu.Unlock()

	for _, pr := range pending {
		pr.complete(completion{localErr: &shutdownError{reason: reason}})
	}
}

// idKey normalizes a RequestId (int64, float64, string, or nil as decoded
// off the wire) to a comparable string so ids sent as numbers match
// responses decoded as numbers regardless of Go's underlying numeric type.
func idKey(id protocol.RequestId) string {
	switch v := id.(type) {
	case nil:
		return "null"
	case string:
		return "s:" + v
	case int:
		return fmt.Sprintf("n:%d", v)
	case int64:
		return fmt.Sprintf("n:%d", v)
	case float64:
		return fmt.Sprintf("n:%d", int64(v))
	case json.Number:
		return "n:" + v.String()
	default:
		return fmt.Sprintf("x:%v", v)
	}
}
