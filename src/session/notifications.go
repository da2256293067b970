// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package session

import (
	"context"
	"sync"

	"github.com/H0llyW00dzZ/mcp-client-session/src/protocol"
)

// notificationQueue is an unbounded, order-preserving queue of decoded
// inbound notifications. It grows with demand rather than dropping or
// blocking the receive loop, since a slow consumer must never stall
// unrelated request/response traffic.
type notificationQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []protocol.Notification
	closed bool
}

func newNotificationQueue() *notificationQueue {
	q := &notificationQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *notificationQueue) push(n protocol.Notification) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, n)
	q.cond.Signal()
}

func (q *notificationQueue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}

// next pops the oldest queued notification, waiting if the queue is
// empty. It returns ErrShutdown once the queue has been closed and
// drained, or ctx.Err() if ctx is done first.
func (q *notificationQueue) next(ctx context.Context) (protocol.Notification, error) {
	// cond.Wait cannot itself observe ctx.Done, so a watcher goroutine
	// wakes it if the caller's context ends first.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			q.cond.Broadcast()
		case <-done:
		}
	}()

	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		q.cond.Wait()
	}

	if len(q.items) == 0 {
		return nil, ErrShutdown
	}

	n := q.items[0]
	q.items = q.items[1:]
	return n, nil
}

// dispatchNotification decodes a server-to-client notification envelope
// and enqueues it for NextNotification. Unknown methods are logged and
// dropped rather than treated as fatal, since new notification types may
// be added to the protocol over time.
func (s *Session) dispatchNotification(method string, params []byte) {
	decoder, ok := protocol.NewNotificationDecoder(method)
	if !ok {
		s.log.Printf("ignoring notification with unknown method %q", method)
		return
	}
	if err := decoder.UnmarshalParams(params); err != nil {
		s.log.Printf("failed to decode notification %q: %v", method, err)
		return
	}
	n, ok := decoder.(protocol.Notification)
	if !ok {
		s.log.Printf("decoder for %q does not implement Notification", method)
		return
	}
	s.queue.push(n)
}
