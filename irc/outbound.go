package irc

import (
	"sync"
)

// frame is one entry in a user's outbound FIFO: a line to send prefixed by
// Prefix, or — when Payload is nil — the disconnect sentinel, in which case
// Prefix carries the disconnect reason.
//
// Grounded on original_source/server.py's send_que tuples
// ((message, prefix) | (None, disconnect_reason)).
type frame struct {
	Payload *string
	Prefix  string
}

func quitFrame(reason string) frame {
	return frame{Payload: nil, Prefix: reason}
}

func msgFrame(payload, prefix string) frame {
	return frame{Payload: &payload, Prefix: prefix}
}

// outboundQueue is an unbounded, FIFO, single-consumer mailbox. Senders
// never block on it — Push only ever acquires a short-held mutex — so a
// slow reader on one connection cannot stall the handler that is
// broadcasting to it. This is the queue half of "per-user queue + writer
// task" in spec.md §4.2 / §9.
type outboundQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frames []frame
}

func newOutboundQueue() *outboundQueue {
	q := &outboundQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push enqueues a frame. Safe to call from any goroutine, including while
// the registry lock is held — it never blocks on I/O.
func (q *outboundQueue) Push(f frame) {
	q.mu.Lock()
	q.frames = append(q.frames, f)
	q.mu.Unlock()
	q.cond.Signal()
}

// Pop blocks until a frame is available and returns it.
func (q *outboundQueue) Pop() frame {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.frames) == 0 {
		q.cond.Wait()
	}
	f := q.frames[0]
	q.frames = q.frames[1:]
	return f
}

// Len reports the number of frames currently queued, without blocking.
func (q *outboundQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
