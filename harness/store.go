package harness

import (
	"sync"
	"time"

	"github.com/frontlook-admin/mcp-contract-tests/protocol"
)

// ResultStore collects decoded replies keyed by request id. The line reader
// is its only writer and the call driver its only reader. A second reply
// with the same id replaces the first.
type ResultStore struct {
	lock    sync.Mutex
	replies map[string]protocol.Reply
	waiters map[string][]chan protocol.Reply
}

func NewResultStore() *ResultStore {
	return &ResultStore{
		replies: make(map[string]protocol.Reply),
		waiters: make(map[string][]chan protocol.Reply),
	}
}

// Put stores a reply and releases anyone blocked in Await on its id.
func (s *ResultStore) Put(reply protocol.Reply) {
	s.lock.Lock()
	s.replies[reply.ID] = reply
	waiting := s.waiters[reply.ID]
	delete(s.waiters, reply.ID)
	s.lock.Unlock()
	for _, w := range waiting {
		w <- reply
	}
}

// Get returns the reply stored for id, if any.
func (s *ResultStore) Get(id string) (protocol.Reply, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	reply, ok := s.replies[id]
	return reply, ok
}

// Await blocks until a reply for id is available or the timeout elapses,
// whichever comes first. It returns false on timeout.
func (s *ResultStore) Await(id string, timeout time.Duration) (protocol.Reply, bool) {
	s.lock.Lock()
	if reply, ok := s.replies[id]; ok {
		s.lock.Unlock()
		return reply, true
	}
	// Buffered so a Put after the deadline never blocks the reader.
	w := make(chan protocol.Reply, 1)
	s.waiters[id] = append(s.waiters[id], w)
	s.lock.Unlock()

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	select {
	case reply := <-w:
		return reply, true
	case <-deadline.C:
		return protocol.Reply{}, false
	}
}
