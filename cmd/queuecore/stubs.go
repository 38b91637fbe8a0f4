package main

import (
	"sync"
	"sync/atomic"

	"github.com/mqbroker/queuecore/internal/queue"
)

// memQueueStore is an in-memory stand-in for the broker's persistent
// queue store: enough for a demonstration, not a durable backend.
type memQueueStore struct {
	mu     sync.Mutex
	queues map[queue.Key]*queue.Queue
}

func newMemQueueStore() *memQueueStore {
	return &memQueueStore{queues: make(map[queue.Key]*queue.Queue)}
}

func (s *memQueueStore) CreateQueue(q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[q.Key()] = q
	return nil
}

func (s *memQueueStore) UpdateQueue(q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[q.Key()] = q
	return nil
}

func (s *memQueueStore) DeleteQueue(q *queue.Queue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.queues, q.Key())
	return nil
}

func (s *memQueueStore) GetQueue(topic string, queueID int64) (*queue.Queue, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.queues[queue.Key{Topic: topic, QueueID: queueID}]
	return q, ok
}

// memMessageStore is an in-memory stand-in for the broker's
// append-only message log.
type memMessageStore struct {
	position int64
}

func (s *memMessageStore) DeleteQueueMessage(topic string, queueID int64) error { return nil }

func (s *memMessageStore) UpdateConsumedQueueOffset(topic string, queueID, offset int64) error {
	return nil
}

func (s *memMessageStore) SupportsBatchLoadQueueIndex() bool { return true }

func (s *memMessageStore) CurrentMessagePosition() int64 {
	return atomic.LoadInt64(&s.position)
}

func (s *memMessageStore) advance(n int64) int64 {
	return atomic.AddInt64(&s.position, n)
}
