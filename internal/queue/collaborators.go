package queue

import "time"

//go:generate go run github.com/golang/mock/mockgen -source collaborators.go -package queue -destination collaborators_mock_test.go

// QueueStore is the persistent queue store. Its on-disk layout beyond
// the chunk-directory naming convention this core depends on at
// startup is out of scope here; we only require this interface.
type QueueStore interface {
	CreateQueue(q *Queue) error
	UpdateQueue(q *Queue) error
	DeleteQueue(q *Queue) error
	GetQueue(topic string, queueID int64) (*Queue, bool)
}

// MessageStore is the append-only message log. Its internals are out
// of scope; this core only calls the methods below.
type MessageStore interface {
	DeleteQueueMessage(topic string, queueID int64) error
	UpdateConsumedQueueOffset(topic string, queueID int64, offset int64) error
	SupportsBatchLoadQueueIndex() bool
	CurrentMessagePosition() int64
}

// OffsetManager tracks per-consumer-group consumption progress. Its
// internals are out of scope; this core only calls the methods below.
type OffsetManager interface {
	GetMinOffset(topic string, queueID int64) int64
	DeleteQueueOffset(topic string, queueID int64) error
	GetConsumerGroupCount(topic string, queueID int64) int
}

// Scheduler runs named periodic tasks. The broker-wide scheduler
// implementation is out of scope; this core only needs to start and
// stop two named tasks at configured intervals.
type Scheduler interface {
	StartTask(name string, fn func(), initialDelay, period time.Duration) error
	StopTask(name string) error
}
