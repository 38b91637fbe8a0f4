package queue

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Status is the administrative state of a Queue.
type Status int32

const (
	StatusEnabled Status = iota
	StatusDisabled
)

func (s Status) String() string {
	if s == StatusDisabled {
		return "disabled"
	}
	return "enabled"
}

// Queue owns one topic/queueId pair's resident index cache: the
// ordered (queueOffset -> messagePosition) entries backed by the
// on-disk chunk segments under its chunk directory. A Queue is safe
// for concurrent reads of its counters and offsets; the two eviction
// primitives and index growth must be serialised for the same
// instance, which the embedded mutex provides.
type Queue struct {
	topic   string
	queueID int64
	dir     string

	offsetManager OffsetManager

	status int32 // atomic Status

	mu      sync.Mutex
	entries []indexEntry
	current int64 // highest queueOffset written, -1 if none
	writer  *chunkWriter
	loaded  bool
	closed  bool
}

// newQueue constructs an unloaded Queue. offsetManager may be nil, in
// which case getMessageRealCount degrades to getMessageCount.
func newQueue(basePath, topic string, queueID int64, offsetManager OffsetManager) *Queue {
	return &Queue{
		topic:         topic,
		queueID:       queueID,
		dir:           chunkDir(basePath, topic, queueID),
		offsetManager: offsetManager,
		status:        int32(StatusEnabled),
		current:       -1,
	}
}

func (q *Queue) Key() Key { return Key{Topic: q.topic, QueueID: q.queueID} }

func (q *Queue) Topic() string   { return q.topic }
func (q *Queue) QueueID() int64 { return q.queueID }

func (q *Queue) Status() Status {
	return Status(atomic.LoadInt32(&q.status))
}

func (q *Queue) SetStatus(s Status) {
	atomic.StoreInt32(&q.status, int32(s))
}

// CurrentOffset returns the highest queueOffset ever written, or -1
// if the queue has never been written to.
func (q *Queue) CurrentOffset() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// load reads every chunk segment under the queue's directory into the
// resident index cache and opens the trailing segment for further
// appends. A directory that does not yet exist is treated as a brand
// new, empty queue rather than an error.
func (q *Queue) load() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.loaded {
		return nil
	}

	names, err := sortedSegmentNames(q.dir)
	if os.IsNotExist(err) {
		names = nil
	} else if err != nil {
		return errors.Wrapf(err, "unable to list chunk segments for %s", q.Key())
	}

	var entries []indexEntry
	for _, name := range names {
		segEntries, err := readSegment(filepath.Join(q.dir, name))
		if err != nil {
			return errors.Wrapf(err, "unable to read chunk segment %q for %s", name, q.Key())
		}
		entries = append(entries, segEntries...)
	}

	current := int64(-1)
	if len(entries) > 0 {
		current = entries[len(entries)-1].queueOffset
	}

	base := int64(0)
	entriesInSegment := int64(0)
	if n := len(names); n > 0 {
		last := names[n-1]
		if b, err := parseSegmentName(last); err == nil {
			base = b
			entriesInSegment = countEntriesFromBase(entries, b)
		}
	}

	writer, err := openChunkWriter(q.dir, base, entriesInSegment)
	if err != nil {
		return err
	}

	q.entries = entries
	q.current = current
	q.writer = writer
	q.loaded = true
	return nil
}

func countEntriesFromBase(entries []indexEntry, base int64) int64 {
	var n int64
	for _, e := range entries {
		if e.queueOffset >= base {
			n++
		}
	}
	return n
}

// close releases the queue's open chunk segment and discards the
// resident cache. A closed Queue's eviction primitives become no-ops
// rather than operating on a torn-down instance; maintenance ticks
// that race a concurrent removeQueue observe this safely.
func (q *Queue) close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true

	var err error
	if q.writer != nil {
		err = q.writer.close()
		q.writer = nil
	}
	q.entries = nil
	return err
}

// append grows the index cache by one entry. Index growth is driven
// by the broker's produce path, which sits outside this core; this
// method exists so that core and its callers have somewhere to route
// that growth without reaching into chunk internals directly.
func (q *Queue) append(messagePosition int64) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return errors.Errorf("append on closed queue %s", q.Key())
	}

	next := q.current + 1
	if err := q.writer.append(indexEntry{queueOffset: next, messagePosition: messagePosition}); err != nil {
		return err
	}
	q.entries = append(q.entries, indexEntry{queueOffset: next, messagePosition: messagePosition})
	q.current = next
	return nil
}

// getMinQueueOffset returns the smallest resident queueOffset, or the
// current offset when the cache is empty (no backlog), or -1 when the
// queue has never been written.
func (q *Queue) getMinQueueOffset() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.entries) > 0 {
		return q.entries[0].queueOffset
	}
	return q.current
}

// getMessageCount returns the number of entries currently resident in
// the index cache.
func (q *Queue) getMessageCount() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.entries))
}

// getMessageRealCount returns the number of resident entries that
// remain unconsumed by every subscribed consumer group.
func (q *Queue) getMessageRealCount() int64 {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.offsetManager == nil {
		return int64(len(q.entries))
	}
	consumed := q.offsetManager.GetMinOffset(q.topic, q.queueID)
	idx := sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].queueOffset > consumed
	})
	return int64(len(q.entries) - idx)
}

// removeAllPreviousQueueIndex discards every resident entry with
// queueOffset <= upto. A no-op on a closed queue.
func (q *Queue) removeAllPreviousQueueIndex(upto int64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	idx := sort.Search(len(q.entries), func(i int) bool {
		return q.entries[i].queueOffset > upto
	})
	q.entries = q.entries[idx:]
}

// removeRequiredQueueIndexFromLast trims up to n entries from the
// newest end of the resident cache and reports how many were actually
// removed. A no-op (returning 0) on a closed queue or a non-positive n.
func (q *Queue) removeRequiredQueueIndexFromLast(n int64) int64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed || n <= 0 {
		return 0
	}
	remove := n
	if remove > int64(len(q.entries)) {
		remove = int64(len(q.entries))
	}
	q.entries = q.entries[:int64(len(q.entries))-remove]
	return remove
}
