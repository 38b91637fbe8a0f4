package queue

import "sync"

// QueueRegistry is the concurrent, lock-free mapping from Key to Queue
// that backs every read-only QueueService query. Writers additionally
// serialise under the QueueService mutation mutex, so tryInsert and
// remove never race each other; get, containsKey, and values may run
// concurrently with either.
type QueueRegistry struct {
	m sync.Map
}

func newQueueRegistry() *QueueRegistry {
	return &QueueRegistry{}
}

// get returns the Queue stored under key, if any.
func (r *QueueRegistry) get(key Key) (*Queue, bool) {
	v, ok := r.m.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*Queue), true
}

func (r *QueueRegistry) containsKey(key Key) bool {
	_, ok := r.m.Load(key)
	return ok
}

// tryInsert stores q under key only if absent, reporting whether the
// insert took effect.
func (r *QueueRegistry) tryInsert(key Key, q *Queue) bool {
	_, loaded := r.m.LoadOrStore(key, q)
	return !loaded
}

func (r *QueueRegistry) remove(key Key) {
	r.m.Delete(key)
}

// values returns a weakly-consistent snapshot of every Queue present
// at some point during the call. Entries inserted or removed mid-call
// may or may not appear, but every entry returned is a valid
// reference.
func (r *QueueRegistry) values() []*Queue {
	var out []*Queue
	r.m.Range(func(_, v interface{}) bool {
		out = append(out, v.(*Queue))
		return true
	})
	return out
}

// clear empties the registry. Used by start() and shutdown().
func (r *QueueRegistry) clear() {
	r.m.Range(func(k, _ interface{}) bool {
		r.m.Delete(k)
		return true
	})
}
