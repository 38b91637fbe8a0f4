// Package memconsumer is a demonstration OffsetManager: an in-memory
// stand-in for the broker's real consumer-group offset store, used by
// cmd/queuecore to exercise queue.QueueService end to end without a
// persistent backend.
package memconsumer

import (
	"strconv"
	"sync"
)

type muxID struct {
	sync.Mutex
	id int64
}

func queueKey(topic string, queueID int64) string {
	return topic + "/" + strconv.FormatInt(queueID, 10)
}

func groupKey(topic string, queueID int64, group string) string {
	return queueKey(topic, queueID) + "/" + group
}

// Manager tracks, per (topic, queueId, consumer group), the last
// offset that group has consumed, and reports the minimum across
// every group subscribed to a queue.
type Manager struct {
	offsets sync.Map // groupKey -> *muxID
	groups  sync.Map // queueKey -> *sync.Map of group name -> struct{}
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) groupSet(topic string, queueID int64) *sync.Map {
	actual, _ := m.groups.LoadOrStore(queueKey(topic, queueID), &sync.Map{})
	return actual.(*sync.Map)
}

// SetOffset records that group has consumed up through id on the
// given queue. Offsets only move forward.
func (m *Manager) SetOffset(topic string, queueID int64, group string, id int64) {
	m.groupSet(topic, queueID).LoadOrStore(group, struct{}{})

	actual, loaded := m.offsets.LoadOrStore(groupKey(topic, queueID, group), &muxID{id: id})
	if !loaded {
		return
	}
	mID := actual.(*muxID)
	mID.Lock()
	defer mID.Unlock()
	if mID.id < id {
		mID.id = id
	}
}

// GetMinOffset implements queue.OffsetManager: the minimum consumed
// offset across every consumer group subscribed to (topic, queueID),
// or -1 if no group has subscribed.
func (m *Manager) GetMinOffset(topic string, queueID int64) int64 {
	groups := m.groupSet(topic, queueID)

	min := int64(-1)
	first := true
	groups.Range(func(group, _ interface{}) bool {
		actual, ok := m.offsets.Load(groupKey(topic, queueID, group.(string)))
		if !ok {
			return true
		}
		mID := actual.(*muxID)
		mID.Lock()
		id := mID.id
		mID.Unlock()

		if first || id < min {
			min = id
			first = false
		}
		return true
	})
	return min
}

// DeleteQueueOffset implements queue.OffsetManager: it drops every
// group's tracked offset for (topic, queueID).
func (m *Manager) DeleteQueueOffset(topic string, queueID int64) error {
	groups := m.groupSet(topic, queueID)
	groups.Range(func(group, _ interface{}) bool {
		m.offsets.Delete(groupKey(topic, queueID, group.(string)))
		groups.Delete(group)
		return true
	})
	m.groups.Delete(queueKey(topic, queueID))
	return nil
}

// GetConsumerGroupCount implements queue.OffsetManager.
func (m *Manager) GetConsumerGroupCount(topic string, queueID int64) int {
	var n int
	m.groupSet(topic, queueID).Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
