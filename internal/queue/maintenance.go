package queue

import (
	"sync/atomic"
)

const (
	taskConsumedReclaim  = "ConsumedReclaim"
	taskExceedCacheEvict = "ExceedCacheEvict"
)

// MaintenanceScheduler drives the two periodic tasks that bound the
// QueueService's memory use. Each task carries its own atomic
// single-flight flag: if a prior tick of that same task is still
// running when the timer fires again, the new tick is skipped, not
// queued. A mid-tick panic or error is caught, logged, and does not
// prevent the next tick, since both tasks are idempotent.
type MaintenanceScheduler struct {
	service *QueueService

	reclaimRunning int32
	evictRunning   int32
}

func newMaintenanceScheduler(s *QueueService) *MaintenanceScheduler {
	return &MaintenanceScheduler{service: s}
}

func (m *MaintenanceScheduler) start() error {
	cfg := m.service.cfg
	if err := m.service.scheduler.StartTask(taskConsumedReclaim, m.reclaimTick, cfg.RemoveConsumedQueueIndexInterval, cfg.RemoveConsumedQueueIndexInterval); err != nil {
		return err
	}
	if err := m.service.scheduler.StartTask(taskExceedCacheEvict, m.evictTick, cfg.RemoveExceedMaxCacheQueueIndexInterval, cfg.RemoveExceedMaxCacheQueueIndexInterval); err != nil {
		return err
	}
	return nil
}

func (m *MaintenanceScheduler) stop() {
	m.service.scheduler.StopTask(taskConsumedReclaim)
	m.service.scheduler.StopTask(taskExceedCacheEvict)
}

// reclaimTick is the ConsumedReclaim task entry point registered with
// the Scheduler.
func (m *MaintenanceScheduler) reclaimTick() {
	if !atomic.CompareAndSwapInt32(&m.reclaimRunning, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&m.reclaimRunning, 0)
	m.runGuarded(taskConsumedReclaim, m.doReclaim)
}

// doReclaim is the unguarded ConsumedReclaim logic, called both by
// reclaimTick and inline by evictTick per the exceed-cache algorithm.
func (m *MaintenanceScheduler) doReclaim() {
	s := m.service
	for _, q := range s.registry.values() {
		topic, id := q.Topic(), q.QueueID()

		consumed := s.offsetManager.GetMinOffset(topic, id)
		if current := q.CurrentOffset(); consumed > current {
			consumed = current
		}

		q.removeAllPreviousQueueIndex(consumed)
		if err := s.messageStore.UpdateConsumedQueueOffset(topic, id, consumed); err != nil {
			s.logger.Warnf("queue: unable to update consumed offset for %s: %v", q.Key(), err)
		}
	}
}

// evictTick is the ExceedCacheEvict task entry point registered with
// the Scheduler.
func (m *MaintenanceScheduler) evictTick() {
	if !atomic.CompareAndSwapInt32(&m.evictRunning, 0, 1) {
		return
	}
	defer atomic.StoreInt32(&m.evictRunning, 0)
	m.runGuarded(taskExceedCacheEvict, m.doEvict)
}

func (m *MaintenanceScheduler) doEvict() {
	s := m.service

	if !s.messageStore.SupportsBatchLoadQueueIndex() {
		return
	}

	exceed := s.GetAllQueueIndexCount() - s.cfg.QueueIndexMaxCacheSize
	if exceed <= 0 {
		return
	}

	m.doReclaim()

	queues := s.registry.values()
	counts := make([]int64, len(queues))
	var totalUnconsumed int64
	for i, q := range queues {
		counts[i] = q.getMessageCount()
		totalUnconsumed += counts[i]
	}
	if totalUnconsumed == 0 {
		return
	}

	unconsumedExceed := totalUnconsumed - s.cfg.QueueIndexMaxCacheSize
	if unconsumedExceed <= 0 {
		return
	}

	var totalRemoved int64
	for i, q := range queues {
		c := counts[i]
		requireRemove := unconsumedExceed * c / totalUnconsumed
		if requireRemove <= 0 {
			continue
		}
		totalRemoved += q.removeRequiredQueueIndexFromLast(requireRemove)
	}
	if totalRemoved > 0 {
		s.logger.Infof("queue: exceed-cache eviction removed %d index entries", totalRemoved)
	}
}

// runGuarded recovers a panic from fn, logging it as a maintenance
// fault that never surfaces to callers.
func (m *MaintenanceScheduler) runGuarded(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.service.logger.Errorf("queue: maintenance task %s failed: %v", name, r)
		}
	}()
	fn()
}
