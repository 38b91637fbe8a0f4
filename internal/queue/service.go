package queue

import (
	"strings"
	"sync"
)

// QueueService owns the lifecycle of every Queue the broker holds: it
// reconstructs the in-memory population from the on-disk chunk
// directories at startup, mediates every admin mutation against the
// QueueStore, MessageStore, and OffsetManager collaborators under a
// single mutation mutex, and drives the two periodic maintenance
// tasks via the supplied Scheduler. Read-only queries never take the
// mutex; they operate against a QueueRegistry snapshot.
type QueueService struct {
	cfg Config

	queueStore    QueueStore
	messageStore  MessageStore
	offsetManager OffsetManager
	scheduler     Scheduler
	logger        Logger

	registry    *QueueRegistry
	mu          sync.Mutex
	maintenance *MaintenanceScheduler
	watcher     *DirectoryWatcher
}

// NewQueueService constructs a QueueService over its four
// collaborators. DefaultConfig is used as the base and opts are
// applied in order.
func NewQueueService(queueStore QueueStore, messageStore MessageStore, offsetManager OffsetManager, scheduler Scheduler, opts ...Option) (*QueueService, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &QueueService{
		cfg:           cfg,
		queueStore:    queueStore,
		messageStore:  messageStore,
		offsetManager: offsetManager,
		scheduler:     scheduler,
		logger:        cfg.logger,
		registry:      newQueueRegistry(),
	}
	s.maintenance = newMaintenanceScheduler(s)
	return s, nil
}

// Start is idempotent bring-up: it stops any running maintenance
// tasks, clears the registry, repopulates it from disk, (re)registers
// the two maintenance tasks, and, if a watcher from a prior Start is
// still running, closes it before opening a new one.
func (s *QueueService) Start() error {
	s.maintenance.stop()
	s.registry.clear()

	loader := &StartupLoader{cfg: s.cfg, offsetManager: s.offsetManager, registry: s.registry}
	if err := loader.load(); err != nil {
		return storageFault(err, "startup load failed")
	}

	if err := s.maintenance.start(); err != nil {
		return storageFault(err, "unable to register maintenance tasks")
	}

	if s.watcher != nil {
		s.watcher.close()
		s.watcher = nil
	}
	if s.cfg.WatchForNewQueues {
		w, err := newDirectoryWatcher(s.cfg.BasePath, s.GetAllTopics(), s.logger, s.onDirectoryCreated)
		if err != nil {
			return storageFault(err, "unable to start directory watcher")
		}
		s.watcher = w
	}
	return nil
}

// Shutdown closes every resident queue, clears the registry, and
// stops the maintenance tasks, in that order.
func (s *QueueService) Shutdown() error {
	if s.watcher != nil {
		s.watcher.close()
		s.watcher = nil
	}

	var firstErr error
	for _, q := range s.registry.values() {
		if err := q.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.registry.clear()
	s.maintenance.stop()
	return firstErr
}

// onDirectoryCreated is invoked by the optional directory watcher when
// a new <topic>/<queueId> directory appears under the base path while
// the service is running.
func (s *QueueService) onDirectoryCreated(topic string, queueID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Topic: topic, QueueID: queueID}
	if s.registry.containsKey(key) {
		return
	}
	q := newQueue(s.cfg.BasePath, topic, queueID, s.offsetManager)
	if err := q.load(); err != nil {
		s.logger.Warnf("queue: unable to load newly discovered queue %s: %v", key, err)
		return
	}
	s.registry.tryInsert(key, q)
}

func existingQueueIDs(queues []*Queue, topic string) []int64 {
	var ids []int64
	for _, q := range queues {
		if q.Topic() == topic {
			ids = append(ids, q.QueueID())
		}
	}
	return ids
}

// CreateTopic constructs initialQueueCount queues for topic with IDs
// [0, initialQueueCount), persisting and registering only those not
// already present.
func (s *QueueService) CreateTopic(topic string, initialQueueCount int) error {
	if topic == "" {
		return invalidArgument("topic must not be empty")
	}
	if initialQueueCount <= 0 || initialQueueCount > s.cfg.TopicMaxQueueCount {
		return invalidArgument("initial queue count %d out of range (0, %d]", initialQueueCount, s.cfg.TopicMaxQueueCount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createTopicLocked(topic, initialQueueCount)
}

func (s *QueueService) createTopicLocked(topic string, initialQueueCount int) error {
	for id := int64(0); id < int64(initialQueueCount); id++ {
		key := Key{Topic: topic, QueueID: id}
		if s.registry.containsKey(key) {
			continue
		}

		q := newQueue(s.cfg.BasePath, topic, id, s.offsetManager)
		if err := q.load(); err != nil {
			return storageFault(err, "unable to load queue %s", key)
		}
		if err := s.queueStore.CreateQueue(q); err != nil {
			return storageFault(err, "unable to persist queue %s", key)
		}
		s.registry.tryInsert(key, q)
	}
	return nil
}

// AddQueue appends one new queue to topic, using one more than the
// highest existing queue ID for that topic, or 0 if it has none. A
// freed ID is reused only when it was the highest; gaps left by
// removing a lower ID are never filled.
func (s *QueueService) AddQueue(topic string) (*Queue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := existingQueueIDs(s.registry.values(), topic)
	if len(ids) >= s.cfg.TopicMaxQueueCount {
		return nil, invalidArgument("topic %q already has the maximum of %d queues", topic, s.cfg.TopicMaxQueueCount)
	}

	next := int64(0)
	for _, id := range ids {
		if id+1 > next {
			next = id + 1
		}
	}

	key := Key{Topic: topic, QueueID: next}
	q := newQueue(s.cfg.BasePath, topic, next, s.offsetManager)
	if err := q.load(); err != nil {
		return nil, storageFault(err, "unable to load queue %s", key)
	}
	if err := s.queueStore.CreateQueue(q); err != nil {
		return nil, storageFault(err, "unable to persist queue %s", key)
	}
	s.registry.tryInsert(key, q)
	return q, nil
}

// RemoveQueue deletes a disabled, fully-consumed queue. Deletion is
// ordered MessageStore -> OffsetManager -> QueueStore -> registry; a
// failure at any step aborts the remaining steps and is surfaced
// verbatim, leaving partial state for operator retry.
func (s *QueueService) RemoveQueue(topic string, queueID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Topic: topic, QueueID: queueID}
	q, ok := s.registry.get(key)
	if !ok {
		return nil
	}
	if q.Status() != StatusDisabled {
		return precondition("queue " + key.String() + " must be disabled before removal")
	}
	if q.getMessageRealCount() > 0 {
		return precondition("queue " + key.String() + " still has messages")
	}

	if err := s.messageStore.DeleteQueueMessage(topic, queueID); err != nil {
		return storageFault(err, "unable to delete messages for queue %s", key)
	}
	if err := s.offsetManager.DeleteQueueOffset(topic, queueID); err != nil {
		return storageFault(err, "unable to delete offsets for queue %s", key)
	}
	if err := s.queueStore.DeleteQueue(q); err != nil {
		return storageFault(err, "unable to delete queue %s from store", key)
	}
	q.close()
	s.registry.remove(key)
	return nil
}

// EnableQueue and DisableQueue flip a queue's persisted status then
// mirror it onto the in-memory copy. Either is a silent no-op if the
// queue is absent from memory or from the QueueStore.
func (s *QueueService) EnableQueue(topic string, queueID int64) error {
	return s.setStatus(topic, queueID, StatusEnabled)
}

func (s *QueueService) DisableQueue(topic string, queueID int64) error {
	return s.setStatus(topic, queueID, StatusDisabled)
}

func (s *QueueService) setStatus(topic string, queueID int64, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{Topic: topic, QueueID: queueID}
	q, ok := s.registry.get(key)
	if !ok {
		return nil
	}
	persisted, ok := s.queueStore.GetQueue(topic, queueID)
	if !ok {
		return nil
	}

	persisted.SetStatus(status)
	if err := s.queueStore.UpdateQueue(persisted); err != nil {
		return storageFault(err, "unable to update queue %s", key)
	}
	q.SetStatus(status)
	return nil
}

// GetAllTopics returns every distinct topic with at least one
// resident queue.
func (s *QueueService) GetAllTopics() []string {
	seen := map[string]struct{}{}
	var topics []string
	for _, q := range s.registry.values() {
		if _, ok := seen[q.Topic()]; ok {
			continue
		}
		seen[q.Topic()] = struct{}{}
		topics = append(topics, q.Topic())
	}
	return topics
}

func (s *QueueService) GetAllQueueCount() int {
	return len(s.registry.values())
}

func (s *QueueService) GetAllQueueIndexCount() int64 {
	var total int64
	for _, q := range s.registry.values() {
		total += q.getMessageCount()
	}
	return total
}

func (s *QueueService) GetAllQueueUnConsumedMessageCount() int64 {
	var total int64
	for _, q := range s.registry.values() {
		total += q.getMessageRealCount()
	}
	return total
}

// GetQueueMinMessageOffset returns the minimum resident min-offset
// across every queue, or -1 if the registry is empty.
func (s *QueueService) GetQueueMinMessageOffset() int64 {
	queues := s.registry.values()
	if len(queues) == 0 {
		return -1
	}
	min := queues[0].getMinQueueOffset()
	for _, q := range queues[1:] {
		if v := q.getMinQueueOffset(); v < min {
			min = v
		}
	}
	return min
}

func (s *QueueService) IsQueueExist(topic string, queueID int64) bool {
	return s.registry.containsKey(Key{Topic: topic, QueueID: queueID})
}

func (s *QueueService) GetQueueCurrentOffset(topic string, queueID int64) int64 {
	q, ok := s.registry.get(Key{Topic: topic, QueueID: queueID})
	if !ok {
		return -1
	}
	return q.CurrentOffset()
}

func (s *QueueService) GetQueueMinOffset(topic string, queueID int64) int64 {
	q, ok := s.registry.get(Key{Topic: topic, QueueID: queueID})
	if !ok {
		return -1
	}
	return q.getMinQueueOffset()
}

func (s *QueueService) GetQueue(topic string, queueID int64) (*Queue, bool) {
	return s.registry.get(Key{Topic: topic, QueueID: queueID})
}

// QueryQueues returns every queue whose topic contains topic as a
// substring (admin fuzzy search).
func (s *QueueService) QueryQueues(topic string) []*Queue {
	var out []*Queue
	for _, q := range s.registry.values() {
		if strings.Contains(q.Topic(), topic) {
			out = append(out, q)
		}
	}
	return out
}

// FindQueues returns every queue with an exact topic match, optionally
// filtered by status.
func (s *QueueService) FindQueues(topic string, status *Status) []*Queue {
	var out []*Queue
	for _, q := range s.registry.values() {
		if q.Topic() != topic {
			continue
		}
		if status != nil && q.Status() != *status {
			continue
		}
		out = append(out, q)
	}
	return out
}

// GetOrCreateQueues returns the exact-topic queues, optionally
// filtered by status, auto-creating the topic first if none exist and
// AutoCreateTopic is enabled.
func (s *QueueService) GetOrCreateQueues(topic string, status *Status) ([]*Queue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.findQueuesLocked(topic, nil)) == 0 && s.cfg.AutoCreateTopic {
		if err := s.createTopicLocked(topic, s.cfg.TopicDefaultQueueCount); err != nil {
			return nil, err
		}
	}
	return s.findQueuesLocked(topic, status), nil
}

func (s *QueueService) findQueuesLocked(topic string, status *Status) []*Queue {
	return s.FindQueues(topic, status)
}
