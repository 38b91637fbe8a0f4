package queue

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds every QueueService setting supplied by the broker.
// QueueService treats it as read-only after construction.
type Config struct {
	BasePath string

	TopicMaxQueueCount     int
	TopicDefaultQueueCount int
	AutoCreateTopic        bool

	RemoveConsumedQueueIndexInterval      time.Duration
	RemoveExceedMaxCacheQueueIndexInterval time.Duration
	QueueIndexMaxCacheSize                int64

	WatchForNewQueues bool

	logger Logger
}

// DefaultConfig returns the settings used when the broker does not
// override them.
func DefaultConfig() Config {
	return Config{
		BasePath:                                "data",
		TopicMaxQueueCount:                      16,
		TopicDefaultQueueCount:                  4,
		AutoCreateTopic:                         true,
		RemoveConsumedQueueIndexInterval:        time.Minute,
		RemoveExceedMaxCacheQueueIndexInterval:  30 * time.Second,
		QueueIndexMaxCacheSize:                  1 << 20,
		logger:                                  DiscardLogger,
	}
}

// Option overrides a Config field produced by DefaultConfig.
type Option func(*Config) error

// WithBasePath sets the filesystem root holding the
// <topic>/<queueId> chunk directory layout.
func WithBasePath(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return errors.New("invalid base path")
		}
		c.BasePath = path
		return nil
	}
}

// WithTopicMaxQueueCount overrides the per-topic queue ceiling.
func WithTopicMaxQueueCount(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return errors.New("topic max queue count must be positive")
		}
		c.TopicMaxQueueCount = n
		return nil
	}
}

// WithTopicDefaultQueueCount overrides the queue count used when a
// topic is auto-created.
func WithTopicDefaultQueueCount(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return errors.New("topic default queue count must be positive")
		}
		c.TopicDefaultQueueCount = n
		return nil
	}
}

// WithAutoCreateTopic toggles whether getOrCreateQueues is allowed to
// create a topic on first reference.
func WithAutoCreateTopic(autoCreate bool) Option {
	return func(c *Config) error {
		c.AutoCreateTopic = autoCreate
		return nil
	}
}

// WithMaintenanceIntervals overrides the two maintenance task tick
// periods.
func WithMaintenanceIntervals(reclaim, evict time.Duration) Option {
	return func(c *Config) error {
		if reclaim <= 0 || evict <= 0 {
			return errors.New("maintenance intervals must be positive")
		}
		c.RemoveConsumedQueueIndexInterval = reclaim
		c.RemoveExceedMaxCacheQueueIndexInterval = evict
		return nil
	}
}

// WithQueueIndexMaxCacheSize overrides the aggregate resident index
// ceiling used by the exceed-cache eviction task.
func WithQueueIndexMaxCacheSize(size int64) Option {
	return func(c *Config) error {
		if size <= 0 {
			return errors.New("queue index max cache size must be positive")
		}
		c.QueueIndexMaxCacheSize = size
		return nil
	}
}

// WithWatchForNewQueues enables the optional fsnotify-backed directory
// watcher that discovers queue directories created after start().
func WithWatchForNewQueues(watch bool) Option {
	return func(c *Config) error {
		c.WatchForNewQueues = watch
		return nil
	}
}

// WithLogger overrides the logger used for maintenance diagnostics and
// storage-fault reporting.
func WithLogger(l Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l
		return nil
	}
}
