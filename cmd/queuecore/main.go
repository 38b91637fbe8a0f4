package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mqbroker/queuecore/internal/memconsumer"
	"github.com/mqbroker/queuecore/internal/queue"
)

// stdLogger adapts the standard library logger to queue.Logger.
type stdLogger struct {
	*log.Logger
}

func (l stdLogger) Errorf(format string, args ...interface{}) { l.Printf("ERROR "+format, args...) }
func (l stdLogger) Warnf(format string, args ...interface{})  { l.Printf("WARN "+format, args...) }
func (l stdLogger) Infof(format string, args ...interface{})  { l.Printf("INFO "+format, args...) }
func (l stdLogger) Debugf(format string, args ...interface{}) { l.Printf("DEBUG "+format, args...) }

func main() {
	var (
		basePath           string
		topicMaxQueues     int
		topicDefaultQueues int
		autoCreateTopic    bool
		cacheSize          int64
		reclaimInterval    time.Duration
		evictInterval      time.Duration
		watch              bool
	)
	flag.StringVar(&basePath, "base_path", "data", "filesystem root holding the <topic>/<queueId> chunk directories")
	flag.IntVar(&topicMaxQueues, "topic_max_queues", 16, "upper bound on queues per topic")
	flag.IntVar(&topicDefaultQueues, "topic_default_queues", 4, "queues created when a topic is auto-created")
	flag.BoolVar(&autoCreateTopic, "auto_create_topic", true, "allow getOrCreateQueues to create a missing topic")
	flag.Int64Var(&cacheSize, "queue_index_max_cache_size", 1<<20, "aggregate resident index entry ceiling")
	flag.DurationVar(&reclaimInterval, "reclaim_interval", time.Minute, "consumed-index reclamation tick period")
	flag.DurationVar(&evictInterval, "evict_interval", 30*time.Second, "exceed-cache eviction tick period")
	flag.BoolVar(&watch, "watch", false, "watch base_path for queue directories created after startup")
	flag.Parse()

	logger := stdLogger{log.New(os.Stderr, "queuecore: ", log.LstdFlags)}

	svc, err := queue.NewQueueService(
		newMemQueueStore(),
		&memMessageStore{},
		memconsumer.New(),
		newTickerScheduler(),
		queue.WithBasePath(basePath),
		queue.WithTopicMaxQueueCount(topicMaxQueues),
		queue.WithTopicDefaultQueueCount(topicDefaultQueues),
		queue.WithAutoCreateTopic(autoCreateTopic),
		queue.WithQueueIndexMaxCacheSize(cacheSize),
		queue.WithMaintenanceIntervals(reclaimInterval, evictInterval),
		queue.WithWatchForNewQueues(watch),
		queue.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("unable to configure queue service: %v", err)
	}

	if err := svc.Start(); err != nil {
		log.Fatalf("unable to start queue service: %v", err)
	}
	logger.Infof("queue service started, base_path=%s", basePath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Infof("shutting down")
	if err := svc.Shutdown(); err != nil {
		log.Fatalf("error during shutdown: %v", err)
	}
}
