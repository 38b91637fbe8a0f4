package queue

import (
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"
)

// DirectoryWatcher is an optional, opt-in (Config.WatchForNewQueues)
// companion to StartupLoader: it watches the base path for queue
// directories created after start() and reports them via a callback,
// so a broker that creates queue directories out-of-band (e.g. a
// restored volume) picks them up without a restart.
type DirectoryWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// newDirectoryWatcher watches basePath itself (to catch brand-new topic
// directories) plus one watch per topic in topics, the already-known
// topics StartupLoader just populated the registry from — mirroring
// WatchTopics(topics []string), which takes the known topic list and
// adds one watch per topic rather than relying on a single root watch.
// Without the per-topic watches, a new queueId directory created inside
// an existing topic would never raise an event: fsnotify watches are
// non-recursive.
func newDirectoryWatcher(basePath string, topics []string, logger Logger, onCreate func(topic string, queueID int64)) (*DirectoryWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(basePath); err != nil {
		w.Close()
		return nil, err
	}
	for _, topic := range topics {
		if err := w.Add(filepath.Join(basePath, topic)); err != nil {
			w.Close()
			return nil, err
		}
	}

	dw := &DirectoryWatcher{watcher: w, done: make(chan struct{})}
	go dw.run(basePath, logger, onCreate)
	return dw, nil
}

func (w *DirectoryWatcher) run(basePath string, logger Logger, onCreate func(topic string, queueID int64)) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			rel, err := filepath.Rel(basePath, event.Name)
			if err != nil || filepath.Dir(rel) == "." {
				// a new topic directory; watch it for its queue
				// subdirectories, which arrive as separate events.
				w.watcher.Add(event.Name)
				continue
			}
			queueID, err := strconv.ParseInt(filepath.Base(rel), 10, 64)
			if err != nil {
				continue
			}
			onCreate(filepath.Dir(rel), queueID)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("queue: directory watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *DirectoryWatcher) close() error {
	close(w.done)
	return w.watcher.Close()
}
