package queue

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// StartupLoader walks the on-disk chunk directory tree and
// repopulates a QueueRegistry from it. The tree is assumed to be
// exactly two levels deep: basePath/<topic>/<queueId>. Topic-level
// directories are passed over; a deeper directory or a non-numeric
// queueId is a startup fault.
type StartupLoader struct {
	cfg           Config
	offsetManager OffsetManager
	registry      *QueueRegistry
}

// load enumerates every directory under cfg.BasePath, sorted in
// case-insensitive ordinal order on the full path string, skips the
// base path itself, and constructs, loads, and registers a Queue for
// each remaining directory.
func (l *StartupLoader) load() error {
	if _, err := os.Stat(l.cfg.BasePath); os.IsNotExist(err) {
		return nil
	}

	var dirs []string
	err := filepath.Walk(l.cfg.BasePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "unable to walk base path %q", l.cfg.BasePath)
	}

	sort.Slice(dirs, func(i, j int) bool { return strings.ToLower(dirs[i]) < strings.ToLower(dirs[j]) })
	if len(dirs) == 0 {
		return nil
	}
	dirs = dirs[1:] // skip the base path itself

	for _, dir := range dirs {
		rel, err := filepath.Rel(l.cfg.BasePath, dir)
		if err != nil {
			return errors.Wrapf(err, "unable to relativize %q", dir)
		}
		// The layout is exactly two levels deep; a topic-level
		// directory (one component) is an intermediate node, not a
		// queue directory, and is passed over here.
		if filepath.Dir(rel) == "." {
			continue
		}

		topic, queueID, err := parseQueueDirectory(rel)
		if err != nil {
			return errors.Wrapf(err, "malformed chunk directory %q", dir)
		}

		q := newQueue(l.cfg.BasePath, topic, queueID, l.offsetManager)
		if err := q.load(); err != nil {
			return errors.Wrapf(err, "unable to load queue %s/%d", topic, queueID)
		}
		l.registry.tryInsert(q.Key(), q)
	}
	return nil
}

// parseQueueDirectory interprets rel, which must have exactly two
// components, as <topic>/<queueId>.
func parseQueueDirectory(rel string) (topic string, queueID int64, err error) {
	topic = filepath.Dir(rel)
	if filepath.Dir(topic) != "." {
		return "", 0, errors.Errorf("directory %q is deeper than <topic>/<queueId>", rel)
	}
	queueID, err = strconv.ParseInt(filepath.Base(rel), 10, 64)
	if err != nil {
		return "", 0, errors.Wrapf(err, "queueId segment %q is not an integer", filepath.Base(rel))
	}
	return topic, queueID, nil
}
