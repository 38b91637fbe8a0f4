package queue

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// indexEntryLength is the on-disk size of one index record: an 8-byte
// big-endian queueOffset followed by an 8-byte big-endian
// messagePosition.
const indexEntryLength = 16

// indexSegmentMaxEntries bounds how many records a single segment
// file holds before a new one is rolled. The production message
// store's own chunk size is that store's concern, not this core's;
// this constant only governs the index cache's own files.
const indexSegmentMaxEntries = 100000

// indexEntry is one (queueOffset, messagePosition) pair.
type indexEntry struct {
	queueOffset     int64
	messagePosition int64
}

func encodeEntry(e indexEntry) [indexEntryLength]byte {
	var b [indexEntryLength]byte
	binary.BigEndian.PutUint64(b[0:8], uint64(e.queueOffset))
	binary.BigEndian.PutUint64(b[8:16], uint64(e.messagePosition))
	return b
}

func decodeEntry(b []byte) indexEntry {
	return indexEntry{
		queueOffset:     int64(binary.BigEndian.Uint64(b[0:8])),
		messagePosition: int64(binary.BigEndian.Uint64(b[8:16])),
	}
}

// segmentName formats a segment's base queueOffset as a fixed-width,
// zero-padded decimal string, the same naming convention the teacher
// uses for its own .dat files, so lexical and numeric ordering agree.
func segmentName(baseOffset int64) string {
	return fmt.Sprintf("%016d", baseOffset)
}

func parseSegmentName(name string) (int64, error) {
	return strconv.ParseInt(name, 10, 64)
}

// chunkDir returns the on-disk directory for one queue's index
// segments: <basePath>/<topic>/<queueId>.
func chunkDir(basePath, topic string, queueID int64) string {
	return filepath.Join(basePath, topic, strconv.FormatInt(queueID, 10))
}

// sortedSegmentNames returns the segment filenames under dir in
// ascending base-offset order, skipping anything that doesn't parse
// as a segment name.
func sortedSegmentNames(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	filtered := names[:0]
	for _, n := range names {
		if _, err := parseSegmentName(n); err == nil {
			filtered = append(filtered, n)
		}
	}
	sort.Strings(filtered)
	return filtered, nil
}

// readSegment reads every index entry from the segment file at path.
// A size not evenly divisible by indexEntryLength indicates a torn
// final write; the partial trailing record is dropped.
func readSegment(path string) ([]indexEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	size := info.Size() - info.Size()%indexEntryLength
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}

	entries := make([]indexEntry, 0, size/indexEntryLength)
	for off := int64(0); off < size; off += indexEntryLength {
		entries = append(entries, decodeEntry(buf[off:off+indexEntryLength]))
	}
	return entries, nil
}

// chunkWriter appends index entries to a queue's current segment
// file, rolling to a new segment once indexSegmentMaxEntries is
// reached. Index growth is driven by the broker's produce path
// (out of scope here); this core only needs to keep the writer
// mutually exclusive with eviction, which the Queue mutex guarantees.
type chunkWriter struct {
	dir     string
	file    *os.File
	base    int64
	entries int64
}

func openChunkWriter(dir string, segmentBase, entriesInSegment int64) (*chunkWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "unable to create chunk directory %q", dir)
	}
	path := filepath.Join(dir, segmentName(segmentBase))
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open segment %q", path)
	}
	return &chunkWriter{dir: dir, file: f, base: segmentBase, entries: entriesInSegment}, nil
}

func (w *chunkWriter) append(e indexEntry) error {
	if w.entries >= indexSegmentMaxEntries {
		if err := w.roll(e.queueOffset); err != nil {
			return err
		}
	}
	enc := encodeEntry(e)
	if _, err := w.file.Write(enc[:]); err != nil {
		return errors.Wrapf(err, "unable to append index entry in %q", w.dir)
	}
	w.entries++
	return nil
}

func (w *chunkWriter) roll(newBase int64) error {
	if err := w.file.Close(); err != nil {
		return err
	}
	path := filepath.Join(w.dir, segmentName(newBase))
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return errors.Wrapf(err, "unable to roll segment %q", path)
	}
	w.file = f
	w.base = newBase
	w.entries = 0
	return nil
}

func (w *chunkWriter) close() error {
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
