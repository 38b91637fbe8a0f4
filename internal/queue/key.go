package queue

import "strconv"

// Key is the tagged (topic, queueId) pair used as the QueueRegistry's
// map key. A formatted string is convenient but ambiguous if topics
// may themselves contain the separator used to join them, so the
// registry keys on this struct and only formats a string for logging
// (see String).
type Key struct {
	Topic   string
	QueueID int64
}

// String returns the "{topic}-{queueId}" form used for log lines and
// error messages. It is never used as a map key.
func (k Key) String() string {
	return k.Topic + "-" + strconv.FormatInt(k.QueueID, 10)
}
