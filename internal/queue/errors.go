package queue

import "github.com/pkg/errors"

// Kind classifies a ServiceError so callers (and the remoting layer
// this core is embedded in) can map it to a protocol-level response
// without string matching.
type Kind int

const (
	// KindInvalidArgument covers malformed admin requests: empty
	// topic, an initial/max queue count out of range, and similar.
	KindInvalidArgument Kind = iota
	// KindPrecondition covers admin requests that are well formed but
	// arrive in the wrong queue state, e.g. removing a queue that is
	// still enabled or still has unconsumed messages.
	KindPrecondition
	// KindStorageFault wraps an error surfaced by the QueueStore,
	// MessageStore, or OffsetManager collaborators.
	KindStorageFault
)

// ServiceError is the error type returned by every QueueService admin
// mutation that can fail. NotFound conditions are reported via
// sentinel return values (-1, ok bool) or silent no-ops per spec, not
// through this type.
type ServiceError struct {
	Kind Kind
	msg  string
	err  error
}

func (e *ServiceError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *ServiceError) Unwrap() error { return e.err }

func invalidArgument(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindInvalidArgument, msg: errors.Errorf(format, args...).Error()}
}

func precondition(msg string) error {
	return &ServiceError{Kind: KindPrecondition, msg: msg}
}

func storageFault(err error, format string, args ...interface{}) error {
	return &ServiceError{Kind: KindStorageFault, msg: errors.Wrapf(err, format, args...).Error(), err: err}
}

// IsKind reports whether err is a *ServiceError of the given kind.
func IsKind(err error, kind Kind) bool {
	se, ok := err.(*ServiceError)
	return ok && se.Kind == kind
}
