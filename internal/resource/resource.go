// Package resource models one asynchronous fetch as a four-state machine:
// idle → loading → success | error, with error restartable into loading.
// Collapsing the usual loading/error boolean pair into one status makes
// the illegal combinations unrepresentable.
package resource

// Status is the lifecycle state of a Resource.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Resource wraps the observable state of one fetch. Like the todo store it
// is copy-on-write: transitions return a new *Resource and never touch the
// receiver, so publishing the result through a cell fires change detection.
//
// Payload is populated only in StatusSuccess, Err only in StatusError.
//
// Each Start hands out an attempt token; Resolve and Reject must present it
// back. A completion carrying a stale token, or arriving while the machine
// is not loading, is a protocol violation (an abandoned attempt settling
// late) and is dropped: the receiver comes back unchanged.
type Resource[T any] struct {
	Status  Status
	Payload T
	Err     string

	attempt uint64
}

// New returns an idle resource with no payload and no error.
func New[T any]() *Resource[T] {
	return &Resource[T]{}
}

// Start moves the machine to loading and returns the new resource plus the
// token the eventual completion must carry. Any prior payload or error is
// cleared. Starting from loading is dropped: the in-flight attempt stays
// the live one.
func (r *Resource[T]) Start() (*Resource[T], uint64) {
	if r.Status == StatusLoading {
		return r, r.attempt
	}
	next := &Resource[T]{
		Status:  StatusLoading,
		attempt: r.attempt + 1,
	}
	return next, next.attempt
}

// Resolve completes the loading attempt identified by token with payload.
// Outside loading, or with a stale token, the receiver is returned unchanged.
func (r *Resource[T]) Resolve(token uint64, payload T) *Resource[T] {
	if r.Status != StatusLoading || token != r.attempt {
		return r
	}
	return &Resource[T]{
		Status:  StatusSuccess,
		Payload: payload,
		attempt: r.attempt,
	}
}

// Reject fails the loading attempt identified by token with a message.
// Outside loading, or with a stale token, the receiver is returned unchanged.
func (r *Resource[T]) Reject(token uint64, msg string) *Resource[T] {
	if r.Status != StatusLoading || token != r.attempt {
		return r
	}
	return &Resource[T]{
		Status:  StatusError,
		Err:     msg,
		attempt: r.attempt,
	}
}
