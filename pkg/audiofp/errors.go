package audiofp

import "fmt"

// Kind classifies a pipeline failure per spec.md §7.
type Kind int

const (
	// InvalidInput covers empty buffers, odd-length stereo, bad FFT/hop/window
	// sizes, non-positive rates, mismatched batch list lengths, and
	// out-of-range quantisation parameters.
	InvalidInput Kind = iota
	// Unsupported covers channel counts the preprocessor cannot downmix.
	Unsupported
	// Truncated covers codec input too short to satisfy its declared count.
	Truncated
	// Resource covers scratch-allocation failures; rare, fatal to the run.
	Resource
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case Unsupported:
		return "unsupported"
	case Truncated:
		return "truncated"
	case Resource:
		return "resource"
	default:
		return "unknown"
	}
}

// Error is the typed error every stage returns. Stages fail fast; the
// Batch Driver is the only component that catches and attributes these
// per-item rather than letting them propagate.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New builds an *Error with a fixed message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
