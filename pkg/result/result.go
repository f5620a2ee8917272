package result

// Kind classifies a failed Result so callers can map it to a transport status.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindNotFound
	KindAuthorization
	KindConflict
	KindAuthentication
	KindUnexpected
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	default:
		return "unexpected"
	}
}

// Unit is the value carried by results of operations that return nothing.
type Unit struct{}

// Result is either a success carrying a value or a failure carrying a message and kind.
type Result[T any] struct {
	value   T
	message string
	kind    Kind
	ok      bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

func Failure[T any](kind Kind, message string) Result[T] {
	if kind == KindNone {
		kind = KindUnexpected
	}
	return Result[T]{message: message, kind: kind}
}

func Validation[T any](message string) Result[T] { return Failure[T](KindValidation, message) }
func NotFound[T any](message string) Result[T] { return Failure[T](KindNotFound, message) }
func Forbidden[T any](message string) Result[T] { return Failure[T](KindAuthorization, message) }
func Conflict[T any](message string) Result[T] { return Failure[T](KindConflict, message) }
func Unauthenticated[T any](message string) Result[T] { return Failure[T](KindAuthentication, message) }
func Unexpected[T any](message string) Result[T] { return Failure[T](KindUnexpected, message) }

// Propagate re-types a failure so it can be returned from a handler with a different value type.
func Propagate[T, U any](r Result[U]) Result[T] {
	return Failure[T](r.kind, r.message)
}

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value, or the zero value of T on failure.
func (r Result[T]) Value() T { return r.value }

// Message returns the failure message; empty on success.
func (r Result[T]) Message() string { return r.message }

func (r Result[T]) Kind() Kind { return r.kind }
