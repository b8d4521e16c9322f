package result

// Result is a two-case outcome: a value or a failure message.
// The zero value is a failure with an empty message.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Unit is the value type for results that carry no payload.
type Unit struct{}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

func Err[T any](message string) Result[T] {
	return Result[T]{err: message}
}

func OkUnit() Result[Unit] {
	return Ok(Unit{})
}

func ErrUnit(message string) Result[Unit] {
	return Err[Unit](message)
}

func (r Result[T]) IsOk() bool {
	return r.ok
}

func (r Result[T]) IsErr() bool {
	return !r.ok
}

// Value returns the success value. Only meaningful when IsOk.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Error() string {
	return r.err
}

// Tap runs fn on the value when ok and returns the result unchanged.
func (r Result[T]) Tap(fn func(T)) Result[T] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// Map transforms the value when ok, otherwise carries the failure over.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsErr() {
		return Err[U](r.Error())
	}
	return Ok(fn(r.Value()))
}

// Bind sequences a result-producing step, short-circuiting on failure.
func Bind[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.IsErr() {
		return Err[U](r.Error())
	}
	return fn(r.Value())
}

// BindIf applies fn only when cond holds; a false cond passes the
// result through untouched.
func BindIf[T any](r Result[T], cond bool, fn func(T) Result[T]) Result[T] {
	if !cond {
		return r
	}
	return Bind(r, fn)
}

// ErrAs rewraps a failure into a result of another value type.
func ErrAs[T, U any](r Result[T]) Result[U] {
	return Err[U](r.Error())
}
