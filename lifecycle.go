package rawvec

// Lifecycle defines how elements of type T behave inside raw storage:
// construction, copying, relocation, and destruction. A Vector binds one
// Lifecycle when it is created and resolves the relocation rule from the
// trait methods once; behavior is never re-resolved per element.
//
// Contract:
//   - MoveAssign must not fail.
//   - Move may fail only when MoveCannotFail reports false.
//   - Copy and Assign are called only when Copyable reports true.
//   - Destroy must tolerate vacated (moved-from) elements; every element a
//     container constructed or adopted is destroyed exactly once.
type Lifecycle[T any] interface {
	// New default-constructs an element.
	New() (T, error)

	// Copy constructs an independent duplicate of src.
	Copy(src *T) (T, error)

	// Move relocates src into a fresh element, leaving src vacated.
	Move(src *T) (T, error)

	// Assign overwrites the live element dst with a copy of src.
	Assign(dst, src *T) error

	// MoveAssign overwrites the live element dst with src, vacating src.
	MoveAssign(dst, src *T)

	// Destroy ends the element's life and releases whatever it holds.
	Destroy(*T)

	// MoveCannotFail reports whether Move is guaranteed to succeed.
	MoveCannotFail() bool

	// Copyable reports whether Copy and Assign are available.
	Copyable() bool
}

// Plain returns the Lifecycle for value-semantic element types: the zero
// value is a valid default, plain assignment is a full copy, and elements
// hold nothing the garbage collector cannot reclaim on its own.
func Plain[T any]() Lifecycle[T] {
	return plain[T]{}
}

type plain[T any] struct{}

func (plain[T]) New() (T, error) {
	var zero T
	return zero, nil
}

func (plain[T]) Copy(src *T) (T, error) {
	return *src, nil
}

func (plain[T]) Move(src *T) (T, error) {
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (plain[T]) Assign(dst, src *T) error {
	*dst = *src
	return nil
}

func (plain[T]) MoveAssign(dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

func (plain[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

func (plain[T]) MoveCannotFail() bool { return true }

func (plain[T]) Copyable() bool { return true }
