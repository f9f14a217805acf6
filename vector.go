package rawvec

import (
	"fmt"
	"iter"
)

// Vector is a growable array of T with explicit element lifecycle control.
//
// Elements [0, Len()) are constructed; slots [Len(), Cap()) are reserved but
// uninitialized. Every capacity change builds its result in a fresh block
// and adopts it with a constant-time swap only after all fallible work has
// succeeded, so a failed operation leaves the vector exactly as it was.
//
// Vectors that interact (Assign, MoveFrom, Swap) must be bound to the same
// element lifecycle.
type Vector[T any] struct {
	block Block[T]
	size  int
	lc    Lifecycle[T]

	// relocByMove caches the relocation rule: transfer elements between
	// blocks by move when the move cannot fail or no copy path exists,
	// otherwise by copy so a mid-transfer failure leaves the source intact.
	relocByMove bool
}

// New returns an empty vector bound to the given element lifecycle.
// No storage is reserved.
func New[T any](lc Lifecycle[T]) *Vector[T] {
	return &Vector[T]{
		lc:          lc,
		relocByMove: lc.MoveCannotFail() || !lc.Copyable(),
	}
}

// NewWithSize returns a vector holding exactly size default-constructed
// elements in exactly size reserved slots.
func NewWithSize[T any](lc Lifecycle[T], size int) (*Vector[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: size %d", ErrNegativeCount, size)
	}

	block, err := AllocBlock[T](size)
	if err != nil {
		return nil, err
	}

	for i := 0; i < size; i++ {
		e, err := lc.New()
		if err != nil {
			destroyRange(lc, block.From(0)[:i])
			block.Release()
			return nil, err
		}
		*block.At(i) = e
	}

	v := New(lc)
	v.block = block
	v.size = size
	return v, nil
}

// Len returns the live element count.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the reserved slot count.
func (v *Vector[T]) Cap() int {
	return v.block.Cap()
}

// At returns the element at index i, valid until the next mutating call.
// i must be below Len(); the bound is asserted only under the rawvec_debug
// build tag.
func (v *Vector[T]) At(i int) *T {
	if debugAsserts && (i < 0 || i >= v.size) {
		panicf("index %d out of range [0,%d)", i, v.size)
	}
	return v.block.At(i)
}

// Slice returns the contiguous live elements [0, Len()). The slice aliases
// the vector's storage and is valid until the next mutating call.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// All returns an index/element iterator over the live elements in order.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block.At(i)) {
				return
			}
		}
	}
}

// Clone copy-constructs an independent vector with exactly Len() slots.
// Element types without a copy path are relocated by move instead, which
// vacates the receiver's elements. A failure leaves the receiver untouched
// on the copy path and leaks nothing on either path.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	block, err := AllocBlock[T](v.size)
	if err != nil {
		return nil, err
	}

	dst := block.From(0)
	for i := 0; i < v.size; i++ {
		var (
			e   T
			err error
		)
		if v.lc.Copyable() {
			e, err = v.lc.Copy(v.block.At(i))
		} else {
			e, err = v.lc.Move(v.block.At(i))
		}
		if err != nil {
			destroyRange(v.lc, dst[:i])
			block.Release()
			return nil, err
		}
		dst[i] = e
	}

	c := New(v.lc)
	c.block = block
	c.size = v.size
	return c, nil
}

// MoveFrom transfers other's elements and storage into v in constant time,
// leaving other empty. v's prior elements are destroyed and its block
// released first. Self-moves are no-ops.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}

	destroyRange(v.lc, v.live())
	v.size = 0

	v.block.MoveFrom(&other.block)
	v.size = other.size
	other.size = 0
}

// Assign replaces v's contents with a copy of other's. Self-assignment is a
// no-op.
//
// When other's elements do not fit in v's reserved capacity, a complete
// temporary copy is built first and swapped in, so a failure leaves v
// untouched. Otherwise elements are assigned in place without reallocation:
// the overlapping prefix element-wise, then either the surplus trailing
// elements are destroyed or the remaining incoming ones constructed. A
// failure on the in-place path can leave a partially assigned prefix; a
// failure constructing the remainder keeps what was constructed, with Len()
// reporting exactly the live elements.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}

	if other.size > v.Cap() {
		tmp, err := other.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Close()
		return nil
	}

	overlap := min(v.size, other.size)
	for i := 0; i < overlap; i++ {
		if err := v.lc.Assign(v.block.At(i), other.block.At(i)); err != nil {
			return err
		}
	}

	if v.size > other.size {
		destroyRange(v.lc, v.block.From(other.size)[:v.size-other.size])
		v.size = other.size
		return nil
	}

	for i := v.size; i < other.size; i++ {
		e, err := v.lc.Copy(other.block.At(i))
		if err != nil {
			return err
		}
		*v.block.At(i) = e
		v.size = i + 1
	}
	return nil
}

// Reserve ensures capacity for at least capacity slots. It is a no-op when
// the reservation is already satisfied; otherwise the elements are
// transferred into a fresh block of exactly capacity slots.
func (v *Vector[T]) Reserve(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: capacity %d", ErrNegativeCount, capacity)
	}
	if capacity <= v.Cap() {
		return nil
	}
	return v.regrow(capacity, -1, nil)
}

// Resize grows or shrinks the vector to exactly size elements. Shrinking
// destroys the trailing elements in place and cannot fail. Growing reserves
// exactly size slots when needed and default-constructs the new trailing
// elements; on failure the elements constructed by this call are destroyed
// and the vector is back in its pre-call state.
func (v *Vector[T]) Resize(size int) error {
	switch {
	case size < 0:
		return fmt.Errorf("%w: size %d", ErrNegativeCount, size)
	case size == v.size:
		return nil
	case size < v.size:
		destroyRange(v.lc, v.block.From(size)[:v.size-size])
		v.size = size
		return nil
	}

	if err := v.Reserve(size); err != nil {
		return err
	}

	for i := v.size; i < size; i++ {
		e, err := v.lc.New()
		if err != nil {
			destroyRange(v.lc, v.block.From(v.size)[:i-v.size])
			return err
		}
		*v.block.At(i) = e
	}
	v.size = size
	return nil
}

// Append appends a copy of value. Amortized O(1).
func (v *Vector[T]) Append(value T) error {
	_, err := v.AppendWith(func() (T, error) { return v.lc.Copy(&value) })
	return err
}

// AppendMove appends value by moving out of it, leaving *value vacated.
func (v *Vector[T]) AppendMove(value *T) error {
	_, err := v.AppendWith(func() (T, error) { return v.lc.Move(value) })
	return err
}

// AppendWith appends the element produced by ctor, constructing it directly
// in its final slot. With spare capacity no existing element moves; on
// growth the new element is constructed into the new block before any
// survivor is transferred, so a ctor failure leaves the vector unmodified.
// The returned address is valid until the next mutating call.
func (v *Vector[T]) AppendWith(ctor func() (T, error)) (*T, error) {
	if v.size < v.Cap() {
		e, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.block.At(v.size) = e
		v.size++
		return v.block.At(v.size - 1), nil
	}

	if err := v.regrow(v.growthCap(), v.size, ctor); err != nil {
		return nil, err
	}
	return v.block.At(v.size - 1), nil
}

// RemoveLast destroys the final element and shrinks the vector by one.
// The vector must not be empty. Never fails.
func (v *Vector[T]) RemoveLast() {
	if debugAsserts && v.size == 0 {
		panicf("RemoveLast on empty vector")
	}
	v.size--
	v.lc.Destroy(v.block.At(v.size))
}

// Insert inserts a copy of value before index i. i == Len() appends.
// Average O(n) in the distance to the end.
func (v *Vector[T]) Insert(i int, value T) error {
	_, err := v.InsertWith(i, func() (T, error) { return v.lc.Copy(&value) })
	return err
}

// InsertMove inserts value before index i by moving out of it, leaving
// *value vacated.
func (v *Vector[T]) InsertMove(i int, value *T) error {
	_, err := v.InsertWith(i, func() (T, error) { return v.lc.Move(value) })
	return err
}

// InsertWith inserts the element produced by ctor before index i; i must be
// in [0, Len()] and i == Len() behaves as AppendWith. With spare capacity
// the element is constructed aside and the tail shifted one slot; on growth
// it is constructed at its destined offset in the new block before survivors
// transfer around it. A ctor failure leaves the vector unmodified. The
// returned address is valid until the next mutating call.
func (v *Vector[T]) InsertWith(i int, ctor func() (T, error)) (*T, error) {
	if debugAsserts && (i < 0 || i > v.size) {
		panicf("insert index %d out of range [0,%d]", i, v.size)
	}

	if i == v.size {
		return v.AppendWith(ctor)
	}

	if v.size < v.Cap() {
		e, err := ctor()
		if err != nil {
			return nil, err
		}
		if err := v.shiftOpen(i); err != nil {
			v.lc.Destroy(&e)
			return nil, err
		}
		v.lc.MoveAssign(v.block.At(i), &e)
		v.lc.Destroy(&e)
		v.size++
		return v.block.At(i), nil
	}

	if err := v.regrow(v.growthCap(), i, ctor); err != nil {
		return nil, err
	}
	return v.block.At(i), nil
}

// Remove deletes the element at index i, shifting the elements after it one
// slot toward the front and destroying the vacated final slot. i must be
// below Len(). O(n) in the distance to the end.
func (v *Vector[T]) Remove(i int) {
	if debugAsserts && (i < 0 || i >= v.size) {
		panicf("remove index %d out of range [0,%d)", i, v.size)
	}

	for j := i; j < v.size-1; j++ {
		v.lc.MoveAssign(v.block.At(j), v.block.At(j+1))
	}
	v.size--
	v.lc.Destroy(v.block.At(v.size))
}

// Swap exchanges contents with other in constant time. It performs no
// allocation and cannot fail.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.block.Swap(&other.block)
	v.size, other.size = other.size, v.size
}

// Close destroys all elements and releases the storage block. The vector
// stays usable as an empty vector.
func (v *Vector[T]) Close() {
	destroyRange(v.lc, v.live())
	v.size = 0
	v.block.Release()
}

// live returns the constructed window [0, size) of the block.
func (v *Vector[T]) live() []T {
	return v.block.From(0)[:v.size]
}

// growthCap returns the capacity for one doubling growth step.
func (v *Vector[T]) growthCap() int {
	if c := v.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// shiftOpen makes room at slot i by move-constructing the last element into
// the first spare slot and shifting (i, size) one step toward the end.
// Slot i is left vacated and the size unchanged; the caller accounts for
// the element now resting in the spare slot. Requires spare capacity and
// i < size.
func (v *Vector[T]) shiftOpen(i int) error {
	last, err := v.lc.Move(v.block.At(v.size - 1))
	if err != nil {
		return err
	}
	*v.block.At(v.size) = last

	for j := v.size - 1; j > i; j-- {
		v.lc.MoveAssign(v.block.At(j), v.block.At(j-1))
	}
	return nil
}

// regrow moves the vector into a freshly allocated block of newCap slots.
// When ctor is non-nil the incoming element is constructed at slot hole of
// the new block before any existing element is touched, and the survivors
// are transferred around it. The old block's elements are destroyed and its
// region released only after every fallible step has succeeded; that final
// swap is the commit point.
func (v *Vector[T]) regrow(newCap, hole int, ctor func() (T, error)) error {
	nb, err := AllocBlock[T](newCap)
	if err != nil {
		return err
	}

	live := v.live()
	prefix, suffix := live, []T(nil)
	shift := 0
	if ctor != nil {
		e, err := ctor()
		if err != nil {
			nb.Release()
			return err
		}
		*nb.At(hole) = e
		prefix, suffix = live[:hole], live[hole:]
		shift = 1
	}

	if err := v.transfer(nb.From(0)[:len(prefix)], prefix); err != nil {
		if ctor != nil {
			v.lc.Destroy(nb.At(hole))
		}
		nb.Release()
		return err
	}
	if len(suffix) > 0 {
		if err := v.transfer(nb.From(hole+1)[:len(suffix)], suffix); err != nil {
			destroyRange(v.lc, nb.From(0)[:len(prefix)])
			v.lc.Destroy(nb.At(hole))
			nb.Release()
			return err
		}
	}

	// Commit point: only now does the vector let go of its old block.
	v.block.Swap(&nb)
	destroyRange(v.lc, nb.From(0)[:v.size])
	nb.Release()
	v.size += shift
	return nil
}

// transfer relocates the elements of src into dst slot-for-slot per the
// relocation rule. On failure the elements already constructed in dst are
// destroyed and the error returned; src is mutated only on the move path.
func (v *Vector[T]) transfer(dst, src []T) error {
	for i := range src {
		var (
			e   T
			err error
		)
		if v.relocByMove {
			e, err = v.lc.Move(&src[i])
		} else {
			e, err = v.lc.Copy(&src[i])
		}
		if err != nil {
			destroyRange(v.lc, dst[:i])
			return err
		}
		dst[i] = e
	}
	return nil
}

// destroyRange ends the life of every element in elems, in order.
func destroyRange[T any](lc Lifecycle[T], elems []T) {
	for i := range elems {
		lc.Destroy(&elems[i])
	}
}
