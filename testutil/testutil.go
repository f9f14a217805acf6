package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/rawvec"
)

// Compile time check to ensure Tracked satisfies the lifecycle interface.
var _ rawvec.Lifecycle[int] = (*Tracked[int])(nil)

// Tracked is an element lifecycle that counts constructions and
// destructions and can be scripted to fail on a chosen fallible call.
// The traits it reports are fixed at creation, so a single test can
// exercise both relocation paths of the container.
type Tracked[T any] struct {
	moveSafe bool
	copyable bool

	live    int
	calls   int
	failAt  int
	failErr error
}

// NewTracked returns a Tracked lifecycle with the given traits. moveSafe
// selects whether Move reports as non-failing; copyable selects whether a
// copy path exists.
func NewTracked[T any](moveSafe, copyable bool) *Tracked[T] {
	return &Tracked[T]{moveSafe: moveSafe, copyable: copyable}
}

// FailAt schedules the n-th fallible lifecycle call (1-based) to fail with
// err. n == 0 disables failure injection.
func (t *Tracked[T]) FailAt(n int, err error) {
	t.failAt = n
	t.failErr = err
}

// Live returns constructions minus destructions. Zero after a Close means
// no element leaked and none was destroyed twice.
func (t *Tracked[T]) Live() int {
	return t.live
}

// Calls returns the number of fallible lifecycle calls so far.
func (t *Tracked[T]) Calls() int {
	return t.calls
}

func (t *Tracked[T]) fallible() error {
	t.calls++
	if t.failAt != 0 && t.calls == t.failAt {
		return t.failErr
	}
	return nil
}

// New default-constructs a zero element.
func (t *Tracked[T]) New() (T, error) {
	var zero T
	if err := t.fallible(); err != nil {
		return zero, err
	}
	t.live++
	return zero, nil
}

// Copy duplicates src.
func (t *Tracked[T]) Copy(src *T) (T, error) {
	if err := t.fallible(); err != nil {
		var zero T
		return zero, err
	}
	t.live++
	return *src, nil
}

// Move relocates src, leaving it vacated. It is fallible only when the
// lifecycle was created with moveSafe == false.
func (t *Tracked[T]) Move(src *T) (T, error) {
	var zero T
	if !t.moveSafe {
		if err := t.fallible(); err != nil {
			return zero, err
		}
	}
	v := *src
	*src = zero
	t.live++
	return v, nil
}

// Assign overwrites dst with a copy of src.
func (t *Tracked[T]) Assign(dst, src *T) error {
	if err := t.fallible(); err != nil {
		return err
	}
	*dst = *src
	return nil
}

// MoveAssign overwrites dst with src, vacating src.
func (t *Tracked[T]) MoveAssign(dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

// Destroy ends an element's life.
func (t *Tracked[T]) Destroy(p *T) {
	t.live--
	var zero T
	*p = zero
}

// MoveCannotFail reports the trait chosen at creation.
func (t *Tracked[T]) MoveCannotFail() bool { return t.moveSafe }

// Copyable reports the trait chosen at creation.
func (t *Tracked[T]) Copyable() bool { return t.copyable }

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0,n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}
