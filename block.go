package rawvec

import (
	"fmt"

	"github.com/hupe1980/rawvec/internal/mem"
)

// Block is an owned, fixed-capacity run of uninitialized element slots.
//
// A block only reserves storage; it never constructs or destroys elements.
// Which slots hold live elements is the owning container's bookkeeping.
// Ownership is exclusive: blocks are moved or swapped, never copied, so
// every region is released by exactly one owner.
type Block[T any] struct {
	slots []T // nil iff capacity is zero
}

// AllocBlock reserves a block of the given slot capacity. A capacity of
// zero yields a null block and never allocates.
func AllocBlock[T any](capacity int) (Block[T], error) {
	slots, err := mem.AllocSlots[T](capacity)
	if err != nil {
		return Block[T]{}, err
	}
	return Block[T]{slots: slots}, nil
}

// Cap returns the reserved slot count.
func (b *Block[T]) Cap() int {
	return len(b.slots)
}

// At returns the slot at index i. The slot may hold a live element or raw
// reserved storage. i must be below Cap.
func (b *Block[T]) At(i int) *T {
	if debugAsserts && (i < 0 || i >= len(b.slots)) {
		panicf("block index %d out of capacity %d", i, len(b.slots))
	}
	return &b.slots[i]
}

// From returns the slots starting at offset. offset == Cap is permitted and
// yields an empty tail; anything larger is a caller-contract violation.
func (b *Block[T]) From(offset int) []T {
	if debugAsserts && (offset < 0 || offset > len(b.slots)) {
		panicf("block offset %d beyond capacity %d", offset, len(b.slots))
	}
	return b.slots[offset:]
}

// Swap exchanges ownership with other in constant time. It performs no
// allocation and cannot fail.
func (b *Block[T]) Swap(other *Block[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// MoveFrom releases the current region and adopts other's, leaving other
// null. Self-moves are no-ops.
func (b *Block[T]) MoveFrom(other *Block[T]) {
	if b == other {
		return
	}
	b.Release()
	b.slots = other.slots
	other.slots = nil
}

// Release frees the reserved region and leaves the block null. No-op on a
// null block.
func (b *Block[T]) Release() {
	mem.FreeSlots(b.slots)
	b.slots = nil
}

func panicf(format string, args ...any) {
	panic("rawvec: " + fmt.Sprintf(format, args...))
}
