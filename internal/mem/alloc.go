package mem

import (
	"errors"
	"fmt"
	"unsafe"
)

// MaxAllocBytes caps the byte size of a single slot region (1 TiB).
// Requests beyond it fail with ErrAllocTooLarge so the caller can recover.
const MaxAllocBytes = 1 << 40

// ErrAllocTooLarge is returned when a slot-region request exceeds
// MaxAllocBytes or its byte size does not fit in an int.
var ErrAllocTooLarge = errors.New("mem: allocation too large")

// SlotBytes returns the byte size of n slots of T and whether that size is
// within the allocator's range. Non-positive n is within range at zero bytes.
func SlotBytes[T any](n int) (int, bool) {
	if n <= 0 {
		return 0, n == 0
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0, true
	}
	if n > MaxAllocBytes/size {
		return 0, false
	}

	return n * size, true
}

// AllocSlots reserves a region of n element slots. The region is
// uninitialized in the container sense: no element lifecycle has run in any
// slot. n == 0 returns nil and never allocates.
func AllocSlots[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}

	if _, ok := SlotBytes[T](n); !ok {
		return nil, fmt.Errorf("%w: %d slots", ErrAllocTooLarge, n)
	}

	return make([]T, n), nil
}

// FreeSlots releases a region obtained from AllocSlots. No-op on nil.
// The region is cleared so nothing it referenced outlives the release.
func FreeSlots[T any](region []T) {
	if region == nil {
		return
	}
	clear(region)
}
