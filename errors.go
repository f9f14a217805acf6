package rawvec

import (
	"errors"

	"github.com/hupe1980/rawvec/internal/mem"
)

var (
	// ErrNegativeCount is returned when a negative size or capacity is
	// requested.
	ErrNegativeCount = errors.New("rawvec: negative count")

	// ErrAllocTooLarge is returned when a requested reservation exceeds the
	// allocator's limit. Aliased from the internal allocator so callers can
	// match it with errors.Is.
	ErrAllocTooLarge = mem.ErrAllocTooLarge
)
