package rawvec_test

import (
	"math"
	"testing"

	"github.com/hupe1980/rawvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocBlockZero(t *testing.T) {
	b, err := rawvec.AllocBlock[int](0)
	require.NoError(t, err)
	assert.Zero(t, b.Cap())
	assert.Empty(t, b.From(0))

	// Release on a null block is a no-op.
	b.Release()
	assert.Zero(t, b.Cap())
}

func TestAllocBlockTooLarge(t *testing.T) {
	_, err := rawvec.AllocBlock[int64](math.MaxInt / 2)
	assert.ErrorIs(t, err, rawvec.ErrAllocTooLarge)
}

func TestBlockAddressing(t *testing.T) {
	b, err := rawvec.AllocBlock[int](4)
	require.NoError(t, err)
	defer b.Release()

	assert.Equal(t, 4, b.Cap())

	for i := 0; i < 4; i++ {
		*b.At(i) = i * 10
	}

	// From(offset) aliases the same slots.
	tail := b.From(2)
	assert.Equal(t, []int{20, 30}, tail)

	// One past the end is permitted and empty.
	assert.Empty(t, b.From(4))
}

func TestBlockSwap(t *testing.T) {
	a, err := rawvec.AllocBlock[int](2)
	require.NoError(t, err)
	b, err := rawvec.AllocBlock[int](5)
	require.NoError(t, err)
	defer a.Release()
	defer b.Release()

	*a.At(0) = 1
	*b.At(0) = 2

	a.Swap(&b)

	assert.Equal(t, 5, a.Cap())
	assert.Equal(t, 2, b.Cap())
	assert.Equal(t, 2, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

func TestBlockMoveFrom(t *testing.T) {
	src, err := rawvec.AllocBlock[int](3)
	require.NoError(t, err)
	*src.At(1) = 42

	var dst rawvec.Block[int]
	dst.MoveFrom(&src)
	defer dst.Release()

	// Ownership transferred, source nulled.
	assert.Equal(t, 3, dst.Cap())
	assert.Equal(t, 42, *dst.At(1))
	assert.Zero(t, src.Cap())

	// Self-move is a no-op.
	dst.MoveFrom(&dst)
	assert.Equal(t, 3, dst.Cap())
}
