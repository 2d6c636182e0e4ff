package flagged

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/flagged.go/layout"
)

func TestEitherRightRoundTrip(t *testing.T) {
	t.Parallel()

	set := map[int]struct{}{1: {}, 2: {}, 3: {}}
	right := Right[[]int, map[int]struct{}](set)
	require.Equal(t, set, *right.Get())
	require.Equal(t, set, right.Value())
	require.Equal(t, set, right.IntoInner())
}

func TestEitherLeftRoundTrip(t *testing.T) {
	t.Parallel()

	left := Left[[]int, map[int]struct{}]([]int{1, 2, 3})
	view := left.Get()
	*view = append(*view, 4)
	require.Equal(t, []int{1, 2, 3, 4}, left.IntoInner())
}

func TestEitherSizeIdenticalAcrossFlags(t *testing.T) {
	t.Parallel()

	t.Run("small/huge", func(t *testing.T) {
		type huge struct {
			payload [512]byte
		}
		l := layout.Of[EitherLeft[byte, huge]]()
		r := layout.Of[EitherRight[byte, huge]]()
		require.Equal(t, l.Size, r.Size)
		require.Equal(t, l.Align, r.Align)
	})
	t.Run("slice/set", func(t *testing.T) {
		l := layout.Of[EitherLeft[[]int, map[int]struct{}]]()
		r := layout.Of[EitherRight[[]int, map[int]struct{}]]()
		require.Equal(t, l.Size, r.Size)
		require.Equal(t, l.Align, r.Align)
	})
}

func TestEitherFootprint(t *testing.T) {
	t.Parallel()

	left := Left[uint32, [3]uint64](9)
	right := Right[uint32, [3]uint64]([3]uint64{1, 2, 3})
	want := layout.Of[uint32]().Union(layout.Of[[3]uint64]())
	require.Equal(t, want, left.Footprint())
	require.Equal(t, want, right.Footprint())

	// The small-variant instantiation still reserves space for the huge
	// variant.
	actual := layout.Of[EitherLeft[uint32, [3]uint64]]()
	require.GreaterOrEqual(t, actual.Size, want.Size)
	require.Equal(t, want.Align, actual.Align)
}

func TestEitherAlignmentIsMax(t *testing.T) {
	t.Parallel()

	l := layout.Of[EitherLeft[byte, uint64]]()
	require.Equal(t, layout.Of[uint64]().Align, l.Align)

	r := layout.Of[EitherRight[uint64, byte]]()
	require.Equal(t, layout.Of[uint64]().Align, r.Align)
}

func TestEitherFlip(t *testing.T) {
	t.Parallel()

	left := Left[string, int]("mirror")
	flipped := left.Flip()
	require.Equal(t, "mirror", flipped.Value())

	back := flipped.Flip()
	require.Equal(t, "mirror", back.IntoInner())
}
