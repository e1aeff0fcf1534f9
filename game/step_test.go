package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextStraightCell(t *testing.T) {
	next, ok := nextStraightCell(2, 2, Left)
	require.True(t, ok)
	require.Equal(t, Position{2, 1}, next)

	_, ok = nextStraightCell(0, 3, Up)
	require.False(t, ok, "up from the top row leaves the board")

	_, ok = nextStraightCell(3, 5, Right)
	require.False(t, ok, "right from the last column leaves the board")

	_, ok = nextStraightCell(3, 3, NoDirection)
	require.False(t, ok)
}

func TestFindStep(t *testing.T) {
	t.Run("straight step inside the board", func(t *testing.T) {
		step, err := FindStep(3, 3, Down)
		require.NoError(t, err)
		require.Equal(t, plainStep(Position{4, 3}), step)
		require.False(t, step.Loop)
		require.Equal(t, NoDirection, step.Direction)
	})

	t.Run("loop at the board edge", func(t *testing.T) {
		step, err := FindStep(0, 3, Up)
		require.NoError(t, err)
		require.True(t, step.Loop)
		require.Equal(t, Position{2, 5}, step.Position)
		require.Equal(t, Left, step.Direction)
	})

	t.Run("corner has no loop", func(t *testing.T) {
		_, err := FindStep(0, 0, Left)
		require.ErrorIs(t, err, ErrGeometry)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := FindStep(2, 2, Direction(7))
		require.ErrorIs(t, err, ErrUnknownDirection)
	})
}
