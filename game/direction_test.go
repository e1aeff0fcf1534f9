package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	t.Run("orthogonal displacements", func(t *testing.T) {
		from := Position{2, 2}
		cases := map[Position]Direction{
			{0, 2}: Up,
			{5, 2}: Down,
			{2, 0}: Left,
			{2, 3}: Right,
		}
		for to, want := range cases {
			got, err := DirectionOf(from, to)
			require.NoError(t, err)
			require.Equal(t, want, got, "direction to %v", to)
		}
	})

	t.Run("diagonal displacement", func(t *testing.T) {
		_, err := DirectionOf(Position{2, 2}, Position{3, 3})
		require.ErrorIs(t, err, ErrInvalidDirectionVector)
	})

	t.Run("zero displacement", func(t *testing.T) {
		_, err := DirectionOf(Position{2, 2}, Position{2, 2})
		require.ErrorIs(t, err, ErrInvalidDirectionVector)
	})
}

func TestDirectionOrientation(t *testing.T) {
	require.True(t, Left.IsHorizontal())
	require.True(t, Right.IsHorizontal())
	require.True(t, Up.IsVertical())
	require.True(t, Down.IsVertical())
	require.False(t, NoDirection.IsHorizontal())
	require.False(t, NoDirection.IsVertical())
	require.False(t, NoDirection.Valid())
	require.False(t, Direction(9).Valid())
}

func TestDirectionText(t *testing.T) {
	t.Run("names parse back", func(t *testing.T) {
		for _, d := range Directions {
			got, err := ParseDirection(d.String())
			require.NoError(t, err)
			require.Equal(t, d, got)
		}
	})

	t.Run("absent direction", func(t *testing.T) {
		got, err := ParseDirection("")
		require.NoError(t, err)
		require.Equal(t, NoDirection, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseDirection("sideways")
		require.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("json uses names", func(t *testing.T) {
		data, err := json.Marshal(struct {
			D Direction `json:"d"`
		}{Up})
		require.NoError(t, err)
		require.JSONEq(t, `{"d":"up"}`, string(data))
	})
}
