package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("material", func(t *testing.T) {
		require.Zero(t, EvaluateMaterial(New(), Red))

		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Columns: []int{1, 2, 3}},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)
		require.InDelta(t, 0.5, EvaluateMaterial(b, Red), 1e-9)
		require.InDelta(t, -0.5, EvaluateMaterial(b, Black), 1e-9)
	})

	t.Run("finished games score the extremes", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 3, Column: 4},
			Placement{Pebble: Black, Row: 2, Column: 4},
		)
		require.NoError(t, b.Step(3, 4, 2, 4, Capturing()))

		require.Equal(t, 1.0, EvaluateMaterial(b, Red))
		require.Equal(t, -1.0, EvaluateThreats(b, Black))
	})

	t.Run("threats blend attacks with material", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 4, Column: 3},
			Placement{Pebble: Black, Row: 5, Column: 5},
		)
		red, black := b.countAttacks(Red), b.countAttacks(Black)
		require.Positive(t, red)
		require.Positive(t, black, "attack paths run both ways")

		want := (EvaluateMaterial(b, Red) + normalize(float64(red), float64(black))) / 2
		require.InDelta(t, want, EvaluateThreats(b, Red), 1e-9)
		require.InDelta(t, -want, EvaluateThreats(b, Black), 1e-9)
	})
}
