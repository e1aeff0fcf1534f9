package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustPlacements(t *testing.T, placements ...Placement) *Board {
	t.Helper()
	b, err := FromPlacements(placements...)
	require.NoError(t, err)
	return b
}

func randomBoard(r *rand.Rand) *Board {
	b := NewEmpty()
	for i := range b.cells {
		b.cells[i] = Pebble(r.Intn(3) - 1)
	}
	b.recount()
	return b
}

func positions(steps []Step) []Position {
	out := make([]Position, len(steps))
	for i, s := range steps {
		out[i] = s.Position
	}
	return out
}

func TestFindPath(t *testing.T) {
	t.Run("zero steps for an orthogonally clogged pebble", func(t *testing.T) {
		b := mustPlacements(t, Placement{Pebble: Red, Rows: []int{1, 2, 3}, Columns: []int{1, 2, 3}})

		path, ok, err := FindPath(b, 2, 2, Left, nil)

		require.NoError(t, err)
		require.False(t, ok, "surrounded pebble cannot attack")
		require.Empty(t, path.Steps)
	})

	t.Run("capture after one loop", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)

		path, ok, err := FindPath(b, 2, 1, Right, nil)

		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, path.IsCapture)
		require.Equal(t, []Position{
			{2, 2}, {2, 3}, {2, 4}, {2, 5},
			{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3},
		}, positions(path.Steps))
		require.Equal(t, 1, path.Loops())
		require.True(t, path.Steps[4].Loop)
		require.Equal(t, Down, path.Steps[4].Direction)
		last, _ := path.Last()
		require.Equal(t, Position{4, 3}, last.Position)
	})

	t.Run("passing over the origin once is tolerated", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 2},
			Placement{Pebble: Black, Row: 3, Column: 4},
		)

		path, ok, err := FindPath(b, 2, 2, Left, nil)

		require.NoError(t, err)
		require.True(t, ok)
		require.Len(t, path.Steps, 13)
		require.Equal(t, Position{2, 2}, path.Steps[4].Position, "path crosses its origin")
		require.Equal(t, 2, path.Loops())
		last, _ := path.Last()
		require.Equal(t, Position{3, 4}, last.Position)
	})

	t.Run("second visit of the origin is infeasible", func(t *testing.T) {
		b := mustPlacements(t, Placement{Pebble: Red, Row: 2, Column: 2})

		_, ok, err := FindPath(b, 2, 2, Left, nil)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("own pebble after a loop is infeasible", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Red, Row: 0, Column: 3},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)

		_, ok, err := FindPath(b, 2, 1, Right, nil)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("opponent met before any loop is not an attack", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 2, Column: 4},
		)

		_, ok, err := FindPath(b, 2, 1, Right, nil)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("empty cut after a loop ends without capture", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)
		cut := Position{1, 3}

		path, ok, err := FindPath(b, 2, 1, Right, &cut)

		require.NoError(t, err)
		require.True(t, ok)
		require.False(t, path.IsCapture)
		require.Len(t, path.Steps, 6)
		last, _ := path.Last()
		require.Equal(t, cut, last.Position)
	})

	t.Run("cut on an opposing pebble is a capture", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)
		cut := Position{4, 3}

		path, ok, err := FindPath(b, 2, 1, Right, &cut)

		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, path.IsCapture)
	})

	t.Run("cut before the first loop is not an attack", func(t *testing.T) {
		b := mustPlacements(t,
			Placement{Pebble: Red, Row: 2, Column: 1},
			Placement{Pebble: Black, Row: 4, Column: 3},
		)
		cut := Position{2, 3}

		_, ok, err := FindPath(b, 2, 1, Right, &cut)

		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("empty origin has no attack", func(t *testing.T) {
		_, ok, err := FindPath(NewEmpty(), 2, 2, Up, nil)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("attack along an edge runs into a corner", func(t *testing.T) {
		b := mustPlacements(t, Placement{Pebble: Red, Row: 0, Column: 2})

		_, _, err := FindPath(b, 0, 2, Left, nil)

		require.ErrorIs(t, err, ErrGeometry)
	})
}

func TestFindPathTerminates(t *testing.T) {
	t.Run("lone pebble never finds an attack", func(t *testing.T) {
		for i := 0; i < Cells; i++ {
			p := PositionOf(i)
			b := NewEmpty()
			require.NoError(t, b.Place(p.Row, p.Column, Red))

			for _, d := range Directions {
				if !canLoop(p, d) {
					continue
				}
				_, ok, err := FindPath(b, p.Row, p.Column, d, nil)
				require.NoError(t, err, "from %v heading %v", p, d)
				require.False(t, ok, "from %v heading %v", p, d)
			}
		}
	})

	t.Run("random boards never reach the geometry error", func(t *testing.T) {
		r := rand.New(rand.NewSource(7))
		for n := 0; n < 200; n++ {
			b := randomBoard(r)
			for pos, p := range b.All() {
				if !p.IsPlayer() {
					continue
				}
				for _, d := range Directions {
					if !canLoop(pos, d) {
						continue
					}
					_, _, err := FindPath(b, pos.Row, pos.Column, d, nil)
					require.NoError(t, err, "board\n%sfrom %v heading %v", b, pos, d)
				}
			}
		}
	})
}

func TestCanAttack(t *testing.T) {
	t.Run("feasibility matches the recorded path", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		for n := 0; n < 100; n++ {
			b := randomBoard(r)
			before := b.Snapshot()

			for pos, p := range b.All() {
				if !p.IsPlayer() {
					continue
				}
				for _, d := range Directions {
					if !canLoop(pos, d) {
						continue
					}
					first, err := CanAttack(b, pos.Row, pos.Column, d, nil)
					require.NoError(t, err)
					second, err := CanAttack(b, pos.Row, pos.Column, d, nil)
					require.NoError(t, err)
					_, recorded, err := FindPath(b, pos.Row, pos.Column, d, nil)
					require.NoError(t, err)

					require.Equal(t, first, second, "from %v heading %v", pos, d)
					require.Equal(t, recorded, first, "from %v heading %v", pos, d)
				}
			}
			require.Equal(t, before, b.Snapshot(), "path finding must not touch the board")
		}
	})
}
