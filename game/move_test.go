package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMove(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		m := NewAttack(Position{2, 1}, Position{4, 3}, Right)
		c := m.Clone()
		c.SetSource(0, 0)
		c.SetDestination(1, 1).MakeAttack(Up)

		require.Equal(t, Position{2, 1}, m.Source())
		require.Equal(t, Position{4, 3}, m.Destination())
		require.Equal(t, Right, m.Direction)
		require.Equal(t, Position{1, 1}, c.Destination())
	})

	t.Run("json descriptor", func(t *testing.T) {
		data, err := json.Marshal(NewAttack(Position{2, 1}, Position{4, 3}, Down))
		require.NoError(t, err)
		require.JSONEq(t, `{"src_row":2,"src_column":1,"dst_row":4,"dst_column":3,"is_attack":true,"direction":"down"}`, string(data))

		var m Move
		require.NoError(t, json.Unmarshal([]byte(`{"src_row":1,"src_column":1,"dst_row":2,"dst_column":2}`), &m))
		require.Equal(t, NewMove(Position{1, 1}, Position{2, 2}), m)
		require.Equal(t, NoDirection, m.Direction)
	})

	t.Run("string", func(t *testing.T) {
		require.Equal(t, "step (1, 1) -> (2, 2)", NewMove(Position{1, 1}, Position{2, 2}).String())
		require.Equal(t, "attack (2, 1) right -> (4, 3)", NewAttack(Position{2, 1}, Position{4, 3}, Right).String())
	})
}
