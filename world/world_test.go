package world

import (
	"testing"

	"pursuit/game"

	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, text string, options ...Option) *World {
	t.Helper()
	l, err := ParseLayout(t.Name(), text)
	require.NoError(t, err)
	return NewWorld(l, options...)
}

func TestWorldRules(t *testing.T) {
	t.Run("eating food and a scared ghost before winning", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%%%\n%P.o.G%\n%%%%%%%\n")
		require.Equal(t, 2, w.NumAgents())
		require.Equal(t, []game.Action{game.East, game.Stop}, w.AvailableActions(0))

		var s game.State = w
		s = s.GenerateNextState(0, game.East)
		require.Equal(t, 9.0, s.Score(), "move costs 1 and food pays 10")
		require.Len(t, s.Food(), 1, "one food should remain")

		require.Equal(t, []game.Action{game.West}, s.AvailableActions(1), "ghost may only head west")
		s = s.GenerateNextState(1, game.West)

		s = s.GenerateNextState(0, game.East)
		require.Equal(t, 8.0, s.Score(), "capsule is worth nothing by itself")
		require.Empty(t, s.Capsules(), "capsule should be eaten")
		require.Equal(t, 40, s.GhostStates()[0].ScaredTimer, "ghost should be scared")

		s = s.GenerateNextState(1, game.West)
		require.Equal(t, 208.0, s.Score(), "eating a scared ghost pays 200")
		require.Equal(t, game.GhostState{Position: game.Position{X: 5, Y: 1}}, s.GhostStates()[0], "ghost should respawn unscared")
		require.False(t, s.IsLose())

		s = s.GenerateNextState(0, game.East)
		require.True(t, s.IsWin(), "clearing the food wins")
		require.Equal(t, 717.0, s.Score(), "last food pays 10 plus 500")
		require.Empty(t, s.AvailableActions(0), "no actions after a win")
		require.Empty(t, s.AvailableActions(1), "no actions after a win")
	})

	t.Run("losing on contact with a normal ghost", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%%\n%P G.%\n%%%%%%\n")

		s := w.GenerateNextState(0, game.East)
		s = s.GenerateNextState(1, game.West)

		require.True(t, s.IsLose())
		require.Equal(t, -501.0, s.Score())
		require.Empty(t, s.AvailableActions(0))
		require.Panics(t, func() { s.GenerateNextState(0, game.Stop) }, "finished games have no successors")
	})

	t.Run("counting down the scared timer on ghost moves", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%%%%\n%Po.  G%\n%%%%%%%%\n", WithScaredTime(2))

		s := w.GenerateNextState(0, game.East)
		require.Equal(t, 2, s.GhostStates()[0].ScaredTimer)
		s = s.GenerateNextState(1, game.West)
		require.Equal(t, 1, s.GhostStates()[0].ScaredTimer)
		s = s.GenerateNextState(0, game.Stop)
		require.Equal(t, 1, s.GhostStates()[0].ScaredTimer, "pacman moves do not count down")
		s = s.GenerateNextState(1, game.East)
		require.Equal(t, 0, s.GhostStates()[0].ScaredTimer)
		require.False(t, s.GhostStates()[0].IsScared())
	})

	t.Run("stopping a boxed in ghost", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%\n%P%G%\n%%%%%\n")

		require.Equal(t, []game.Action{game.Stop}, w.AvailableActions(0))
		require.Equal(t, []game.Action{game.Stop}, w.AvailableActions(1))
	})

	t.Run("leaving the receiver untouched", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%%\n%P.G.%\n%%%%%%\n")

		next := w.GenerateNextState(0, game.East)

		require.Equal(t, 0.0, w.Score(), "receiver score should not change")
		require.Len(t, w.Food(), 2, "receiver food should not change")
		require.Equal(t, game.Position{X: 1, Y: 1}, w.PacmanPosition())
		require.Equal(t, game.Position{X: 2, Y: 1}, next.PacmanPosition())
	})

	t.Run("rejecting illegal actions", func(t *testing.T) {
		w := newTestWorld(t, "%%%%\n%P.%\n%%%%\n")

		require.Panics(t, func() { w.GenerateNextState(0, game.North) }, "walking into a wall is illegal")
	})

	t.Run("drawing the board", func(t *testing.T) {
		w := newTestWorld(t, "%%%%%\n%Po.%\n%%%%%\n")

		require.Equal(t, "%%%%%\n%Po.%\n%%%%%\nScore: 0\n", w.String())
	})
}
