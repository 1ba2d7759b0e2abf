package engine

import (
	"testing"
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/searcher"
	"warehouse/searcher/agent"

	"github.com/stretchr/testify/require"
)

var _ Engine = (*LocalEngine)(nil)

// fixedAgent always answers with the same operator.
type fixedAgent game.Operator

func (a fixedAgent) FindMove(state game.State, robot game.AgentID) (game.Operator, metrics.SearchMetric) {
	return game.Operator(a), metrics.SearchMetric{}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays until the step budget runs out", func(t *testing.T) {
		state, err := game.NewWarehouse(game.Rules{Size: 5, Steps: 12, Battery: 10, Packages: 2, ChargeStations: 2, Queue: 4}, 3)
		require.NoError(t, err)
		agents := [2]agent.Agent{
			agent.NewSearchAgent(searcher.New(searcher.AlphaBeta, searcher.WithDepth(2), searcher.WithMetrics())),
			agent.NewRandomAgent(1),
		}

		winner, gameMetric, moveMetrics := Local(agents, state, 0, 100).Run()

		require.True(t, state.Done())
		require.Len(t, moveMetrics, 12)
		require.Equal(t, 12, gameMetric.TotalMoves)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, int(state.Winner()), winner)
		require.Equal(t, 0, moveMetrics[0].Robot)
		require.Equal(t, 1, moveMetrics[1].Robot, "Turns should alternate")
		require.Equal(t, "alphabeta", moveMetrics[0].Strategy)
	})

	t.Run("stops at the max number of turns", func(t *testing.T) {
		state, err := game.NewWarehouse(game.StandardRules(), 4)
		require.NoError(t, err)
		agents := [2]agent.Agent{fixedAgent(game.Park), fixedAgent(game.Park)}

		winner, _, moveMetrics := Local(agents, state, 1, 5).Run()

		require.Len(t, moveMetrics, 5)
		require.Equal(t, 1, moveMetrics[0].Robot, "Robot 1 should start")
		require.Equal(t, -1, winner, "Unfinished games have no winner")
	})

	t.Run("replaces illegal moves with the first legal one", func(t *testing.T) {
		state := game.NewWarehouseFrom(game.Rules{Size: 3, Steps: 2, Battery: 5, Queue: 1, Packages: 1},
			[2]game.Robot{{Position: game.Position{X: 0, Y: 0}, Battery: 5}, {Position: game.Position{X: 2, Y: 2}, Battery: 5}},
			nil, nil)
		agents := [2]agent.Agent{fixedAgent(game.DropOff), fixedAgent(game.Park)}

		_, _, moveMetrics := Local(agents, state, 0, 10).Run()

		require.Equal(t, string(game.MoveSouth), moveMetrics[0].Operator)
		require.Equal(t, game.Position{X: 0, Y: 1}, state.Robots[0].Position)
	})
}
