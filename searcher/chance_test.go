package searcher

import (
	"slices"
	"testing"
	"warehouse/game"

	"github.com/stretchr/testify/require"
)

func TestExpectimaxValue(t *testing.T) {
	t.Run("averages the other robot's replies", func(t *testing.T) {
		s := New(Expectimax, WithEvaluationFn(mockEvaluate))

		// Means of the rows are 23/3, 4 and 7
		require.Equal(t, 23.0/3.0, s.Value(classicTree(), 0, 0, 2))
	})

	t.Run("maximizes like minimax at the root agent's ply", func(t *testing.T) {
		state := newMockState(4, 1, hashScore(7))
		expectimax := New(Expectimax, WithEvaluationFn(mockEvaluate))
		minimax := New(Minimax, WithEvaluationFn(mockEvaluate))

		require.Equal(t, minimax.Value(state, 0, 0, 1), expectimax.Value(state, 0, 0, 1))
	})

	t.Run("charge station weighting keeps the mean", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			plain := newMockState(3, 3, hashScore(seed))
			charging := newMockState(3, 3, hashScore(seed))
			charging.onStation = true
			s := New(Expectimax, WithEvaluationFn(mockEvaluate))

			require.Equal(t, s.Value(plain, 0, 1, 3), s.Value(charging, 0, 1, 3), "seed=%d", seed)
		}
	})

	t.Run("chance ply lies between its children's values", func(t *testing.T) {
		for seed := uint64(0); seed < 30; seed++ {
			state := newMockState(1+int(seed%4), 3, hashScore(seed))
			s := New(Expectimax, WithEvaluationFn(mockEvaluate))

			got := s.Value(state, 0, 1, 3)

			var children []float64
			for _, op := range state.LegalOperators(1) {
				child := state.Clone()
				child.Apply(1, op)
				children = append(children, s.Value(child, 0, 0, 2))
			}
			// Children are themselves averages, so allow for rounding in the sum
			require.GreaterOrEqual(t, got, slices.Min(children)-1e-9, "seed=%d", seed)
			require.LessOrEqual(t, got, slices.Max(children)+1e-9, "seed=%d", seed)
		}
	})

	t.Run("chance ply on warehouse states lies between its children's values", func(t *testing.T) {
		for seed := uint64(0); seed < 20; seed++ {
			state := randomWarehouse(seed)
			if state.Done() || state.IsChargeStation(state.Robot(1).Position) {
				continue
			}
			s := New(Expectimax)

			got := s.Value(state, 0, 1, 2)

			var children []float64
			for _, op := range state.LegalOperators(1) {
				child := state.Clone()
				child.Apply(1, op)
				children = append(children, s.Value(child, 0, 0, 1))
			}
			require.GreaterOrEqual(t, got, slices.Min(children), "seed=%d", seed)
			require.LessOrEqual(t, got, slices.Max(children), "seed=%d", seed)
		}
	})
}

func TestOutcomeWeight(t *testing.T) {
	t.Run("doubles outcomes when the other robot is on a charge station", func(t *testing.T) {
		state := game.NewWarehouseFrom(game.StandardRules(),
			[2]game.Robot{{Position: game.Position{X: 0, Y: 0}}, {Position: game.Position{X: 2, Y: 2}}},
			nil,
			[]game.Position{{X: 2, Y: 2}},
		)

		require.Equal(t, ChargeWeight, outcomeWeight(state, 1))
		require.Equal(t, 1.0, outcomeWeight(state, 0))
	})
}
