package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func layout(robot Robot, packages ...Package) *Warehouse {
	return NewWarehouseFrom(StandardRules(),
		[2]Robot{robot, {Position: Position{X: 4, Y: 4}}},
		packages,
		nil,
	)
}

func TestSmartHeuristic(t *testing.T) {
	t.Run("closer pickup scores strictly higher", func(t *testing.T) {
		pkg := Package{Position: Position{X: 0, Y: 0}, Destination: Position{X: 3, Y: 3}}

		prev := SmartHeuristic(layout(Robot{Position: Position{X: 0, Y: 0}}, pkg), 0)
		for _, p := range []Position{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}} {
			got := SmartHeuristic(layout(Robot{Position: p}, pkg), 0)
			require.Less(t, got, prev, "Moving away from the pickup to %v should lower the score", p)
			prev = got
		}
	})

	t.Run("closer destination scores strictly higher while holding", func(t *testing.T) {
		held := &Package{Position: Position{X: 4, Y: 0}, Destination: Position{X: 0, Y: 0}}

		prev := SmartHeuristic(layout(Robot{Position: Position{X: 0, Y: 0}, Package: held}), 0)
		for _, p := range []Position{{X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 3, Y: 3}} {
			got := SmartHeuristic(layout(Robot{Position: p, Package: held}), 0)
			require.Less(t, got, prev, "Moving away from the destination to %v should lower the score", p)
			prev = got
		}
	})

	t.Run("uses the nearest open package", func(t *testing.T) {
		near := Package{Position: Position{X: 1, Y: 0}, Destination: Position{X: 4, Y: 4}}
		far := Package{Position: Position{X: 3, Y: 3}, Destination: Position{X: 0, Y: 4}}

		got := SmartHeuristic(layout(Robot{Position: Position{X: 0, Y: 0}}, far, near), 0)

		require.Equal(t, -1.0, got)
	})

	t.Run("credit dominates position", func(t *testing.T) {
		pkg := Package{Position: Position{X: 4, Y: 3}, Destination: Position{X: 0, Y: 0}}

		got := SmartHeuristic(layout(Robot{Position: Position{X: 0, Y: 0}, Credit: 2}, pkg), 0)

		require.Equal(t, 2.0*CreditWeight-7, got)
	})

	t.Run("holding adds the offset", func(t *testing.T) {
		held := &Package{Position: Position{X: 0, Y: 0}, Destination: Position{X: 0, Y: 3}}

		got := SmartHeuristic(layout(Robot{Position: Position{X: 0, Y: 0}, Package: held}), 0)

		require.Equal(t, float64(HoldingOffset-3), got)
	})

	t.Run("falls back to zero distance without open packages", func(t *testing.T) {
		require.NotPanics(t, func() {
			got := SmartHeuristic(layout(Robot{Position: Position{X: 2, Y: 2}, Credit: 1}), 0)
			require.Equal(t, float64(CreditWeight), got)
		})
	})

	t.Run("does not mutate the state", func(t *testing.T) {
		held := &Package{Position: Position{X: 0, Y: 0}, Destination: Position{X: 0, Y: 3}}
		state := layout(Robot{Position: Position{X: 1, Y: 1}, Package: held}, Package{Position: Position{X: 2, Y: 2}, Destination: Position{X: 0, Y: 0}})
		before := state.Copy()

		SmartHeuristic(state, 0)
		SmartHeuristic(state, 1)

		require.Equal(t, before, state)
	})
}

func TestCreditHeuristic(t *testing.T) {
	state := layout(Robot{Credit: 5})
	state.Robots[1].Credit = 2

	require.Equal(t, 3.0, CreditHeuristic(state, 0))
	require.Equal(t, -3.0, CreditHeuristic(state, 1))
}
