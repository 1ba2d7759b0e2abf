package agent

import (
	"sync"
	"warehouse/experiments/metrics"
	"warehouse/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(state game.State, robot game.AgentID) (game.Operator, metrics.SearchMetric) {
	ops := state.LegalOperators(robot)
	if len(ops) == 0 {
		return game.Park, metrics.SearchMetric{}
	}

	a.Lock()
	defer a.Unlock()

	return ops[a.rng.Intn(len(ops))], metrics.SearchMetric{Strategy: "random"}
}
