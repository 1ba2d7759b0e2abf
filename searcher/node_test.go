package searcher

import (
	"encoding/binary"
	"hash/fnv"
	"warehouse/game"
	"warehouse/utils"

	"golang.org/x/exp/rand"
)

// mockState is a synthetic game tree: every non-terminal node offers
// branching operators to whichever robot moves, and leaves are scored by path.
type mockState struct {
	path      []int
	branching int
	height    int
	onStation bool         // Both robots report standing on a charge station
	stuck     game.AgentID // Robot with no operators at interior nodes, -1 for none
	score     func(path []int) float64
}

func newMockState(branching, height int, score func(path []int) float64) *mockState {
	return &mockState{branching: branching, height: height, stuck: -1, score: score}
}

func (m *mockState) operators() []game.Operator {
	ops := make([]game.Operator, m.branching)
	for i := range ops {
		ops[i] = game.Operator(string(rune('a' + i)))
	}
	return ops
}

func (m *mockState) Clone() game.State {
	clone := *m
	clone.path = append([]int(nil), m.path...)
	return &clone
}

func (m *mockState) LegalOperators(agent game.AgentID) []game.Operator {
	if m.Done() || agent == m.stuck {
		return nil
	}
	return m.operators()
}

func (m *mockState) Apply(agent game.AgentID, op game.Operator) {
	i := utils.FindIndex(m.operators(), op)
	if i < 0 {
		panic("unknown operator")
	}
	m.path = append(m.path, i)
}

func (m *mockState) Done() bool {
	return len(m.path) >= m.height
}

func (m *mockState) Robot(agent game.AgentID) game.Robot {
	return game.Robot{}
}

func (m *mockState) Packages() []game.Package {
	return nil
}

func (m *mockState) IsChargeStation(p game.Position) bool {
	return m.onStation
}

// mockEvaluate scores a mockState by its path regardless of agent.
func mockEvaluate(s game.State, agent game.AgentID) float64 {
	m := s.(*mockState)
	return m.score(m.path)
}

// hashScore returns a deterministic pseudo random score in [0, 100) per path.
func hashScore(seed uint64) func(path []int) float64 {
	return func(path []int) float64 {
		h := fnv.New64a()
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, seed)
		h.Write(buf)
		for _, i := range path {
			binary.LittleEndian.PutUint64(buf, uint64(i))
			h.Write(buf)
		}
		return float64(h.Sum64() % 100)
	}
}

// randomWarehouse plays a few random plies into a small warehouse game.
func randomWarehouse(seed uint64) *game.Warehouse {
	rules := game.Rules{Size: 4, Steps: 14, Battery: 6, Packages: 2, ChargeStations: 2, Queue: 4}
	w, err := game.NewWarehouse(rules, seed)
	if err != nil {
		panic(err)
	}

	rng := rand.New(rand.NewSource(seed))
	plies := rng.Intn(8)
	for i := 0; i < plies; i++ {
		turn := game.AgentID(i % 2)
		ops := w.LegalOperators(turn)
		if len(ops) == 0 {
			break
		}
		w.Apply(turn, ops[rng.Intn(len(ops))])
	}
	return w
}
