package searcher

import (
	"math"
	"sync"
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/utils"
)

type Option func(s *Searcher)

// Searcher picks a robot's next operator with a fixed ply budget. A Searcher
// must not run two FindNextMove calls at once since they share a collector.
type Searcher struct {
	strategy   Strategy
	depth      int
	goroutines int
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithGoroutines evaluates the root's children on a pool of goroutines.
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Searcher) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(strategy Strategy, options ...Option) *Searcher {
	s := &Searcher{ // Default values
		strategy:   strategy,
		depth:      DefaultDepth,
		goroutines: DefaultGoroutines,
		evaluate:   game.SmartHeuristic,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

func (s *Searcher) Depth() int {
	return s.depth
}

// FindNextMove returns agent's operator whose successor has the highest backed
// up value, the first one on ties. The root must have a legal operator.
func (s *Searcher) FindNextMove(state game.State, agent game.AgentID) (game.Operator, metrics.SearchMetric, error) {
	s.metrics.Start(s.strategy.String(), s.depth, s.goroutines)

	ops := state.LegalOperators(agent)
	if len(ops) == 0 {
		return "", s.metrics.Complete(), ErrNoLegalMoves
	}

	values := s.evaluateChildren(state, agent, ops)
	best := ops[utils.ArgMax(values)]
	return best, s.metrics.Complete(), nil
}

// Value returns the backed up value of state with turn to move, scored for agent.
func (s *Searcher) Value(state game.State, agent, turn game.AgentID, depth int) float64 {
	search := newSearch(s.strategy, agent, s.evaluate, s.metrics)
	return search.value(state, turn, depth, math.Inf(-1), math.Inf(1))
}

// evaluateChildren searches every root successor, each on its own clone, and
// returns their values in operator order.
func (s *Searcher) evaluateChildren(state game.State, agent game.AgentID, ops []game.Operator) []float64 {
	search := newSearch(s.strategy, agent, s.evaluate, s.metrics)

	// Successors are built before any worker starts so the root is only read here
	children := make([]game.State, len(ops))
	for i, op := range ops {
		children[i] = search.child(state, agent, op)
	}

	values := make([]float64, len(ops))
	evaluate := func(i int) {
		values[i] = search.value(children[i], agent.Other(), s.depth-1, math.Inf(-1), math.Inf(1))
	}

	if s.goroutines <= 1 {
		for i := range children {
			evaluate(i)
		}
		return values
	}

	task := make(chan int, len(children))
	for i := range children {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < min(s.goroutines, len(children)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range task {
				evaluate(i)
			}
		}()
	}

	wg.Wait()
	return values
}
