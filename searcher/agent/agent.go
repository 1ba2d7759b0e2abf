package agent

import (
	"fmt"
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/meta"
	"warehouse/searcher"
)

type Agent interface {
	// FindMove returns robot's next operator and search metrics (if collected)
	FindMove(state game.State, robot game.AgentID) (game.Operator, metrics.SearchMetric)
}

// New builds the agent described by config.
func New(config meta.AgentConfig) (Agent, error) {
	evaluate := game.SmartHeuristic
	if config.Heuristic != "" {
		fn, ok := game.Evaluators[config.Heuristic]
		if !ok {
			return nil, fmt.Errorf("agent %d: unknown heuristic %q", config.ID, config.Heuristic)
		}
		evaluate = fn
	}

	switch config.Kind {
	case "", "search":
		strategy, err := searcher.ParseStrategy(config.Strategy)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		options := []searcher.Option{
			searcher.WithDepth(config.Depth),
			searcher.WithGoroutines(config.Goroutines),
			searcher.WithEvaluationFn(evaluate),
		}
		if config.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		return NewSearchAgent(searcher.New(strategy, options...)), nil
	case "greedy":
		return NewGreedyAgent(evaluate), nil
	case "random":
		return NewRandomAgent(config.Seed), nil
	}
	return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
}
