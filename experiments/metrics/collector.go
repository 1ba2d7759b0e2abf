package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	Depth       int
	Goroutines  int
	Duration    time.Duration
	Expansions  int // States cloned and advanced by one operator
	Evaluations int // Heuristic calls at leaves
	Cutoffs     int // Sibling loops stopped by pruning
}

type MoveMetric struct {
	Step     int
	Robot    int // Robot ID
	Operator string
	SearchMetric
}

type GameMetric struct {
	StartingRobot int
	Winner        int // Robot ID, -1 on a draw
	Credits       [2]int
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type Collector interface {
	Start(strategy string, depth, goroutines int)
	AddExpansion()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	depth       int
	goroutines  int
	startTime   time.Time
	expansions  atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(strategy string, depth, goroutines int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.goroutines = goroutines
	m.expansions.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Depth:       m.depth,
		Goroutines:  m.goroutines,
		Duration:    time.Since(m.startTime),
		Expansions:  int(m.expansions.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth, goroutines int) {}
func (m *dummyCollector) AddExpansion()                                {}
func (m *dummyCollector) AddEvaluation()                               {}
func (m *dummyCollector) AddCutoff()                                   {}
func (m *dummyCollector) Complete() SearchMetric                       { return SearchMetric{} }
