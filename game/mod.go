package game

// TODO: State could move into the searcher package so any simulation can implement it without importing game

// AgentID identifies one of the two robots sharing the warehouse.
type AgentID int

// Other returns the opposing robot.
func (a AgentID) Other() AgentID {
	return 1 - a
}

// State is the narrow view of a simulation the searcher needs. Apply mutates
// in place, so callers must Clone first if the original has to survive.
type State interface {
	Clone() State
	LegalOperators(agent AgentID) []Operator
	Apply(agent AgentID, op Operator)
	Done() bool
	Robot(agent AgentID) Robot
	Packages() []Package
	IsChargeStation(p Position) bool
}

// Evaluates the state to a score indicating how desirable it is for agent.
// Higher is better; only the relative ordering matters.
type Evaluate func(state State, agent AgentID) float64
