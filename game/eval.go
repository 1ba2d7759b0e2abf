package game

import "math"

const (
	CreditWeight  = 30 // Delivered credit dominates positional terms
	HoldingOffset = 10 // Flat bonus for carrying a package
)

// SmartHeuristic scores a state for agent: credit first, then progress toward
// the held package's destination or, when empty handed, the nearest pickup.
func SmartHeuristic(s State, agent AgentID) float64 {
	robot := s.Robot(agent)

	heuristic := float64(robot.Credit * CreditWeight)
	if robot.Package != nil {
		// Go to delivery destination
		toDestination := ManhattanDistance(robot.Position, robot.Package.Destination)
		heuristic -= float64(toDestination - HoldingOffset)
	} else {
		// Go to the closest package
		heuristic -= float64(nearestPackage(robot.Position, s.Packages()))
	}
	return heuristic
}

// CreditHeuristic scores agent by its credit lead over the other robot.
func CreditHeuristic(s State, agent AgentID) float64 {
	return float64(s.Robot(agent).Credit - s.Robot(agent.Other()).Credit)
}

// nearestPackage returns the distance to the closest open package, 0 if none are open.
func nearestPackage(from Position, packages []Package) int {
	if len(packages) == 0 {
		return 0
	}
	nearest := math.MaxInt
	for _, pkg := range packages {
		nearest = min(nearest, ManhattanDistance(from, pkg.Position))
	}
	return nearest
}

// Evaluators maps the names accepted in configs to evaluation functions.
var Evaluators = map[string]Evaluate{
	"smart":  SmartHeuristic,
	"credit": CreditHeuristic,
}
