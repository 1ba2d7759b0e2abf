package game

// Position is a cell on the warehouse grid.
type Position struct {
	X int
	Y int
}

// Package is a parcel waiting at Position to be carried to Destination.
type Package struct {
	Position    Position
	Destination Position
	OnBoard     bool // Spawned and not yet picked up
}

// Robot is one agent's view of itself.
type Robot struct {
	Position Position
	Package  *Package // Held package, nil if empty handed
	Credit   int
	Battery  int
}

// ManhattanDistance is the L1 distance between two cells.
func ManhattanDistance(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (p Position) inside(size int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size && p.Y < size
}

// contains checks if a slice contains a specific position.
func contains(slice []Position, item Position) bool {
	for _, v := range slice {
		if v == item {
			return true
		}
	}
	return false
}
