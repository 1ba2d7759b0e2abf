package game

// Operator represents one move a robot can make.
type Operator string

const (
	MoveNorth Operator = "move north"
	MoveSouth Operator = "move south"
	MoveEast  Operator = "move east"
	MoveWest  Operator = "move west"
	PickUp    Operator = "pick up"
	DropOff   Operator = "drop off"
	Charge    Operator = "charge"
	Park      Operator = "park"
)

// Operators lists every operator in the order LegalOperators enumerates them.
var Operators = []Operator{MoveNorth, MoveSouth, MoveEast, MoveWest, PickUp, DropOff, Charge, Park}

// offset returns the grid displacement of a move operator. North is toward y = 0.
func (op Operator) offset() (dx, dy int, ok bool) {
	switch op {
	case MoveNorth:
		return 0, -1, true
	case MoveSouth:
		return 0, 1, true
	case MoveEast:
		return 1, 0, true
	case MoveWest:
		return -1, 0, true
	}
	return 0, 0, false
}

// IsMove reports whether the operator moves the robot (and costs battery).
func (op Operator) IsMove() bool {
	_, _, ok := op.offset()
	return ok
}
