package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Warehouse is the reference two-robot simulation. Package spawns are drawn
// from a queue fixed at construction, so Apply is deterministic.
type Warehouse struct {
	Rules     Rules
	Robots    [2]Robot
	Boxes     []Package  // Open packages on the board
	Queue     []Package  // Packages that spawn after each delivery, in order
	Stations  []Position // Charge station cells
	StepsLeft int
}

// NewWarehouse lays out robots, charge stations and the package queue from seed.
func NewWarehouse(rules Rules, seed uint64) (*Warehouse, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	cells := rng.Perm(rules.Size * rules.Size)
	cell := func(i int) Position {
		return Position{X: cells[i] % rules.Size, Y: cells[i] / rules.Size}
	}

	w := &Warehouse{
		Rules:     rules,
		StepsLeft: rules.Steps,
	}
	for i := range w.Robots {
		w.Robots[i] = Robot{Position: cell(i), Battery: rules.Battery}
	}
	for i := 0; i < rules.ChargeStations; i++ {
		w.Stations = append(w.Stations, cell(2+i))
	}

	// Pickup and destination always differ
	queue := make([]Package, 0, rules.Queue)
	for len(queue) < rules.Queue {
		from := Position{X: rng.Intn(rules.Size), Y: rng.Intn(rules.Size)}
		to := Position{X: rng.Intn(rules.Size), Y: rng.Intn(rules.Size)}
		if from == to {
			continue
		}
		queue = append(queue, Package{Position: from, Destination: to})
	}
	w.Queue = queue
	for i := 0; i < rules.Packages; i++ {
		w.spawn()
	}
	return w, nil
}

// NewWarehouseFrom builds an exact layout. All given packages start on board.
func NewWarehouseFrom(rules Rules, robots [2]Robot, packages []Package, stations []Position) *Warehouse {
	w := &Warehouse{
		Rules:     rules,
		Robots:    robots,
		Stations:  append([]Position(nil), stations...),
		StepsLeft: rules.Steps,
	}
	for i := range w.Robots {
		if held := w.Robots[i].Package; held != nil {
			pkg := *held
			pkg.OnBoard = false
			w.Robots[i].Package = &pkg
		}
	}
	for _, pkg := range packages {
		pkg.OnBoard = true
		w.Boxes = append(w.Boxes, pkg)
	}
	return w
}

// Clone returns a deep copy; held packages are copied, not shared.
func (w *Warehouse) Clone() State {
	return w.Copy()
}

func (w *Warehouse) Copy() *Warehouse {
	robots := w.Robots
	for i := range robots {
		if held := robots[i].Package; held != nil {
			pkg := *held
			robots[i].Package = &pkg
		}
	}

	boxesCopy := make([]Package, len(w.Boxes))
	copy(boxesCopy, w.Boxes)

	// Queue and stations never change in place, only the slice header advances
	return &Warehouse{
		Rules:     w.Rules,
		Robots:    robots,
		Boxes:     boxesCopy,
		Queue:     w.Queue,
		Stations:  w.Stations,
		StepsLeft: w.StepsLeft,
	}
}

// LegalOperators returns the operators agent may apply, in Operators order.
func (w *Warehouse) LegalOperators(agent AgentID) []Operator {
	if w.Done() {
		return nil
	}
	ops := make([]Operator, 0, len(Operators))
	for _, op := range Operators {
		if w.isLegal(agent, op) {
			ops = append(ops, op)
		}
	}
	return ops
}

func (w *Warehouse) isLegal(agent AgentID, op Operator) bool {
	robot := w.Robots[agent]
	if dx, dy, ok := op.offset(); ok {
		target := Position{X: robot.Position.X + dx, Y: robot.Position.Y + dy}
		return robot.Battery > 0 &&
			target.inside(w.Rules.Size) &&
			target != w.Robots[agent.Other()].Position
	}

	switch op {
	case PickUp:
		return robot.Package == nil && w.boxAt(robot.Position) >= 0
	case DropOff:
		return robot.Package != nil && robot.Package.Destination == robot.Position
	case Charge:
		return robot.Credit > 0 && w.IsChargeStation(robot.Position)
	case Park:
		return true
	}
	return false
}

// Apply performs op for agent. Applying an illegal operator is a programming error.
func (w *Warehouse) Apply(agent AgentID, op Operator) {
	if !w.isLegal(agent, op) {
		panic(fmt.Sprintf("illegal operator %q for robot %d", op, agent))
	}
	robot := &w.Robots[agent]

	if dx, dy, ok := op.offset(); ok {
		robot.Position = Position{X: robot.Position.X + dx, Y: robot.Position.Y + dy}
		robot.Battery--
	}

	switch op {
	case PickUp:
		i := w.boxAt(robot.Position)
		pkg := w.Boxes[i]
		pkg.OnBoard = false
		robot.Package = &pkg
		w.Boxes = append(w.Boxes[:i:i], w.Boxes[i+1:]...)
	case DropOff:
		robot.Credit += 2 * ManhattanDistance(robot.Package.Position, robot.Package.Destination)
		robot.Package = nil
		w.spawn()
	case Charge:
		robot.Battery += robot.Credit
		robot.Credit = 0
	}

	w.StepsLeft--
}

// spawn moves the next queued package onto the board, if any remain.
func (w *Warehouse) spawn() {
	if len(w.Queue) == 0 {
		return
	}
	pkg := w.Queue[0]
	pkg.OnBoard = true
	w.Queue = w.Queue[1:]
	w.Boxes = append(w.Boxes, pkg)
}

func (w *Warehouse) boxAt(p Position) int {
	for i, pkg := range w.Boxes {
		if pkg.Position == p {
			return i
		}
	}
	return -1
}

// Done reports whether the step budget ran out or both robots are drained.
func (w *Warehouse) Done() bool {
	return w.StepsLeft <= 0 || (w.Robots[0].Battery == 0 && w.Robots[1].Battery == 0)
}

// Robot returns a copy of agent's robot.
func (w *Warehouse) Robot(agent AgentID) Robot {
	robot := w.Robots[agent]
	if robot.Package != nil {
		pkg := *robot.Package
		robot.Package = &pkg
	}
	return robot
}

// Packages returns a copy of the open packages.
func (w *Warehouse) Packages() []Package {
	packages := make([]Package, len(w.Boxes))
	copy(packages, w.Boxes)
	return packages
}

func (w *Warehouse) IsChargeStation(p Position) bool {
	return contains(w.Stations, p)
}

// Winner returns the robot with more credit, -1 while undecided or on a draw.
func (w *Warehouse) Winner() AgentID {
	if !w.Done() {
		return -1
	}
	switch c0, c1 := w.Robots[0].Credit, w.Robots[1].Credit; {
	case c0 > c1:
		return 0
	case c1 > c0:
		return 1
	}
	return -1
}
