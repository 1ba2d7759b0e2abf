package searcher

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoLegalMoves = errors.New("no legal moves at the search root")

// Strategy selects how the other robot's plies are backed up.
type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
	Expectimax
)

func (s Strategy) String() string {
	switch s {
	case Minimax:
		return "minimax"
	case AlphaBeta:
		return "alphabeta"
	case Expectimax:
		return "expectimax"
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "alpha_beta":
		return AlphaBeta, nil
	case "expectimax":
		return Expectimax, nil
	}
	return 0, fmt.Errorf("unknown search strategy %q", name)
}
