package engine

import (
	"time"
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/searcher/agent"
	"warehouse/utils"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	State    *game.Warehouse
	Agents   [2]agent.Agent
	Starting game.AgentID
	MaxTurns int
	Timeout  time.Duration // Wall clock budget for the whole game, 0 for none
}

func Local(agents [2]agent.Agent, state *game.Warehouse, starting game.AgentID, maxTurns int) *LocalEngine {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent per robot")
	}
	return &LocalEngine{
		State:    state,
		Agents:   agents,
		Starting: starting,
		MaxTurns: maxTurns,
	}
}

// Run alternates turns until the warehouse is done, returning the winner (-1 on a draw).
func (e *LocalEngine) Run() (int, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingRobot: int(e.Starting),
		StartTime:     time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("robot %d is starting", e.Starting)

	turn := e.Starting
	step := 1
	for !e.State.Done() && step <= e.MaxTurns {
		if e.Timeout > 0 && time.Since(gameMetric.StartTime) > e.Timeout {
			log.Warn().Msgf("game stopped after %s at step %d", e.Timeout, step)
			break
		}

		move, searchMetric := e.Agents[turn].FindMove(e.State, turn)
		move = e.legalize(turn, move)

		log.Trace().Msgf("step %d: robot %d plays %q", step, turn, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Robot:        int(turn),
			Operator:     string(move),
			SearchMetric: searchMetric,
		})

		e.State.Apply(turn, move)
		turn = turn.Other()
		step++
	}

	winner := e.State.Winner()
	gameMetric.Winner = int(winner)
	gameMetric.Credits = [2]int{e.State.Robots[0].Credit, e.State.Robots[1].Credit}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game over after %d moves, credits %v", gameMetric.TotalMoves, gameMetric.Credits)

	return int(winner), gameMetric, moveMetrics
}

// legalize replaces an illegal move with the first legal one.
func (e *LocalEngine) legalize(robot game.AgentID, move game.Operator) game.Operator {
	legal := e.State.LegalOperators(robot)
	if utils.FindIndex(legal, move) >= 0 {
		return move
	}
	if len(legal) == 0 {
		panic("no legal moves at all")
	}
	log.Warn().Msgf("robot %d returned illegal move %q, forcing %q", robot, move, legal[0])
	return legal[0]
}
