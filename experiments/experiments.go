package experiments

import (
	"fmt"
	"warehouse/engine"
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/meta"
	"warehouse/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Results holds everything an experiment produced.
type Results struct {
	Dir    string // Where the records were written
	Games  []metrics.GameRecord
	Moves  []metrics.MoveRecord
	Scores map[int]float64 // Agent ID -> wins plus half draws
}

// Run plays every matchup config.Games times and stores the records under config.OutputDir.
func Run(config meta.Config) (Results, error) {
	if err := config.Validate(); err != nil {
		return Results{}, fmt.Errorf("invalid experiment config: %w", err)
	}

	results := Results{Scores: make(map[int]float64)}
	count := 0

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		config1, _ := config.Agent(matchup[0])
		config2, _ := config.Agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(config.Matchups), config1, config2)

		for i := 0; i < config.Games; i++ {
			count++
			// Alternate the starting robot, and vary the layout per game
			starting := game.AgentID(i % 2)
			seed := config.Seed + uint64(count)

			winner, gameMetric, moveMetrics, err := runGame(config, config1, config2, starting, seed)
			if err != nil {
				return results, err
			}

			results.Games = append(results.Games, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				results.Moves = append(results.Moves, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			switch winner {
			case 0:
				results.Scores[config1.ID]++
			case 1:
				results.Scores[config2.ID]++
			default:
				results.Scores[config1.ID] += 0.5
				results.Scores[config2.ID] += 0.5
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %d credits: %v", mi+1, len(config.Matchups), i+1, winner, gameMetric.Credits)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	dir, err := store(config, results)
	if err != nil {
		return results, err
	}
	results.Dir = dir
	return results, nil
}

func store(config meta.Config, results Results) (string, error) {
	writer, err := metrics.NewWriter(config.OutputDir, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	agents := make([]metrics.AgentRecord, 0, len(config.Agents))
	for _, a := range config.Agents {
		agents = append(agents, metrics.AgentRecord{
			ID:         a.ID,
			Kind:       a.Kind,
			Strategy:   a.Strategy,
			Depth:      a.Depth,
			Goroutines: a.Goroutines,
			Heuristic:  a.Heuristic,
		})
	}
	if err := writer.WriteAgentRecords(agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(results.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(results.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between two agents and returns the winning robot
func runGame(config meta.Config, config1, config2 meta.AgentConfig, starting game.AgentID, seed uint64) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := agent.New(config1)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.New(config2)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	state, err := game.NewWarehouse(config.Rules, seed)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	e := engine.Local([2]agent.Agent{agent1, agent2}, state, starting, config.MaxTurns)
	e.Timeout = config.Timeout

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
