package main

import (
	"flag"
	"os"
	"warehouse/experiments"
	"warehouse/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config; overrides the agent flags")
	robot0 := flag.String("robot0", "alphabeta", "Policy of the first agent: minimax, alphabeta, expectimax, greedy or random")
	robot1 := flag.String("robot1", "expectimax", "Policy of the second agent")
	depth := flag.Int("depth", meta.DEPTH, "Search plies per move")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "Goroutines evaluating root moves")
	games := flag.Int("games", meta.GAMES, "Games per matchup")
	seed := flag.Uint64("seed", 1, "Seed for warehouse layouts and random agents")
	out := flag.String("out", "experiments", "Directory for experiment records")
	verbose := flag.Bool("v", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	config := meta.Default()
	if *configPath != "" {
		var err error
		config, err = meta.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	} else {
		config.Name = *robot0 + "_vs_" + *robot1
		config.Games = *games
		config.Seed = *seed
		config.OutputDir = *out
		config.Agents = []meta.AgentConfig{
			agentConfig(1, *robot0, *depth, *goroutines, *seed),
			agentConfig(2, *robot1, *depth, *goroutines, *seed+1),
		}
		config.Matchups = [][]int{{1, 2}}
	}

	results, err := experiments.Run(config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	for _, a := range config.Agents {
		log.Info().Msgf("agent %d (%s %s) scored %.1f", a.ID, a.Kind, a.Strategy, results.Scores[a.ID])
	}
	log.Info().Msgf("records written to %s", results.Dir)
}

func agentConfig(id int, policy string, depth, goroutines int, seed uint64) meta.AgentConfig {
	config := meta.AgentConfig{
		ID:         id,
		Kind:       "search",
		Strategy:   policy,
		Depth:      depth,
		Goroutines: goroutines,
		Heuristic:  "smart",
		Seed:       seed,
		Metrics:    true,
	}
	if policy == "greedy" || policy == "random" {
		config.Kind = policy
		config.Strategy = ""
	}
	return config
}
