// meta/meta.go
package meta

import (
	"fmt"
	"os"
	"time"
	"warehouse/game"

	"gopkg.in/yaml.v3"
)

// GAMES defines the number of games per matchup.
const GAMES = 10

// MAX_TURNS bounds a game loop independently of the warehouse step budget.
const MAX_TURNS = 300

// DEPTH defines the default search ply budget.
const DEPTH = 4

// GO_ROUTINES defines the number of goroutines evaluating root moves.
const GO_ROUTINES = 1

// AgentConfig describes one decision policy.
type AgentConfig struct {
	ID         int    `yaml:"id"`
	Kind       string `yaml:"kind"`     // search, greedy or random
	Strategy   string `yaml:"strategy"` // minimax, alphabeta or expectimax
	Depth      int    `yaml:"depth"`
	Goroutines int    `yaml:"goroutines"`
	Heuristic  string `yaml:"heuristic"` // Key of game.Evaluators
	Seed       uint64 `yaml:"seed"`
	Metrics    bool   `yaml:"metrics"`
}

// Config drives a batch of games between configured agents.
type Config struct {
	Name      string        `yaml:"name"`
	Games     int           `yaml:"games"` // Per matchup
	MaxTurns  int           `yaml:"max_turns"`
	Seed      uint64        `yaml:"seed"`
	OutputDir string        `yaml:"output_dir"`
	Timeout   time.Duration `yaml:"timeout"` // Per game, 0 for none
	Rules     game.Rules    `yaml:"rules"`
	Agents    []AgentConfig `yaml:"agents"`
	Matchups  [][]int       `yaml:"matchups"` // Pairs of agent IDs
}

// Default returns a single alpha-beta versus expectimax matchup on the standard layout.
func Default() Config {
	return Config{
		Name:      "default",
		Games:     GAMES,
		MaxTurns:  MAX_TURNS,
		Seed:      1,
		OutputDir: "experiments",
		Rules:     game.StandardRules(),
		Agents: []AgentConfig{
			{ID: 1, Kind: "search", Strategy: "alphabeta", Depth: DEPTH, Goroutines: GO_ROUTINES, Heuristic: "smart", Metrics: true},
			{ID: 2, Kind: "search", Strategy: "expectimax", Depth: DEPTH, Goroutines: GO_ROUTINES, Heuristic: "smart", Metrics: true},
		},
		Matchups: [][]int{{1, 2}},
	}
}

// Load reads a YAML config on top of Default. Omitted fields keep their defaults.
func Load(path string) (Config, error) {
	config := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func (c Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games %d must be positive", c.Games)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("max_turns %d must be positive", c.MaxTurns)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true
	}
	for _, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("matchup %v must name exactly two agents", matchup)
		}
		for _, id := range matchup {
			if !ids[id] {
				return fmt.Errorf("matchup references unknown agent id %d", id)
			}
		}
	}
	return nil
}

// Agent returns the config of the agent with the given ID.
func (c Config) Agent(id int) (AgentConfig, bool) {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent, true
		}
	}
	return AgentConfig{}, false
}
