package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// MinPlayers is the fewest occupied seats a round can be dealt with.
	MinPlayers int `json:"min_players"`
	// RoundDelaySeconds configures how many seconds a table waits between
	// the round-ended broadcast and accepting a new start request.
	RoundDelaySeconds int `json:"round_delay_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetMinPlayers returns the configured seat minimum, or a safe default.
func GetMinPlayers() int {
	if cfg == nil || cfg.MinPlayers < 2 {
		return 2
	}
	return cfg.MinPlayers
}
