package config

import (
	"encoding/json"
	"fmt"
	"os"

	"legendcore/internal/ports"
)

// LoadGameConfig reads one ports.GameConfig record from path. Unlike
// LoadCatalog, this is not a cached singleton: a process may replay many
// different game configs across its lifetime (one per cmd/replay
// invocation, or one per test), so each call reads and decodes fresh,
// following the same os.ReadFile/json.Unmarshal pair as LoadCatalog
// without the sync.Once that only makes sense for a single shared value.
func LoadGameConfig(path string) (ports.GameConfig, error) {
	var cfg ports.GameConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read game config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	return cfg, nil
}

// LoadReplay reads a recorded ports.Replay (seed, config, choice sequence)
// from path, the shape cmd/replay feeds into replay.Engine.Run.
func LoadReplay(path string) (ports.Replay, error) {
	var r ports.Replay
	data, err := os.ReadFile(path)
	if err != nil {
		return r, fmt.Errorf("failed to read replay record: %w", err)
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to unmarshal replay record: %w", err)
	}
	return r, nil
}
