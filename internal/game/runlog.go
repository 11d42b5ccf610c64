package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunLog records statistics gathered during one session.
type RunLog struct {
	Seed         int64          `json:"seed"`
	TurnsPlayed  int            `json:"turns_played"`
	LevelReached int            `json:"level_reached"`
	HighestLayer int            `json:"highest_layer"`
	DeepestLayer int            `json:"deepest_layer"`
	Spawned      int            `json:"spawned"`
	Deaths       map[string]int `json:"deaths"` // kind name → count
	PlayerDied   bool           `json:"player_died"`
}

// saveRunLog appends the session as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return fmt.Errorf("run log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Follows XDG Base Directory spec: $XDG_DATA_HOME/chunk-roguelike,
// defaulting to ~/.local/share/chunk-roguelike.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "chunk-roguelike"), nil
}
