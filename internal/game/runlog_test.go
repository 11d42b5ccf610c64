package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatalf("runLogDir returned error: %v", err)
	}
	want := filepath.Join(tmp, "chunk-roguelike")
	if dir != want {
		t.Errorf("dir = %q; want %q", dir, want)
	}
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	suffix := filepath.Join(".local", "share", "chunk-roguelike")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestSaveRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	in := RunLog{
		Seed:         7,
		TurnsPlayed:  42,
		LevelReached: 3,
		DeepestLayer: -2,
		Deaths:       map[string]int{"Sheep": 2},
		PlayerDied:   true,
	}
	if err := saveRunLog(in); err != nil {
		t.Fatalf("saveRunLog: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "chunk-roguelike", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.HasSuffix(string(data), "\n") {
		t.Errorf("log entry should end with newline; got: %q", data)
	}
	var out RunLog
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("entry is not JSON: %v", err)
	}
	if out.TurnsPlayed != 42 || out.DeepestLayer != -2 || out.Deaths["Sheep"] != 2 || !out.PlayerDied {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := range 3 {
		if err := saveRunLog(RunLog{TurnsPlayed: i, Deaths: map[string]int{}}); err != nil {
			t.Fatalf("saveRunLog: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmp, "chunk-roguelike", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestSaveRunLogUnwritableDir(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XDG_DATA_HOME", blocker)

	if err := saveRunLog(RunLog{}); err == nil {
		t.Error("expected an error when the data dir is a file")
	}
}
