package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KennyNova/squarzle-next/internal/engine"
)

// RunLog summarises one game when it ends.
type RunLog struct {
	Seed             string    `json:"seed"`
	SquaresKilled    int       `json:"squares_killed"`
	LifetimeEarnings float64   `json:"lifetime_earnings"`
	Coins            float64   `json:"coins"`
	HighestLevel     int       `json:"highest_level"`
	Seconds          float64   `json:"seconds"`
	Reason           string    `json:"reason"` // "quit" or "new-game"
	EndedAt          time.Time `json:"ended_at"`
}

func newRunLog(st *engine.State, started, now time.Time, reason string) RunLog {
	return RunLog{
		Seed:             st.Seed,
		SquaresKilled:    st.SquaresKilled,
		LifetimeEarnings: st.LifetimeEarnings,
		Coins:            st.Coins,
		HighestLevel:     st.HighestLevel(),
		Seconds:          now.Sub(started).Seconds(),
		Reason:           reason,
		EndedAt:          now.UTC(),
	}
}

// saveRunLog appends the run as a single JSON line to runs.jsonl.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
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
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// runLogDir returns $XDG_DATA_HOME/squarzle, defaulting to
// ~/.local/share/squarzle.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "squarzle"), nil
}
