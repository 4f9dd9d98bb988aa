package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TaskReport records how one task went.
type TaskReport struct {
	Name      string `json:"name"`
	Attempts  int    `json:"attempts"`
	Successes int    `json:"successes"`
	Skipped   int    `json:"skipped"`
	Completed bool   `json:"completed_early"`
}

// Summary is emitted at the end of a session.
type Summary struct {
	SessionID         string       `json:"session_id"`
	Persona           string       `json:"persona"`
	Status            string       `json:"status"`
	Attempts          int          `json:"attempts"`
	Successes         int          `json:"successes"`
	SuccessRate       float64      `json:"success_rate"`
	CartItems         int          `json:"cart_item_count"`
	ObservedCartItems int          `json:"observed_cart_item_count"`
	CartDiverged      bool         `json:"cart_diverged"`
	Tasks             []TaskReport `json:"tasks"`
	StartedAt         time.Time    `json:"started_at"`
	Duration          string       `json:"duration"`
}

// Summarize builds the counters part of a Summary from the state.
func (s *State) Summarize() Summary {
	return Summary{
		Attempts:          s.Counters.Attempts,
		Successes:         s.Counters.Successes,
		SuccessRate:       s.Counters.SuccessRate(),
		CartItems:         s.CartItems,
		ObservedCartItems: s.ObservedCartItems,
		CartDiverged:      s.CartDiverged(),
	}
}

// WriteJSON writes the summary to path, creating parent directories.
func (s Summary) WriteJSON(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename summary file: %w", err)
	}
	return nil
}
