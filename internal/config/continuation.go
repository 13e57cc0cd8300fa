package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
)

// ContinuationFile holds the checkpoint of an interrupted sync or restack
var ContinuationFile = path.Join(Dir, "operation_state.json")

// ContinuationState is the persisted progress of a bulk rebase. Branches are
// rebased in order; CurrentIndex is the next one to process.
type ContinuationState struct {
	Kind           string   `json:"kind"`
	Branches       []string `json:"branches"`
	CurrentIndex   int      `json:"current_index"`
	OriginalBranch string   `json:"original_branch"`
}

// Validate checks the index is within bounds
func (s *ContinuationState) Validate() error {
	if s.CurrentIndex < 0 || s.CurrentIndex > len(s.Branches) {
		return fmt.Errorf("invalid %s: current_index %d out of range for %d branch(es)",
			ContinuationFile, s.CurrentIndex, len(s.Branches))
	}
	return nil
}

// GetContinuationState reads the checkpoint. It returns nil, nil when none exists.
func GetContinuationState(store *Store) (*ContinuationState, error) {
	data, err := store.ReadFile(ContinuationFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ContinuationFile, err)
	}

	var state ContinuationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ContinuationFile, err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}
	return &state, nil
}

// PersistContinuationState writes the checkpoint
func PersistContinuationState(store *Store, state *ContinuationState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize pending operation state: %w", err)
	}
	return store.WriteFile(ContinuationFile, data)
}

// ClearContinuationState removes the checkpoint
func ClearContinuationState(store *Store) error {
	return store.Remove(ContinuationFile)
}
