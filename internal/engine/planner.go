package engine

import (
	pkerrors "pancake.dev/pancake/internal/errors"
)

// CollectSequence returns the rebase order for the subtree rooted at start:
// a pre-order walk visiting children in name order, so every branch comes
// after its parent. It is empty when start is untracked.
func (g *Graph) CollectSequence(start string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.branches[start]; !ok {
		return []string{}, nil
	}

	var sequence []string
	visited := make(map[string]bool)
	var walk func(branch string) error
	walk = func(branch string) error {
		if visited[branch] {
			return &pkerrors.CyclicGraphError{BranchName: branch}
		}
		visited[branch] = true
		sequence = append(sequence, branch)
		for _, child := range g.childrenLocked(branch) {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(start); err != nil {
		return nil, err
	}
	return sequence, nil
}
