package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"

	"pancake.dev/pancake/internal/config"
)

// GraphFile is the branch graph document, relative to the repository root
var GraphFile = path.Join(config.Dir, "stacks.json")

type graphDocument struct {
	Branches map[string]*Meta `json:"branches"`
}

// LoadGraph reads the branch graph. A missing document is an empty graph.
func LoadGraph(store *config.Store) (*Graph, error) {
	g := NewGraph()

	data, err := store.ReadFile(GraphFile)
	if errors.Is(err, os.ErrNotExist) {
		return g, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", GraphFile, err)
	}

	var doc graphDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", GraphFile, err)
	}
	for name, meta := range doc.Branches {
		if meta == nil {
			meta = &Meta{}
		}
		if meta.Parent != nil && *meta.Parent == "" {
			meta.Parent = nil
		}
		g.branches[name] = meta
	}
	return g, nil
}

// SaveGraph replaces the branch graph document
func SaveGraph(store *config.Store, g *Graph) error {
	g.mu.RLock()
	doc := graphDocument{Branches: make(map[string]*Meta, len(g.branches))}
	for name, meta := range g.branches {
		doc.Branches[name] = &Meta{Parent: parentPtr(meta.ParentName()), CreatedAt: meta.CreatedAt}
	}
	g.mu.RUnlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize stack metadata: %w", err)
	}
	return store.WriteFile(GraphFile, data)
}
