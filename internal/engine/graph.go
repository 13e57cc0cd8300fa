package engine

import (
	"sort"
	"sync"
	"time"

	pkerrors "pancake.dev/pancake/internal/errors"
)

// Graph tracks branches and their recorded parents.
// Thread-safe: all methods are safe for concurrent use.
type Graph struct {
	mu       sync.RWMutex
	branches map[string]*Meta
	now      func() time.Time
}

// NewGraph returns an empty graph
func NewGraph() *Graph {
	return &Graph{
		branches: make(map[string]*Meta),
		now:      time.Now,
	}
}

// Add tracks name under parent, replacing any existing entry. An empty parent
// records a branch with no parent.
func (g *Graph) Add(name, parent string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.branches[name] = &Meta{
		Parent:    parentPtr(parent),
		CreatedAt: g.now().UTC().Format(time.RFC3339),
	}
}

// Remove stops tracking name. Children keep pointing at it until reparented.
func (g *Graph) Remove(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.branches, name)
}

// Parent returns the recorded parent of name. The parent may be untracked.
// ok is false when name is untracked or has no parent.
func (g *Graph) Parent(name string) (parent string, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	meta, tracked := g.branches[name]
	if !tracked || meta.Parent == nil {
		return "", false
	}
	return *meta.Parent, true
}

// Children returns the tracked branches whose parent is name, sorted
func (g *Graph) Children(name string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.childrenLocked(name)
}

func (g *Graph) childrenLocked(name string) []string {
	var children []string
	for branch, meta := range g.branches {
		if meta.Parent != nil && *meta.Parent == name {
			children = append(children, branch)
		}
	}
	sort.Strings(children)
	return children
}

// Reparent changes the recorded parent of a tracked branch. An empty parent
// clears it. Untracked names are ignored.
func (g *Graph) Reparent(name, parent string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if meta, ok := g.branches[name]; ok {
		meta.Parent = parentPtr(parent)
	}
}

// IsTracked reports whether name is in the graph
func (g *Graph) IsTracked(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.branches[name]
	return ok
}

// Names returns all tracked branch names, sorted
func (g *Graph) Names() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, 0, len(g.branches))
	for name := range g.branches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tracked branches
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.branches)
}

// Meta returns a copy of the recorded state of name
func (g *Graph) Meta(name string) (Meta, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	meta, ok := g.branches[name]
	if !ok {
		return Meta{}, false
	}
	return Meta{Parent: parentPtr(meta.ParentName()), CreatedAt: meta.CreatedAt}, true
}

// FindTop follows single children upward from name. It stops at a leaf or at
// a branch with more than one child, which counts as the top.
func (g *Graph) FindTop(name string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[string]bool{name: true}
	current := name
	for {
		children := g.childrenLocked(current)
		if len(children) != 1 {
			return current, nil
		}
		current = children[0]
		if visited[current] {
			return "", &pkerrors.CyclicGraphError{BranchName: current}
		}
		visited[current] = true
	}
}

// FindBottom walks parents downward from name while the parent is tracked
func (g *Graph) FindBottom(name string) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	visited := map[string]bool{name: true}
	current := name
	for {
		meta, ok := g.branches[current]
		if !ok || meta.Parent == nil {
			return current, nil
		}
		parent := *meta.Parent
		if _, tracked := g.branches[parent]; !tracked {
			return current, nil
		}
		if visited[parent] {
			return "", &pkerrors.CyclicGraphError{BranchName: parent}
		}
		visited[parent] = true
		current = parent
	}
}

func parentPtr(parent string) *string {
	if parent == "" {
		return nil
	}
	return &parent
}
