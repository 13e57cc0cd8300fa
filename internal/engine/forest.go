package engine

import (
	"sort"
)

// BuildForest groups tracked branches into trees. Roots under untracked
// parents come first, ordered by parent name, then standalone branches by
// name. Siblings are sorted at every level. Branches caught in a parent cycle
// have no root and are omitted.
func (g *Graph) BuildForest() []StackRoot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	children := make(map[string][]string)
	external := make(map[string][]string)
	var standalone []string

	for name, meta := range g.branches {
		switch {
		case meta.Parent == nil:
			standalone = append(standalone, name)
		case g.branches[*meta.Parent] != nil:
			children[*meta.Parent] = append(children[*meta.Parent], name)
		default:
			external[*meta.Parent] = append(external[*meta.Parent], name)
		}
	}

	for _, names := range children {
		sort.Strings(names)
	}

	externalNames := make([]string, 0, len(external))
	for name := range external {
		externalNames = append(externalNames, name)
	}
	sort.Strings(externalNames)
	sort.Strings(standalone)

	roots := make([]StackRoot, 0, len(externalNames)+len(standalone))
	for _, parent := range externalNames {
		names := external[parent]
		sort.Strings(names)
		root := StackRoot{Kind: ExternalParentRoot, Name: parent}
		for _, name := range names {
			root.Children = append(root.Children, buildNode(name, children))
		}
		roots = append(roots, root)
	}
	for _, name := range standalone {
		node := buildNode(name, children)
		roots = append(roots, StackRoot{Kind: StandaloneRoot, Name: name, Children: node.Children})
	}
	return roots
}

func buildNode(name string, children map[string][]string) *BranchNode {
	node := &BranchNode{Name: name}
	for _, child := range children[name] {
		node.Children = append(node.Children, buildNode(child, children))
	}
	return node
}

// Paths returns every root-to-leaf path of the tree, each starting with the
// root's name
func (r StackRoot) Paths() [][]string {
	if len(r.Children) == 0 {
		return [][]string{{r.Name}}
	}
	var paths [][]string
	for _, child := range r.Children {
		collectPaths(child, []string{r.Name}, &paths)
	}
	return paths
}

func collectPaths(node *BranchNode, prefix []string, out *[][]string) {
	current := append(append([]string{}, prefix...), node.Name)
	if len(node.Children) == 0 {
		*out = append(*out, current)
		return
	}
	for _, child := range node.Children {
		collectPaths(child, current, out)
	}
}
