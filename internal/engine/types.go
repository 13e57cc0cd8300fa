package engine

// Meta is the recorded state of one tracked branch
type Meta struct {
	// Parent is nil for a branch created without a parent
	Parent    *string `json:"parent"`
	CreatedAt string  `json:"created_at"`
}

// ParentName returns the parent, or "" when there is none
func (m *Meta) ParentName() string {
	if m == nil || m.Parent == nil {
		return ""
	}
	return *m.Parent
}

// StackRootKind distinguishes the two kinds of forest roots
type StackRootKind int

const (
	// ExternalParentRoot groups tracked branches whose parent is not tracked
	// (typically main)
	ExternalParentRoot StackRootKind = iota
	// StandaloneRoot is a tracked branch with no parent at all
	StandaloneRoot
)

// StackRoot is the top of one tree in the forest. For an external parent,
// Name is the untracked parent and Children are the tracked branches under
// it. For a standalone root, Name is the branch itself.
type StackRoot struct {
	Kind     StackRootKind
	Name     string
	Children []*BranchNode
}

// BranchNode is a tracked branch and its subtree
type BranchNode struct {
	Name     string
	Children []*BranchNode
}
