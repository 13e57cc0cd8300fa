package tui

import (
	"strings"

	"pancake.dev/pancake/internal/engine"
	"pancake.dev/pancake/internal/tui/style"
)

// RenderForest renders every stack as an ASCII tree. Each stack gets its own
// color and stacks are separated by a blank line.
func RenderForest(roots []engine.StackRoot) string {
	var b strings.Builder
	for idx, root := range roots {
		st := style.StackStyle(idx)
		b.WriteString(st.Bold(true).Render(root.Name))
		b.WriteString("\n")
		for i, child := range root.Children {
			renderBranch(&b, child, "", i == len(root.Children)-1, idx)
		}
		if idx+1 < len(roots) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderBranch(b *strings.Builder, node *engine.BranchNode, prefix string, isLast bool, idx int) {
	st := style.StackStyle(idx)
	connector := "|--"
	nextPrefix := prefix + "|   "
	if isLast {
		connector = "`--"
		nextPrefix = prefix + "    "
	}

	b.WriteString(st.Render(prefix))
	b.WriteString(st.Render(connector))
	b.WriteString(" ")
	b.WriteString(st.Render(node.Name))
	b.WriteString("\n")

	for i, child := range node.Children {
		renderBranch(b, child, nextPrefix, i == len(node.Children)-1, idx)
	}
}

// RenderForestShort renders one `a -> b -> c` line per root-to-leaf path
func RenderForestShort(roots []engine.StackRoot) string {
	var b strings.Builder
	for idx, root := range roots {
		st := style.StackStyle(idx)
		arrow := " " + st.Render("->") + " "
		for _, path := range root.Paths() {
			colored := make([]string, len(path))
			for i, name := range path {
				colored[i] = st.Render(name)
			}
			b.WriteString(strings.Join(colored, arrow))
			b.WriteString("\n")
		}
	}
	return b.String()
}
