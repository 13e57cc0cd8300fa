package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/engine"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testForest() []engine.StackRoot {
	g := engine.NewGraph()
	g.Add("first", "main")
	g.Add("second", "first")
	g.Add("second-b", "first")
	g.Add("third", "second")
	g.Add("notes", "")
	return g.BuildForest()
}

func TestRenderForest(t *testing.T) {
	expected := "main\n" +
		"`-- first\n" +
		"    |-- second\n" +
		"    |   `-- third\n" +
		"    `-- second-b\n" +
		"\n" +
		"notes\n"
	require.Equal(t, expected, RenderForest(testForest()))
}

func TestRenderForestShort(t *testing.T) {
	expected := "main -> first -> second -> third\n" +
		"main -> first -> second-b\n" +
		"notes\n"
	require.Equal(t, expected, RenderForestShort(testForest()))
}
