package actions_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"pancake.dev/pancake/internal/actions"
)

func TestLogAction(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	t.Run("empty graph", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, nil)

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{}))
		require.Equal(t, "No tracked stacks yet. Create one with `pk branch create <name>`.\n", out.String())
	})

	t.Run("renders the forest", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, forkStack)

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{}))
		require.Equal(t, "main\n`-- first\n    |-- second\n    |   `-- third\n    `-- second-b\n", out.String())
	})

	t.Run("short form lists paths", func(t *testing.T) {
		fake := newFakeGit("main")
		ctx, out := newTestContext(t, fake, forkStack)

		require.NoError(t, actions.LogAction(ctx, actions.LogOptions{Short: true}))
		require.Equal(t, "main -> first -> second -> third\nmain -> first -> second-b\n", out.String())
	})
}
