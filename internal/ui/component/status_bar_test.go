package component

import (
	"testing"

	"github.com/leighmacdonald/turbinewash/internal/ui/command"
	"github.com/stretchr/testify/require"
)

func TestStatusClearOnlyAppliesToLatestMessage(t *testing.T) {
	bar := NewStatusBarModel("test")

	bar, cmd := bar.Update(command.StatusMsg{Message: "Failed to render", Err: true})
	require.NotNil(t, cmd)
	first := bar.clearTag

	bar, _ = bar.Update(command.StatusMsg{Message: "Config reloaded"})

	// The timer left over from the error fires first.
	bar, _ = bar.Update(command.ClearStatusMessageMsg{Tag: first})
	require.Equal(t, "Config reloaded", bar.statusMsg)
	require.False(t, bar.statusError)

	bar, _ = bar.Update(command.ClearStatusMessageMsg{Tag: bar.clearTag})
	require.Empty(t, bar.statusMsg)
}
