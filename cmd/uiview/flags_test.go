package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderValencia/uiview/internal/cliconfig"
	"github.com/CoderValencia/uiview/pkg/view"
)

func TestBehaviourValue(t *testing.T) {
	b := view.BehaviourDisabled
	v := behaviourValue{&b}

	require.NoError(t, v.Set("Instant-Hide"))
	assert.Equal(t, view.BehaviourInstantHide, b)
	assert.Equal(t, "instant_hide", v.String())
	assert.Equal(t, "behaviour", v.Type())

	assert.ErrorIs(t, v.Set("sideways"), view.ErrInvalidBehaviour)
	assert.Equal(t, view.BehaviourInstantHide, b, "failed Set must not change the value")
}

const estimateScenario = `name: menu
animators:
  - name: fade
    show: {delay: 200ms, duration: 500ms}
    hide: {duration: 250ms}
drivers:
  - name: slide
    pool: show_hide
    timing: {delay: 100ms, duration: 300ms}
steps:
  - {at: 0s, action: show}
`

func TestPrintEstimates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(estimateScenario), 0o644))

	cfg := cliconfig.DefaultConfig()
	cfg.ScenarioPath = path
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, printEstimates(cmd, cfg))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "view:  view", lines[0])
	assert.Equal(t, "show:  700ms", lines[1])
	assert.Equal(t, "hide:  300ms", lines[2])
}

func TestPrintEstimates_NoScenario(t *testing.T) {
	cfg := cliconfig.DefaultConfig()
	err := printEstimates(&cobra.Command{}, cfg)
	assert.Error(t, err)
}
