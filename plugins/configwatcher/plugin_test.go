package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func startView(t *testing.T, plugin *Plugin) (*view.View, *tick.Scheduler) {
	t.Helper()
	sched := tick.New(tick.WithInterval(time.Millisecond))
	v, err := view.New(sched, view.DefaultConfig(), view.WithPlugin(plugin))
	require.NoError(t, err)
	require.NoError(t, v.Start(context.Background()))
	t.Cleanup(func() { _ = v.Close(context.Background()) })
	return v, sched
}

func TestPlugin_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	writeConfig(t, path, `auto_hide_after_show = false`)

	plugin := New(Config{Path: path, DebounceDelay: 10 * time.Millisecond})
	v, sched := startView(t, plugin)
	assert.Equal(t, "configwatcher", plugin.Name())

	writeConfig(t, path, `
auto_hide_after_show = true
auto_hide_after_show_delay = "5s"
`)

	require.Eventually(t, func() bool {
		sched.Step()
		return v.Config().AutoHideAfterShow
	}, 5*time.Second, 10*time.Millisecond)

	assert.Positive(t, plugin.Reloads())
	assert.Equal(t, 5*time.Second, v.Config().AutoHideAfterShowDelay)
	assert.Equal(t, "view", v.Config().Name)
}

func TestPlugin_InvalidConfigIsNotApplied(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	writeConfig(t, path, ``)

	failed := make(chan error, 8)
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 10 * time.Millisecond,
		OnReload: func(_ view.Config, err error) {
			if err != nil {
				failed <- err
			}
		},
	})
	v, sched := startView(t, plugin)

	writeConfig(t, path, `startup_behaviour = "sideways"`)

	var err error
	require.Eventually(t, func() bool {
		sched.Step()
		select {
		case err = <-failed:
			return true
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	assert.ErrorIs(t, err, view.ErrInvalidBehaviour)
	assert.Equal(t, 0, plugin.Reloads())
	assert.Equal(t, view.DefaultConfig(), v.Config())
}

func TestPlugin_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "view.toml")
	writeConfig(t, path, ``)

	loads := make(chan struct{}, 8)
	plugin := New(Config{
		Path:          path,
		DebounceDelay: 5 * time.Millisecond,
		Load: func(p string) (view.Config, error) {
			loads <- struct{}{}
			return view.LoadConfigFile(p)
		},
	})
	startView(t, plugin)

	writeConfig(t, filepath.Join(dir, "other.toml"), `name = "x"`)
	time.Sleep(100 * time.Millisecond)
	assert.Empty(t, loads)
}

func TestPlugin_DisabledWithoutPath(t *testing.T) {
	plugin := New(Config{})
	startView(t, plugin)
	assert.NoError(t, plugin.Shutdown(context.Background()))
}

func TestPlugin_MissingDirectory(t *testing.T) {
	plugin := New(Config{Path: filepath.Join(t.TempDir(), "missing", "view.toml")})
	sched := tick.New()
	v, err := view.New(sched, view.DefaultConfig(), view.WithPlugin(plugin))
	require.NoError(t, err)

	err = v.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize plugin configwatcher")
}

func TestNew_Defaults(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, 100*time.Millisecond, p.debounceDelay)
	assert.NotNil(t, p.load)
}

func TestPlugin_ReloadAfterCloseIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	writeConfig(t, path, `auto_hide_after_show = true`)

	var results []error
	plugin := New(Config{
		OnReload: func(_ view.Config, err error) { results = append(results, err) },
	})
	plugin.path = path
	v, sched := startView(t, plugin)
	require.NoError(t, v.Close(context.Background()))

	// A debounce timer that fired before Shutdown posts with a live context.
	plugin.reload(context.Background())
	sched.Step()

	assert.False(t, v.Config().AutoHideAfterShow)
	assert.Equal(t, 0, plugin.Reloads())
	assert.Empty(t, results)
}

func TestPlugin_ReloadAfterShutdownIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.toml")
	writeConfig(t, path, `auto_hide_after_show = true`)

	var results []error
	plugin := New(Config{
		OnReload: func(_ view.Config, err error) { results = append(results, err) },
	})
	plugin.path = path
	v, sched := startView(t, plugin)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	plugin.reload(ctx)
	sched.Step()

	assert.False(t, v.Config().AutoHideAfterShow)
	assert.Equal(t, 0, plugin.Reloads())
	assert.Empty(t, results)
}
