package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/CoderValencia/uiview/internal/cliconfig"
	"github.com/CoderValencia/uiview/internal/scenario"
	"github.com/CoderValencia/uiview/pkg/log"
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
	"github.com/CoderValencia/uiview/plugins/configwatcher"
	"github.com/CoderValencia/uiview/plugins/metrics"
)

const helpDescription = `
Drive a simulated view through a scripted scenario on a real-time frame clock.

Highlights:
  - Shows, hides and toggles are gated on the view's animations finishing.
  - Every visibility change and command is logged as it happens.
  - Configure via file, env (UIVIEW_*), or flags; the file can be hot reloaded.
  - Optional Prometheus endpoint with command and transition metrics.
`

var exampleUsage = strings.TrimSpace(`
  uiview run --scenario menu.yaml
  uiview run --scenario menu.yaml --tick 16ms --metrics --watch
  uiview estimate --scenario menu.yaml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "uiview",
		Short:         "Animation-gated view visibility, driven from scenario files",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.uiview/config.toml)")
	root.PersistentFlags().StringVar(&cfg.ScenarioPath, "scenario", "", "scenario file (YAML)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.View.Name, "name", cfg.View.Name, "view name used in logs and metrics")

	run := &cobra.Command{
		Use:   "run",
		Short: "Play a scenario against a view in real time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := loadConfig(cmd, &cfg, cfgPath)
			if err != nil {
				return err
			}
			return runScenario(cmd.Context(), cfg, cfgFile)
		},
	}
	run.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "frame interval")
	run.Flags().BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "serve Prometheus metrics")
	run.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "metrics listen address")
	run.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the [view] table when the config file changes")
	run.Flags().Var(behaviourValue{&cfg.View.StartupBehaviour}, "startup", "startup behaviour (disabled, show, hide, instant_show, instant_hide)")
	run.Flags().BoolVar(&cfg.View.AutoHideAfterShow, "auto-hide", cfg.View.AutoHideAfterShow, "hide again after the view has been visible for --auto-hide-delay")
	run.Flags().DurationVar(&cfg.View.AutoHideAfterShowDelay, "auto-hide-delay", cfg.View.AutoHideAfterShowDelay, "auto-hide delay")

	estimate := &cobra.Command{
		Use:   "estimate",
		Short: "Print worst-case show and hide durations for a scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := loadConfig(cmd, &cfg, cfgPath); err != nil {
				return err
			}
			return printEstimates(cmd, cfg)
		},
	}

	root.AddCommand(run, estimate)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("uiview")
		stop()
		os.Exit(1)
	}
}

// loadConfig layers file, env and flags onto cfg and validates it. It
// returns the config file in use, or "" when there is none.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) (string, error) {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return "", fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return "", err
		}
	} else {
		cfgFile = ""
	}

	// UIVIEW_* override the file, flags override both.
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return "", err
	}

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return cfgFile, nil
}

func runScenario(ctx context.Context, cfg cliconfig.Config, cfgFile string) error {
	zl, err := cliconfig.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	zl.Info().Interface("config", cfg).Msg("configuration")
	logger := log.NewZerologAdapterWithLogger(zl)

	var sc *scenario.Scenario
	viewCfg := cfg.View
	if cfg.ScenarioPath != "" {
		if sc, err = scenario.Load(cfg.ScenarioPath); err != nil {
			return err
		}
		if viewCfg, err = sc.ViewConfig(viewCfg); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
	}

	sched := tick.New(tick.WithInterval(cfg.TickInterval), tick.WithLogger(logger))

	opts := []view.Option{
		view.WithLogger(logger),
		view.WithEventHandler(newNotifier(logger, viewCfg.Name)),
	}

	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())

		mcfg := metrics.DefaultConfig()
		mcfg.Registerer = reg
		opts = append(opts, metrics.WithMetrics(mcfg))

		srv := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if cfg.Watch {
		if cfgFile == "" {
			logger.Warn("--watch needs a config file, ignoring")
		} else {
			base := viewCfg
			opts = append(opts, configwatcher.WithConfigWatcher(configwatcher.Config{
				Path:          cfgFile,
				DebounceDelay: 100 * time.Millisecond,
				Load: func(path string) (view.Config, error) {
					return cliconfig.LoadViewConfig(path, base)
				},
			}))
		}
	}

	v, err := view.New(sched, viewCfg, opts...)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	var runner *scenario.Runner
	if sc != nil {
		if runner, err = scenario.Build(sc, v, logger); err != nil {
			return err
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := v.Start(runCtx); err != nil {
		return fmt.Errorf("start view: %w", err)
	}
	logger.Info("transition estimates",
		log.String("view", v.Name()),
		log.String("id", v.ID()),
		log.Duration("estimated_show", v.EstimateShowDuration()),
		log.Duration("estimated_hide", v.EstimateHideDuration()),
	)

	if runner != nil {
		runner.Start()
		sched.Go("scenario-end", func() bool {
			if !runner.Finished() {
				return false
			}
			logger.Info("scenario finished",
				log.String("scenario", sc.Name),
				log.Int("steps", runner.Fired()),
				log.Uint64("frame", sched.Frame()))
			cancel()
			return true
		})
	}

	err = sched.Run(runCtx)
	if ctx.Err() != nil {
		logger.Info("received signal, stopping...")
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer closeCancel()
	if cerr := v.Close(closeCtx); cerr != nil {
		return fmt.Errorf("close view: %w", cerr)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger log.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", log.Err(err))
		}
	}()
	logger.Info("serving metrics", log.String("addr", addr))
	return srv
}

func printEstimates(cmd *cobra.Command, cfg cliconfig.Config) error {
	if cfg.ScenarioPath == "" {
		return errors.New("estimate needs --scenario")
	}
	sc, err := scenario.Load(cfg.ScenarioPath)
	if err != nil {
		return err
	}
	viewCfg, err := sc.ViewConfig(cfg.View)
	if err != nil {
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}

	v, err := view.New(tick.New(tick.WithInterval(cfg.TickInterval)), viewCfg)
	if err != nil {
		return err
	}
	if _, err := scenario.Build(sc, v, nil); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "view:  %s\n", v.Name())
	fmt.Fprintf(out, "show:  %s\n", v.EstimateShowDuration())
	fmt.Fprintf(out, "hide:  %s\n", v.EstimateHideDuration())
	return nil
}
