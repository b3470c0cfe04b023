// Package uiview provides a visibility state machine for UI views whose
// show and hide transitions wait for their animations to finish.
//
// Example usage:
//
//	cfg := uiview.DefaultConfig()
//	cfg.Name = "menu"
//	cfg.AutoHideAfterShow = true
//	v, err := uiview.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v.Show()
//	if err := uiview.Run(ctx, v); err != nil {
//	    log.Fatal(err)
//	}
package uiview

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/CoderValencia/uiview/internal/cliconfig"
	"github.com/CoderValencia/uiview/pkg/tick"
	"github.com/CoderValencia/uiview/pkg/view"
)

// Config holds the behavioural switches of a view.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = view.Config

// View is an animation-gated visibility state machine.
type View = view.View

// Option configures a View.
type Option = view.Option

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return view.DefaultConfig()
}

// New creates a view on its own scheduler ticking at tick.DefaultInterval.
func New(cfg Config, opts ...Option) (*View, error) {
	return view.New(tick.New(), cfg, opts...)
}

// Run starts v and steps its scheduler in real time until ctx is cancelled,
// then closes v. A cancelled context is not an error.
func Run(ctx context.Context, v *View) error {
	if err := v.Start(ctx); err != nil {
		return err
	}
	err := v.Scheduler().Run(ctx)
	if cerr := v.Close(context.WithoutCancel(ctx)); cerr != nil {
		return cerr
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Logger returns the package-level zerolog logger used by the CLI.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
