// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/bemwalk/bemwalk/internal/config"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

type (
	// App wires CLI services and shared dependencies. Every command handler
	// receives the App and reaches configuration, walkers and output through it.
	App struct {
		Config  ConfigProvider
		Walkers WalkerFactory
		stdout  io.Writer
		stderr  io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config  ConfigProvider
		Walkers WalkerFactory
		Stdout  io.Writer
		Stderr  io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Path(opts config.LoadOptions) (string, error)
	}

	// WalkerFactory builds the walker for one `bemwalk walk` run.
	WalkerFactory func(opts ...walk.Option) *walk.Walker

	// rootFlags holds the persistent flag values shared by all subcommands.
	rootFlags struct {
		configPath string
		envFile    string
		verbose    bool
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:  deps.Config,
		Walkers: deps.Walkers,
		stdout:  deps.Stdout,
		stderr:  deps.Stderr,
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Walkers == nil {
		app.Walkers = walk.New
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

func (f *rootFlags) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: f.configPath,
		EnvFile:        f.envFile,
	}
}

// loadConfig loads configuration honoring --config and --env-file.
func (a *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	return a.Config.Load(ctx, flags.loadOptions())
}
