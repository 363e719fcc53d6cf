// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"

	"github.com/bemwalk/bemwalk/internal/config"
	"github.com/bemwalk/bemwalk/internal/testutil"
	"github.com/bemwalk/bemwalk/pkg/walk"
)

// staticConfig is a ConfigProvider returning a fixed configuration.
type staticConfig struct {
	cfg  *config.Config
	path string
	err  error
	last config.LoadOptions
}

func (s *staticConfig) Load(_ context.Context, opts config.LoadOptions) (*config.Config, error) {
	s.last = opts
	if s.err != nil {
		return nil, s.err
	}
	return s.cfg, nil
}

func (s *staticConfig) Path(opts config.LoadOptions) (string, error) {
	s.last = opts
	return s.path, s.err
}

type testApp struct {
	*App
	config *staticConfig
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestApp builds an App whose walkers read an in-memory tree.
func newTestApp(t *testing.T, cfg *config.Config, paths ...string) *testApp {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	fsys := testutil.NewMemTree(t, paths...)
	return newTestAppFS(cfg, fsys)
}

func newTestAppFS(cfg *config.Config, fsys afero.Fs) *testApp {
	ta := &testApp{
		config: &staticConfig{cfg: cfg},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	deps := Dependencies{
		Config: ta.config,
		Stdout: ta.stdout,
		Stderr: ta.stderr,
	}
	if fsys != nil {
		deps.Walkers = func(opts ...walk.Option) *walk.Walker {
			return walk.New(append([]walk.Option{walk.WithFS(fsys)}, opts...)...)
		}
	}
	ta.App = NewApp(deps)
	return ta
}

// run executes the command tree with args, the way fang would minus styling.
func (ta *testApp) run(args ...string) error {
	root := NewRootCommand(ta.App)
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}
