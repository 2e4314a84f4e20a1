// Package pkg provides configuration and a facade for thread-safe collections tooling
package pkg

import (
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/piercep/thread-safe-collections/pkg/stress"
	"io"
	"os"
)

// TSC is a facade to access stress-testing and demo API
type TSC struct {
	output       io.Writer
	config       *cfg.Config
	stressOpts   *stress.Opts
	stressRunner *stress.Runner
}

func DefaultTSC() *TSC {
	return NewTSC(cfg.NewConfig())
}

func NewTSC(config *cfg.Config) *TSC {
	result := new(TSC)
	result.output = os.Stdout
	result.stressOpts = stress.NewOpts()
	result.stressRunner = stress.NewRunner(result.stressOpts)
	result.Configure(config)
	return result
}

func (t *TSC) Configure(config *cfg.Config) {
	t.config = config
	t.stressOpts.Configure(config)
}

func (t *TSC) Output() io.Writer {
	return t.output
}

func (t *TSC) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TSC) Config() *cfg.Config {
	return t.config
}

func (t *TSC) StressOpts() *stress.Opts {
	return t.stressOpts
}

func (t *TSC) StressRunner() *stress.Runner {
	return t.stressRunner
}
