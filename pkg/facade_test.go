package pkg_test

import (
	"bytes"
	"github.com/piercep/thread-safe-collections/pkg"
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestTSCConfigure(t *testing.T) {
	t.Setenv(cfg.FileEnvVar, t.TempDir()+"/missing.yml")
	t.Setenv("TSC_STRESS_WORKERS", "3")
	t.Setenv("TSC_STRESS_LOCK_WAIT_WARN", "250ms")

	tsc := pkg.DefaultTSC()
	opts := tsc.StressOpts()
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, 250*time.Millisecond, opts.LockWaitWarn)
	assert.Equal(t, "*", opts.Scenarios)
	assert.Same(t, opts, tsc.StressRunner().Opts())

	buf := &bytes.Buffer{}
	tsc.SetOutput(buf)
	assert.Same(t, buf, tsc.Output())
}
