package stress

import (
	"fmt"
	"github.com/piercep/thread-safe-collections/pkg/cfg"
	"github.com/piercep/thread-safe-collections/pkg/collections"
	"github.com/piercep/thread-safe-collections/pkg/common/intsx"
	"github.com/piercep/thread-safe-collections/pkg/common/syncx"
	"time"
)

const (
	WorkersMax = 1024
	ReadersMax = 256
)

// Opts defines how hard scenarios hit the stack
type Opts struct {
	Scenarios    string
	Workers      int
	Readers      int
	Operations   int
	Batch        int
	LockWaitWarn time.Duration
	Progress     bool
}

func NewOpts() *Opts {
	return &Opts{
		Scenarios:  "*",
		Workers:    4,
		Readers:    2,
		Operations: 1000,
		Batch:      64,
		Progress:   true,
	}
}

func (o *Opts) Configure(config *cfg.Config) {
	opts := config.Values().Stress

	if len(opts.Scenarios) > 0 {
		o.Scenarios = opts.Scenarios
	}
	if opts.Workers > 0 {
		o.Workers = opts.Workers
	}
	if opts.Readers > 0 {
		o.Readers = opts.Readers
	}
	if opts.Operations > 0 {
		o.Operations = opts.Operations
	}
	if opts.Batch > 0 {
		o.Batch = opts.Batch
	}
	o.LockWaitWarn = opts.LockWaitWarn
}

func (o *Opts) Validate() error {
	if o.Workers <= 0 || o.Readers <= 0 || o.Operations <= 0 || o.Batch <= 0 {
		return fmt.Errorf("stress options need to be positive: workers=%d, readers=%d, operations=%d, batch=%d", o.Workers, o.Readers, o.Operations, o.Batch)
	}
	o.Workers = intsx.Clamp(o.Workers, 1, WorkersMax)
	o.Readers = intsx.Clamp(o.Readers, 1, ReadersMax)
	return nil
}

func (o *Opts) newStack(name string) *collections.TStack[int] {
	return collections.NewWithLock[int](o.newLock(name), nil)
}

func (o *Opts) newLock(name string) syncx.RWLocker {
	lockName := "stress-" + name
	if o.LockWaitWarn > 0 {
		return syncx.NewRWLockWithWaitWarn(lockName, o.LockWaitWarn)
	}
	return syncx.NewRWLock(lockName)
}
