package syncx_test

import (
	"github.com/piercep/thread-safe-collections/pkg/common/syncx"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func awaitOrFail(t *testing.T, done <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal(msg)
	}
}

func TestRWLockReadersShare(t *testing.T) {
	t.Parallel()

	l := syncx.NewRWLock("test")
	var inside sync.WaitGroup
	inside.Add(2)
	done := make(chan struct{})
	var finished sync.WaitGroup
	for i := 0; i < 2; i++ {
		finished.Add(1)
		go func() {
			defer finished.Done()
			_ = syncx.WithReadLock(l, func() error {
				inside.Done()
				inside.Wait()
				return nil
			})
		}()
	}
	go func() {
		finished.Wait()
		close(done)
	}()
	awaitOrFail(t, done, "readers did not hold the lock together")
}

func TestRWLockWriterExcludesReader(t *testing.T) {
	t.Parallel()

	l := syncx.NewRWLock("test")
	var readerEntered atomic.Bool
	done := make(chan struct{})

	l.Lock()
	go func() {
		defer close(done)
		_ = syncx.WithReadLock(l, func() error {
			readerEntered.Store(true)
			return nil
		})
	}()
	time.Sleep(50 * time.Millisecond)
	assert.False(t, readerEntered.Load())
	l.Unlock()

	awaitOrFail(t, done, "reader never entered")
	assert.True(t, readerEntered.Load())
}

func TestRWLockUpgradeKeepsWritersOut(t *testing.T) {
	t.Parallel()

	l := syncx.NewRWLock("test")
	value := 0
	writerDone := make(chan struct{})
	var seenOnUpgrade int

	err := syncx.WithUpgradeableReadLock(l, func(u syncx.Upgrader) error {
		go func() {
			defer close(writerDone)
			_ = syncx.WithWriteLock(l, func() error {
				value = 2
				return nil
			})
		}()
		time.Sleep(50 * time.Millisecond)
		return u.WithWriteLock(func() error {
			seenOnUpgrade = value
			value = 1
			return nil
		})
	})
	require.NoError(t, err)
	awaitOrFail(t, writerDone, "writer never entered")

	assert.Equal(t, 0, seenOnUpgrade)
	assert.Equal(t, 2, value)
}

func TestRWLockReaderAlongsideUpgradeable(t *testing.T) {
	t.Parallel()

	l := syncx.NewRWLock("test")
	done := make(chan struct{})

	l.UpgradeableRLock()
	go func() {
		defer close(done)
		l.RLock()
		l.RUnlock()
	}()
	awaitOrFail(t, done, "reader blocked by upgradeable reader")
	l.UpgradeableRUnlock()
}

func TestRWLockWaitWarn(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	l := syncx.NewRWLockWithWaitWarn("slow", time.Millisecond)
	assert.Equal(t, "slow", l.Name())

	l.Lock()
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.RLock()
		l.RUnlock()
	}()
	time.Sleep(30 * time.Millisecond)
	l.Unlock()
	awaitOrFail(t, done, "reader never entered")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "slow", entry.Data["lock"])
	assert.Equal(t, "read", entry.Data["mode"])
}

func TestModeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "read", syncx.ModeRead.String())
	assert.Equal(t, "write", syncx.ModeWrite.String())
	assert.Equal(t, "upgradeable read", syncx.ModeUpgradeableRead.String())
	assert.Equal(t, "unknown", syncx.Mode(42).String())
}
