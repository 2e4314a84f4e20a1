package syncx

import (
	log "github.com/sirupsen/logrus"
	"sync"
	"time"
)

type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
	ModeUpgradeableRead
)

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeUpgradeableRead:
		return "upgradeable read"
	default:
		return "unknown"
	}
}

// RWLocker is a reader/writer lock offering an upgradeable read mode.
// Upgrade and Downgrade may only be called by the current upgradeable read holder.
type RWLocker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
	UpgradeableRLock()
	UpgradeableRUnlock()
	Upgrade()
	Downgrade()
}

// RWLock is a process-local RWLocker.
//
// Writers and the upgradeable reader are serialized by an extra mutex, so at most one of them
// exists at a time while plain readers keep sharing the lock. Because no other writer can enter
// while the upgradeable reader is promoted, the data it has read stays valid after Upgrade.
// The lock is not reentrant: acquiring any mode twice from the same goroutine may block forever.
type RWLock struct {
	name     string
	waitWarn time.Duration

	rw      sync.RWMutex
	writers sync.Mutex
}

func NewRWLock(name string) *RWLock {
	return &RWLock{name: name}
}

// NewRWLockWithWaitWarn creates a lock reporting acquisitions which waited longer than threshold
func NewRWLockWithWaitWarn(name string, threshold time.Duration) *RWLock {
	return &RWLock{name: name, waitWarn: threshold}
}

func (l *RWLock) Name() string {
	return l.name
}

func (l *RWLock) RLock() {
	l.acquire(ModeRead, l.rw.RLock)
}

func (l *RWLock) RUnlock() {
	l.rw.RUnlock()
}

func (l *RWLock) Lock() {
	l.acquire(ModeWrite, func() {
		l.writers.Lock()
		l.rw.Lock()
	})
}

func (l *RWLock) Unlock() {
	l.rw.Unlock()
	l.writers.Unlock()
}

func (l *RWLock) UpgradeableRLock() {
	l.acquire(ModeUpgradeableRead, func() {
		l.writers.Lock()
		l.rw.RLock()
	})
}

func (l *RWLock) UpgradeableRUnlock() {
	l.rw.RUnlock()
	l.writers.Unlock()
}

func (l *RWLock) Upgrade() {
	l.rw.RUnlock()
	l.acquire(ModeWrite, l.rw.Lock)
}

func (l *RWLock) Downgrade() {
	l.rw.Unlock()
	l.rw.RLock()
}

func (l *RWLock) acquire(mode Mode, lock func()) {
	if l.waitWarn <= 0 {
		lock()
		return
	}
	started := time.Now()
	lock()
	if waited := time.Since(started); waited > l.waitWarn {
		log.WithFields(log.Fields{
			"lock":   l.name,
			"mode":   mode.String(),
			"waited": waited,
		}).Warnf("lock '%s' acquisition in %s mode took longer than %s", l.name, mode, l.waitWarn)
	}
}
