// Package syncx runs units of work under a reader/writer lock mode.
//
// Every helper acquires the mode before the unit runs and releases it in a deferred call,
// so the lock is released exactly once whether the unit returns normally, returns an error or panics.
// Errors are returned after the release and panics keep unwinding after it.
package syncx

// Upgrader is handed to units running under the upgradeable read mode.
// It must not be used after that unit returns.
type Upgrader interface {
	// WithWriteLock promotes the held upgradeable read mode to write mode for the duration of action
	WithWriteLock(action func() error) error
}

func WithReadLock(l RWLocker, action func() error) error {
	l.RLock()
	defer l.RUnlock()
	return action()
}

func WithReadLockValue[T any](l RWLocker, action func() (T, error)) (T, error) {
	l.RLock()
	defer l.RUnlock()
	return valueOrZero(action())
}

func WithWriteLock(l RWLocker, action func() error) error {
	l.Lock()
	defer l.Unlock()
	return action()
}

func WithWriteLockValue[T any](l RWLocker, action func() (T, error)) (T, error) {
	l.Lock()
	defer l.Unlock()
	return valueOrZero(action())
}

func WithUpgradeableReadLock(l RWLocker, action func(u Upgrader) error) error {
	l.UpgradeableRLock()
	defer l.UpgradeableRUnlock()
	return action(upgrader{l})
}

func WithUpgradeableReadLockValue[T any](l RWLocker, action func(u Upgrader) (T, error)) (T, error) {
	l.UpgradeableRLock()
	defer l.UpgradeableRUnlock()
	return valueOrZero(action(upgrader{l}))
}

type upgrader struct {
	lock RWLocker
}

func (u upgrader) WithWriteLock(action func() error) error {
	u.lock.Upgrade()
	defer u.lock.Downgrade()
	return action()
}

func valueOrZero[T any](value T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}
