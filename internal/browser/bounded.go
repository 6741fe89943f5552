package browser

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// BoundedLauncher caps the number of sessions alive at the same time.
// Launch blocks until a slot frees up or ctx is done; the slot is returned
// when the session is closed.
type BoundedLauncher struct {
	inner Launcher
	sem   *semaphore.Weighted
}

// NewBoundedLauncher wraps inner with a limit of n concurrent sessions.
func NewBoundedLauncher(inner Launcher, n int64) *BoundedLauncher {
	return &BoundedLauncher{inner: inner, sem: semaphore.NewWeighted(n)}
}

func (b *BoundedLauncher) Launch(ctx context.Context) (Session, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return nil, newError(OpLaunch, err)
	}

	s, err := b.inner.Launch(ctx)
	if err != nil {
		b.sem.Release(1)
		return nil, err
	}

	return &boundedSession{Session: s, release: func() { b.sem.Release(1) }}, nil
}

type boundedSession struct {
	Session
	once    sync.Once
	release func()
}

func (s *boundedSession) Close() error {
	var err error
	s.once.Do(func() {
		err = s.Session.Close()
		s.release()
	})
	return err
}
