package memory

import (
	"context"
	"sync"

	"corengine/internal/ports"
)

// Locker is a per-key mutex for single-process deployments.
type Locker struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

var _ ports.Locker = (*Locker)(nil)

func NewLocker() *Locker { return &Locker{held: make(map[string]chan struct{})} }

// Obtain blocks until key is free or ctx is done.
func (l *Locker) Obtain(ctx context.Context, key string) (ports.Lock, error) {
	for {
		l.mu.Lock()
		wait, busy := l.held[key]
		if !busy {
			l.held[key] = make(chan struct{})
			l.mu.Unlock()
			return &lock{l: l, key: key}, nil
		}
		l.mu.Unlock()
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

type lock struct {
	l    *Locker
	key  string
	once sync.Once
}

func (k *lock) Release(context.Context) error {
	k.once.Do(func() {
		k.l.mu.Lock()
		defer k.l.mu.Unlock()
		close(k.l.held[k.key])
		delete(k.l.held, k.key)
	})
	return nil
}
