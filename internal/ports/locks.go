package ports

import "context"

// Lock is a held lock.
type Lock interface {
	Release(ctx context.Context) error
}

// Locker holds a named critical section across service replicas. Audit
// scheduling uses it to span sequence allocation and the audit insert.
type Locker interface {
	Obtain(ctx context.Context, key string) (Lock, error)
}
