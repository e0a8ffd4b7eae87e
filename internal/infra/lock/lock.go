// Package lock serializes writes that touch the same provider schedule.
package lock

import (
	"context"
	"fmt"
	"time"
)

// Locker acquires an exclusive lock on key. The returned func releases it
// and must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

func ProviderKey(providerID uint) string {
	return fmt.Sprintf("provider:%d", providerID)
}

type observed struct {
	next    Locker
	observe func(time.Duration)
}

// WithWaitObserver reports how long each Lock call waited, successful or
// not.
func WithWaitObserver(l Locker, observe func(time.Duration)) Locker {
	return &observed{next: l, observe: observe}
}

func (o *observed) Lock(ctx context.Context, key string) (func(), error) {
	started := time.Now()
	unlock, err := o.next.Lock(ctx, key)
	o.observe(time.Since(started))
	return unlock, err
}
