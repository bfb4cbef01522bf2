package lock

import (
	"context"
	"sync"
	"time"
)

var (
	lockMap sync.Map
)

// TryRun выполняет safeCode, если ключ свободен. Ключ занят до завершения safeCode.
func TryRun(key string, safeCode func() error) (success bool, err error) {
	if _, loaded := lockMap.LoadOrStore(key, true); loaded {
		return false, nil
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

// WithDelay ждет освобождения ключа не дольше wait
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	if wait <= 0 {
		return TryRun(key, safeCode)
	}
	isTimeout := time.After(wait)
	for {
		if _, loaded := lockMap.LoadOrStore(key, true); !loaded {
			break
		}
		select {
		case <-isTimeout:
			return false, nil
		case <-ctx.Done():
			return false, nil
		case <-time.After(50 * time.Millisecond):
		}
	}
	defer lockMap.Delete(key)
	return true, safeCode()
}

func IsLocked(key string) bool {
	_, locked := lockMap.Load(key)
	return locked
}
