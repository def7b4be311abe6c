package scheduler

import (
	"context"
	"sync"
	"time"
)

// Cycle is one unit of work repeated by the scheduler.
type Cycle func(ctx context.Context) error

type Service interface {
	Start(ctx context.Context)
	Stop()
}

type Impl struct {
	interval time.Duration
	cycle    Cycle

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}
