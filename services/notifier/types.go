package notifier

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

var ErrNotify = errors.New("notification failed")

const (
	PriorityDefault = "default"
	TagComputer     = "computer"
)

// Message is what a sink delivers for one listing.
type Message struct {
	Subject  string
	Body     string
	Priority string
	Tags     []string
	Actions  []Action
}

// Action is a link the recipient can open from the notification.
type Action struct {
	Label string
	URL   string
}

type Sink interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

type Impl struct {
	sink     Sink
	location *time.Location
	timeout  time.Duration
	sent     *cache.Cache
}
