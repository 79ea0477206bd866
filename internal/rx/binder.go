package rx

import (
	"github.com/dshills/rxstorm/internal/logging"
)

// binderConfig contains configuration for a Binder.
type binderConfig struct {
	scheduler Scheduler
	logger    *logging.Logger
}

// BinderOption configures a Binder.
type BinderOption func(*binderConfig)

// WithBinderScheduler sets the scheduler the bound action is dispatched
// onto. Defaults to the process main scheduler.
func WithBinderScheduler(s Scheduler) BinderOption {
	return func(c *binderConfig) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithBinderLogger sets the logger used when an Error event reaches the
// binder in non-strict mode.
func WithBinderLogger(l *logging.Logger) BinderOption {
	return func(c *binderConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Binder is a restricted observer for pipelines that are not meant to
// fail. Only Next events are acted upon; the bound action is always
// dispatched onto the configured scheduler regardless of which goroutine
// delivered the event. Completed events are ignored.
//
// An Error event reaching a Binder means the upstream pipeline was not
// designed to fail: in strict mode it panics with a diagnostic, otherwise
// it is logged and discarded. It is never delivered to the action.
type Binder[T any] struct {
	action func(T)
	cfg    binderConfig
}

// NewBinder creates a binder around action. A nil action is replaced with
// a no-op.
func NewBinder[T any](action func(T), opts ...BinderOption) *Binder[T] {
	if action == nil {
		action = func(T) {}
	}
	cfg := binderConfig{
		scheduler: nil, // resolved per event so SetMain can run after construction
		logger:    logging.Get(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Binder[T]{action: action, cfg: cfg}
}

// On implements the Observer interface.
func (b *Binder[T]) On(event Event[T]) {
	switch event.Kind() {
	case KindNext:
		v := event.Value()
		b.scheduler().Schedule(func() { b.action(v) })
	case KindError:
		if IsStrict() {
			panic("rx: binder received error event: " + event.Err().Error())
		}
		b.cfg.logger.Error("binder received error event, dropping: %v", event.Err())
	case KindCompleted:
		// Terminal events are not forwarded to the action.
	}
}

func (b *Binder[T]) scheduler() Scheduler {
	if b.cfg.scheduler != nil {
		return b.cfg.scheduler
	}
	return Main()
}
