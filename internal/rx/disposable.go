package rx

import "sync"

// Disposable is a handle representing a scoped acquisition of a live
// subscription or resource. Disposing it terminates the association.
// Dispose is idempotent: calls after the first are no-ops.
type Disposable interface {
	// Dispose releases the resource. Safe to call multiple times.
	Dispose()

	// IsDisposed reports whether Dispose has been called.
	IsDisposed() bool
}

// funcDisposable runs a teardown function exactly once.
type funcDisposable struct {
	once     sync.Once
	mu       sync.Mutex
	disposed bool
	teardown func()
}

// NewDisposable creates a Disposable that runs teardown on the first
// Dispose call. A nil teardown is allowed.
func NewDisposable(teardown func()) Disposable {
	return &funcDisposable{teardown: teardown}
}

// Dispose runs the teardown exactly once.
func (d *funcDisposable) Dispose() {
	d.once.Do(func() {
		d.mu.Lock()
		d.disposed = true
		d.mu.Unlock()
		if d.teardown != nil {
			d.teardown()
		}
	})
}

// IsDisposed reports whether the teardown has run.
func (d *funcDisposable) IsDisposed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.disposed
}

// nopDisposable is already spent at creation.
type nopDisposable struct{}

func (nopDisposable) Dispose()         {}
func (nopDisposable) IsDisposed() bool { return true }

// Disposed returns a Disposable that is already disposed. Useful for
// synchronous work that finished before a handle could be returned.
func Disposed() Disposable {
	return nopDisposable{}
}

// Composite aggregates child disposables and disposes them together.
// Children added after the composite has been disposed are disposed
// immediately. The zero value is ready to use.
type Composite struct {
	mu       sync.Mutex
	disposed bool
	children []Disposable
}

// NewComposite creates a composite holding the given children.
func NewComposite(children ...Disposable) *Composite {
	return &Composite{children: children}
}

// Add registers a child. If the composite is already disposed the child
// is disposed immediately.
func (c *Composite) Add(d Disposable) {
	if d == nil {
		return
	}
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		d.Dispose()
		return
	}
	c.children = append(c.children, d)
	c.mu.Unlock()
}

// Dispose disposes all children in the order they were added.
func (c *Composite) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	children := c.children
	c.children = nil
	c.mu.Unlock()

	for _, d := range children {
		d.Dispose()
	}
}

// IsDisposed reports whether the composite has been disposed.
func (c *Composite) IsDisposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}
