package weavetest

import "github.com/iov-one/swapchain"

// calls counts Check and Deliver invocations, whatever their outcome.
type calls struct {
	check   int
	deliver int
}

func (c *calls) CheckCallCount() int   { return c.check }
func (c *calls) DeliverCallCount() int { return c.deliver }
func (c *calls) CallCount() int        { return c.check + c.deliver }

// Handler returns the configured results or errors.
//
// When WriteKey is set, Deliver stores it in the database before returning,
// error or not, so that a test can see whether the write survived.
type Handler struct {
	calls

	CheckResult swapchain.CheckResult
	CheckErr    error

	DeliverResult swapchain.DeliverResult
	DeliverErr    error

	WriteKey []byte
}

var _ swapchain.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	h.check++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	h.deliver++
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, []byte("written")); err != nil {
			return nil, err
		}
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

// Decorator passes the call to the next handler unless CheckErr or
// DeliverErr is set, in which case that error is returned and next is not
// called.
type Decorator struct {
	calls

	CheckErr   error
	DeliverErr error
}

var _ swapchain.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (*swapchain.CheckResult, error) {
	d.check++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (*swapchain.DeliverResult, error) {
	d.deliver++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler running h behind d.
func Decorate(h swapchain.Handler, d swapchain.Decorator) swapchain.Handler {
	return decorated{h: h, d: d}
}

type decorated struct {
	h swapchain.Handler
	d swapchain.Decorator
}

func (x decorated) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	return x.d.Check(ctx, db, tx, x.h)
}

func (x decorated) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	return x.d.Deliver(ctx, db, tx, x.h)
}
