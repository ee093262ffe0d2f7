package app

import (
	"reflect"

	"github.com/iov-one/swapchain"
)

// Decorators is a stack of decorators waiting for the handler they wrap.
// The first decorator is the outermost one and runs first.
//
//   app.ChainDecorators(
//     utils.NewLogging(),
//     utils.NewRecovery(),
//     sigs.NewDecorator(),
//     utils.NewSavepoint().OnDeliver(),
//   ).WithHandler(app.NewRouter(auth))
//
type Decorators struct {
	stack []swapchain.Decorator
}

// ChainDecorators returns a stack of given decorators. Nil decorators are
// skipped, so optional ones can be passed unconditionally.
func ChainDecorators(ds ...swapchain.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a new stack with ds added below the existing decorators.
// The receiver is not modified.
func (d Decorators) Chain(ds ...swapchain.Decorator) Decorators {
	stack := make([]swapchain.Decorator, 0, len(d.stack)+len(ds))
	stack = append(stack, d.stack...)
	for _, dc := range ds {
		if !isNilDecorator(dc) {
			stack = append(stack, dc)
		}
	}
	return Decorators{stack: stack}
}

func isNilDecorator(d swapchain.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack with the handler every request ends at.
func (d Decorators) WithHandler(h swapchain.Handler) swapchain.Handler {
	for i := len(d.stack) - 1; i >= 0; i-- {
		h = layer{dec: d.stack[i], next: h}
	}
	return h
}

// layer runs one decorator in front of the rest of the stack.
type layer struct {
	dec  swapchain.Decorator
	next swapchain.Handler
}

func (l layer) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.CheckResult, error) {
	return l.dec.Check(ctx, db, tx, l.next)
}

func (l layer) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx) (*swapchain.DeliverResult, error) {
	return l.dec.Deliver(ctx, db, tx, l.next)
}
