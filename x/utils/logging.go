package utils

import (
	"time"

	"github.com/iov-one/swapchain"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes one entry per transaction to the context logger, with the
// message path and the processing time in microseconds. Failures are logged
// as errors. Successful checks are logged at debug level and successful
// deliveries at info level.
type Logging struct{}

var _ swapchain.Decorator = Logging{}

func NewLogging() Logging {
	return Logging{}
}

func (Logging) Check(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Checker) (*swapchain.CheckResult, error) {
	logger, start := txLogger(ctx, tx), time.Now()
	res, err := next.Check(ctx, db, tx)
	if err != nil {
		logFailure(logger, start, err)
	} else {
		logger.Debug(res.Log, "duration", since(start))
	}
	return res, err
}

func (Logging) Deliver(ctx swapchain.Context, db swapchain.KVStore, tx swapchain.Tx, next swapchain.Deliverer) (*swapchain.DeliverResult, error) {
	logger, start := txLogger(ctx, tx), time.Now()
	res, err := next.Deliver(ctx, db, tx)
	if err != nil {
		logFailure(logger, start, err)
	} else {
		logger.Info(res.Log, "duration", since(start))
	}
	return res, err
}

func txLogger(ctx swapchain.Context, tx swapchain.Tx) log.Logger {
	return swapchain.GetLogger(ctx).With("path", swapchain.GetPath(tx))
}

func logFailure(logger log.Logger, start time.Time, err error) {
	logger.Error("", "duration", since(start), "err", err)
}

func since(start time.Time) time.Duration {
	return time.Since(start) / time.Microsecond
}
