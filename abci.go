package swapchain

import (
	"github.com/iov-one/swapchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a successful check. Failures are returned as
// errors.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated is the work a transaction is expected to take. It is
	// reported to tendermint as the wanted gas.
	GasAllocated int64
}

// NewCheck returns a check result with the gas and log set.
func NewCheck(gasAllocated int64, log string) *CheckResult {
	return &CheckResult{GasAllocated: gasAllocated, Log: log}
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{
		Data:      c.Data,
		Log:       c.Log,
		GasWanted: c.GasAllocated,
	}
}

// DeliverResult is returned by a successful delivery. Data usually holds
// the key of the created or updated entity and Tags are indexed by
// tendermint for transaction search.
type DeliverResult struct {
	Data    []byte
	Log     string
	Tags    []common.KVPair
	GasUsed int64
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{
		Data:    d.Data,
		Log:     d.Log,
		Tags:    d.Tags,
		GasUsed: d.GasUsed,
	}
}

// CheckOrError returns the abci response of a check.
func CheckOrError(result *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return result.ToABCI()
}

// DeliverOrError returns the abci response of a delivery.
func DeliverOrError(result *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return result.ToABCI()
}

// ParseDeliverOrError turns an abci response back into a result, or into
// an error carrying the response code when the transaction failed.
func ParseDeliverOrError(res abci.ResponseDeliverTx) (*DeliverResult, error) {
	if res.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(res.Code, res.Log)
	}
	d := DeliverResult{Data: res.Data, Log: res.Log, Tags: res.Tags, GasUsed: res.GasUsed}
	return &d, nil
}

// CheckTxError returns the abci response for a failed check. Unless debug
// is set, errors that are not registered are redacted.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := abciFailure("cannot check tx: ", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

// DeliverTxError returns the abci response for a failed delivery. Unless
// debug is set, errors that are not registered are redacted.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := abciFailure("cannot deliver tx: ", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

func QueryError(err error, debug bool) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseQuery{Code: code, Log: log}
}

func abciFailure(prefix string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, prefix + log
}
