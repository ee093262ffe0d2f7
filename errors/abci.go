package errors

import (
	"fmt"
)

// SuccessABCICode is the code of a successful ABCI response.
const SuccessABCICode = 0

// Errors without a registered code are reported under the internal code
// with a generic message.
const (
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

type coder interface {
	ABCICode() uint32
}

// ABCIInfo returns the code and log of the ABCI response reporting err.
// Outside of debug mode, internal errors and panics are redacted. In debug
// mode the log holds the full message with the stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode, code == ErrPanic.code:
		return internalABCICode, internalABCILog
	default:
		return code, err.Error()
	}
}

// abciCode returns the code of the first error in the chain that has one.
func abciCode(err error) uint32 {
	for !errIsNil(err) {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}
		c, ok := err.(causer)
		if !ok {
			return internalABCICode
		}
		err = c.Cause()
	}
	return SuccessABCICode
}

// Redact replaces internal errors and panics with a generic internal
// error. In debug mode err is returned unchanged.
func Redact(err error, debug bool) error {
	if debug {
		return err
	}
	if ErrPanic.Is(err) || abciCode(err) == internalABCICode {
		return &Error{code: internalABCICode, desc: internalABCILog}
	}
	return err
}

// ABCIError rebuilds the error reported by an ABCI response so that it can
// be tested with Is. Codes that are not registered give an internal error.
func ABCIError(code uint32, log string) error {
	if code == SuccessABCICode {
		return nil
	}
	if root, ok := registry[code]; ok && code != internalABCICode {
		return Wrap(root, log)
	}
	return fmt.Errorf("%s (code %d)", log, code)
}
