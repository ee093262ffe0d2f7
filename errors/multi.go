package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored. If no
// error is left, nil is returned. A single error is returned as it is.
//
// Appending multi errors flattens them, so the result is always one level deep.
func Append(errs ...error) error {
	var all []error
	for _, e := range errs {
		if errIsNil(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			all = append(all, u.Unpack()...)
			continue
		}
		all = append(all, e)
	}

	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return multiErr(all)
	}
}

// unpacker is implemented by errors that carry more than one error.
type unpacker interface {
	Unpack() []error
}

type multiErr []error

func (errs multiErr) Unpack() []error {
	return errs
}

func (errs multiErr) Error() string {
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(errs), strings.Join(points, "\n\t"))
}

// ABCICode returns the code of the first error, so the client sees the same
// failure a fail fast validation would report.
func (errs multiErr) ABCICode() uint32 {
	return abciCode(errs[0])
}

var _ unpacker = multiErr(nil)
var _ coder = multiErr(nil)
