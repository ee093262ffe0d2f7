package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Field returns err annotated with the name of the message or model field
// it was found in, or nil when err is nil. A stack trace is attached if
// err carries none.
//
// Field names follow the Go struct, for example Maker. Nested fields are
// joined with a dot (Offered.Ticker) and list elements use their index
// (Coins.0).
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if errIsNil(err) {
		return nil
	}
	if len(args) != 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: withStack(err),
		field:  fieldName,
		desc:   description,
	}
}

// AppendField adds the error of a single field to the validation errors
// collected so far. Both can be nil.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	msg := err.parent.Error()
	if err.desc != "" {
		msg = err.desc + ": " + msg
	}
	return fmt.Sprintf("field %q: %s", err.field, msg)
}

func (err *fieldError) Cause() error { return err.parent }

func (err *fieldError) Field() string { return err.field }

type fielder interface {
	Field() string
}

// FieldErrors collects the errors reported for the given field. Multi
// errors are searched through all their members.
func FieldErrors(err error, fieldName string) []error {
	var found []error
	for !errIsNil(err) {
		if f, ok := err.(fielder); ok && f.Field() == fieldName {
			return append(found, err)
		}
		if u, ok := err.(unpacker); ok {
			for _, member := range u.Unpack() {
				found = append(found, FieldErrors(member, fieldName)...)
			}
			return found
		}
		c, ok := err.(causer)
		if !ok {
			break
		}
		err = c.Cause()
	}
	return found
}

// withStack makes sure the innermost error records where it was first
// wrapped.
func withStack(err error) error {
	if stackTrace(err) != nil {
		return err
	}
	return errors.WithStack(err)
}
