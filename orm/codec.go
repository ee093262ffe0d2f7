package orm

import (
	"reflect"

	"github.com/iov-one/swapchain/errors"
	amino "github.com/tendermint/go-amino"
)

// Models are concrete structs, so the codec needs no registrations and
// serialized values carry no type prefix.
var cdc = amino.NewCodec()

// Marshal serializes a model into its stored representation. A zero value
// model is represented by an empty, non nil slice.
func Marshal(m interface{}) ([]byte, error) {
	raw, err := cdc.MarshalBinaryBare(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "cannot marshal %T: %s", m, err)
	}
	if raw == nil {
		raw = []byte{}
	}
	return raw, nil
}

// Unmarshal loads the stored representation into given destination, which
// must be a pointer.
func Unmarshal(raw []byte, dest interface{}) error {
	if len(raw) == 0 {
		// amino refuses empty input, but it is how a zero value is stored
		v := reflect.ValueOf(dest)
		if v.Kind() != reflect.Ptr || v.IsNil() {
			return errors.Wrapf(errors.ErrHuman, "destination %T must be a pointer", dest)
		}
		v.Elem().Set(reflect.Zero(v.Elem().Type()))
		return nil
	}
	if err := cdc.UnmarshalBinaryBare(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrInvalidModel, "cannot unmarshal %T: %s", dest, err)
	}
	return nil
}
