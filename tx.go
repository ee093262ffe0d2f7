package swapchain

import (
	"reflect"

	"github.com/iov-one/swapchain/errors"
)

// Msg is a request for a single state transition, for example creating an
// offer. Authentication is carried by the Tx around it.
type Msg interface {
	// Path routes the message to its handler, as in "offer/create". It
	// only uses [0-9A-Za-z_\-/].
	Path() string

	// Validate checks the message without reading the state.
	Validate() error
}

// Tx is what a client submits: a message plus whatever the decorators
// need, such as signatures. The application defines the concrete type.
type Tx interface {
	GetMsg() (Msg, error)
}

// TxDecoder reads a Tx from its wire form.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message carried by tx, or "(missing)".
func GetPath(tx Tx) string {
	if msg, err := tx.GetMsg(); err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg validates the message of tx and copies it into destination,
// which must point to the concrete message type:
//
//   var msg offer.CreateMsg
//   if err := swapchain.LoadMsg(tx, &msg); err != nil {
//     return err
//   }
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	switch {
	case err != nil:
		return errors.Wrap(err, "cannot get transaction message")
	case msg == nil:
		return errors.Wrap(errors.ErrInvalidMsg, "no message")
	}

	dst := reflect.ValueOf(destination)
	if dst.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrHuman, "destination must be a pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Type() != dst.Type() {
		return errors.Wrapf(errors.ErrInvalidType, "%T", msg)
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	dst.Elem().Set(src.Elem())
	return nil
}
