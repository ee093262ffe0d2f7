package weavetest

import "github.com/iov-one/swapchain"

// Tx carries a single message. Err, when set, is returned instead of the
// message.
type Tx struct {
	Msg swapchain.Msg
	Err error
}

func (tx *Tx) GetMsg() (swapchain.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message of any path that no handler of the application knows
// about. Err is returned by Validate.
type Msg struct {
	RoutePath string
	Err       error
}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}

var (
	_ swapchain.Tx  = (*Tx)(nil)
	_ swapchain.Msg = (*Msg)(nil)
)
