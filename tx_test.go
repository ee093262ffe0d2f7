package swapchain

import (
	"testing"

	"github.com/iov-one/swapchain/errors"
)

type pingMsg struct {
	Text string
}

func (pingMsg) Path() string { return "test/ping" }

func (m *pingMsg) Validate() error {
	if m.Text == "" {
		return errors.ErrEmpty
	}
	return nil
}

type pongMsg struct{}

func (pongMsg) Path() string     { return "test/pong" }
func (*pongMsg) Validate() error { return nil }

type msgTx struct {
	msg Msg
	err error
}

func (tx msgTx) GetMsg() (Msg, error) { return tx.msg, tx.err }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		wantErr *errors.Error
		want    string
	}{
		"valid message": {
			tx:   msgTx{msg: &pingMsg{Text: "hi"}},
			want: "hi",
		},
		"invalid message": {
			tx:      msgTx{msg: &pingMsg{}},
			wantErr: errors.ErrEmpty,
		},
		"other message type": {
			tx:      msgTx{msg: &pongMsg{}},
			wantErr: errors.ErrInvalidType,
		},
		"no message": {
			tx:      msgTx{},
			wantErr: errors.ErrInvalidMsg,
		},
		"decoding failure": {
			tx:      msgTx{err: errors.ErrInvalidInput.New("broken")},
			wantErr: errors.ErrInvalidInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var msg pingMsg
			err := LoadMsg(tc.tx, &msg)
			if tc.wantErr != nil {
				if !tc.wantErr.Is(err) {
					t.Fatalf("want %s, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if msg.Text != tc.want {
				t.Fatalf("want %q, got %q", tc.want, msg.Text)
			}
			if GetPath(tc.tx) != "test/ping" {
				t.Fatalf("unexpected path %q", GetPath(tc.tx))
			}
		})
	}
}
