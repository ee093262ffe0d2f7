package assert

import (
	"fmt"
	"testing"

	"github.com/iov-one/swapchain/errors"
)

// tester records failures instead of stopping the test.
type tester struct {
	testing.TB
	failed bool
}

func (t *tester) Helper()                                 {}
func (t *tester) Fatal(args ...interface{})               { t.failed = true }
func (t *tester) Fatalf(f string, args ...interface{})    { t.failed = true }
func (t *tester) Logf(format string, args ...interface{}) {}

func TestIsErr(t *testing.T) {
	cases := map[string]struct {
		want     error
		got      error
		wantFail bool
	}{
		"same error": {
			want: errors.ErrEmpty,
			got:  errors.ErrEmpty,
		},
		"wrapped error": {
			want: errors.ErrEmpty,
			got:  errors.Wrap(errors.ErrEmpty, "wrapped"),
		},
		"different errors": {
			want:     errors.ErrEmpty,
			got:      errors.ErrNotFound,
			wantFail: true,
		},
		"nil against error": {
			want:     nil,
			got:      errors.ErrNotFound,
			wantFail: true,
		},
		"not comparable": {
			want:     fmt.Errorf("a"),
			got:      fmt.Errorf("a"),
			wantFail: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			tt := &tester{TB: t}
			IsErr(tt, tc.want, tc.got)
			if tt.failed != tc.wantFail {
				t.Fatalf("want fail %v, got %v", tc.wantFail, tt.failed)
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	err := errors.Append(
		errors.Field("ID", errors.ErrEmpty, "required"),
		errors.Field("Maker", errors.ErrInvalidInput, "bad"),
	)

	tt := &tester{TB: t}
	FieldError(tt, err, "ID", errors.ErrEmpty)
	if tt.failed {
		t.Fatal("ID error must be found")
	}

	tt = &tester{TB: t}
	FieldError(tt, err, "Taker", nil)
	if tt.failed {
		t.Fatal("no Taker error expected")
	}

	tt = &tester{TB: t}
	FieldError(tt, err, "Maker", errors.ErrEmpty)
	if !tt.failed {
		t.Fatal("Maker error is of a different kind")
	}
}

func TestNil(t *testing.T) {
	var nilErr *errors.Error
	tt := &tester{TB: t}
	Nil(tt, nilErr)
	Nil(tt, nil)
	if tt.failed {
		t.Fatal("nil values must pass")
	}
	Nil(tt, errors.ErrEmpty)
	if !tt.failed {
		t.Fatal("error must fail")
	}
}
