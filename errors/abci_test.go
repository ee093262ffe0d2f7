package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrUnauthorized,
			wantCode: ErrUnauthorized.code,
			wantLog:  ErrUnauthorized.desc,
		},
		"wrapped registered error": {
			err:      Wrap(ErrNotFound, "offer"),
			wantCode: ErrNotFound.code,
			wantLog:  "offer: not found",
		},
		"nil is success": {
			err:      nil,
			wantCode: SuccessABCICode,
			wantLog:  "",
		},
		"stdlib error is internal": {
			err:      fmt.Errorf("disk on fire"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"panic is redacted": {
			err:      Wrap(ErrPanic, "secret"),
			wantCode: internalABCICode,
			wantLog:  internalABCILog,
		},
		"multi error uses the first code": {
			err:      Append(ErrEmpty.New("a"), ErrInvalidAmount.New("b")),
			wantCode: ErrEmpty.code,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if tc.wantLog != "" && log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestABCIInfoDebugKeepsInternalMessage(t *testing.T) {
	code, log := ABCIInfo(fmt.Errorf("disk on fire"), true)
	if code != internalABCICode {
		t.Fatalf("unexpected code: %d", code)
	}
	if !strings.Contains(log, "disk on fire") {
		t.Fatalf("debug log lost the message: %q", log)
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic.New("stack"), false); err.Error() != internalABCILog {
		t.Fatalf("panic not redacted: %q", err)
	}
	if err := Redact(ErrPanic.New("stack"), true); !ErrPanic.Is(err) {
		t.Fatalf("debug mode must not redact: %q", err)
	}
	if err := Redact(fmt.Errorf("raw"), false); err.Error() != internalABCILog {
		t.Fatalf("stdlib error not redacted: %q", err)
	}
	if err := Redact(ErrNotFound.New("x"), false); !ErrNotFound.Is(err) {
		t.Fatalf("registered error must pass: %q", err)
	}
}

func TestABCIError(t *testing.T) {
	if ABCIError(SuccessABCICode, "") != nil {
		t.Fatal("success must be nil")
	}
	if err := ABCIError(ErrDuplicate.code, "taken"); !ErrDuplicate.Is(err) {
		t.Fatalf("want duplicate, got %v", err)
	}
	if err := ABCIError(987654, "what"); abciCode(err) != internalABCICode {
		t.Fatalf("unknown code must be internal, got %v", err)
	}
}
