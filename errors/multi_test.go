package errors

import (
	"testing"
)

func TestAppend(t *testing.T) {
	if Append() != nil {
		t.Fatal("empty append must be nil")
	}
	if Append(nil, nil) != nil {
		t.Fatal("only nils must be nil")
	}

	single := ErrEmpty.New("one")
	if Append(nil, single) != single {
		t.Fatal("a single error must be returned as it is")
	}

	a := Append(ErrEmpty.New("a"), ErrNotFound.New("b"))
	b := Append(a, ErrDuplicate.New("c"))
	u, ok := b.(unpacker)
	if !ok {
		t.Fatalf("want multi error, got %T", b)
	}
	if n := len(u.Unpack()); n != 3 {
		t.Fatalf("want flattened 3 errors, got %d", n)
	}
	for _, kind := range []*Error{ErrEmpty, ErrNotFound, ErrDuplicate} {
		if !kind.Is(b) {
			t.Errorf("%s not found in %v", kind, b)
		}
	}
}
