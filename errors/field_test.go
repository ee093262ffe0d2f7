package errors

import (
	"testing"
)

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Maker", ErrEmpty, "required"),
		Field("Wanted", ErrInvalidAmount, "must be positive"),
		Field("Maker", ErrInvalidInput, "bad address"),
		nil,
	)

	if got := FieldErrors(err, "Maker"); len(got) != 2 {
		t.Fatalf("want 2 maker errors, got %d", len(got))
	}
	got := FieldErrors(err, "Wanted")
	if len(got) != 1 || !ErrInvalidAmount.Is(got[0]) {
		t.Fatalf("unexpected wanted errors: %v", got)
	}
	if got := FieldErrors(err, "ID"); len(got) != 0 {
		t.Fatalf("want no ID errors, got %v", got)
	}
}

func TestFieldNil(t *testing.T) {
	if Field("ID", nil, "ignored") != nil {
		t.Fatal("nil error must give nil")
	}
	if AppendField(nil, "ID", nil) != nil {
		t.Fatal("nil error must give nil")
	}
}

func TestFieldMessage(t *testing.T) {
	err := Field("ID", ErrEmpty, "offer %s", "id")
	if want := `field "ID": offer id: value is empty`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
	err = Field("ID", ErrEmpty, "")
	if want := `field "ID": value is empty`; err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}
