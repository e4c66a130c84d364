package errors

import (
	"fmt"
	"testing"
)

func TestRegisterDuplicateCode(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	Register(2, "clash with unauthorized")
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind   *Error
		err    error
		wantIs bool
	}{
		"instance of the same root": {
			kind:   ErrNotFound,
			err:    ErrNotFound,
			wantIs: true,
		},
		"wrapped once": {
			kind:   ErrNotFound,
			err:    Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"wrapped twice": {
			kind:   ErrNotFound,
			err:    Wrap(Wrap(ErrNotFound, "gone"), "again"),
			wantIs: true,
		},
		"created with New": {
			kind:   ErrDuplicate,
			err:    ErrDuplicate.New("already exists"),
			wantIs: true,
		},
		"created with Newf": {
			kind:   ErrDuplicate,
			err:    ErrDuplicate.Newf("seed %d", 42),
			wantIs: true,
		},
		"different root": {
			kind:   ErrNotFound,
			err:    ErrDuplicate,
			wantIs: false,
		},
		"stdlib error": {
			kind:   ErrNotFound,
			err:    fmt.Errorf("not found"),
			wantIs: false,
		},
		"nil kind matches nil error": {
			kind:   nil,
			err:    nil,
			wantIs: true,
		},
		"nil error does not match a kind": {
			kind:   ErrNotFound,
			err:    nil,
			wantIs: false,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantIs {
				t.Fatalf("want %v, got %v", tc.wantIs, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "description") != nil {
		t.Fatal("wrapping nil must return nil")
	}
	if Wrapf(nil, "description %d", 1) != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestWrapPreservesABCICode(t *testing.T) {
	err := Wrap(ErrUnauthorized, "no signature")
	coder, ok := err.(interface{ ABCICode() uint32 })
	if !ok {
		t.Fatal("wrapped error does not expose the code")
	}
	if got := coder.ABCICode(); got != 2 {
		t.Fatalf("want code 2, got %d", got)
	}
}

func TestWrapMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "escrow")
	const want = "escrow: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Field("Name", ErrEmpty, "required")
	if !ErrEmpty.Is(err) {
		t.Fatalf("field error lost its root: %+v", err)
	}
	if errs := FieldErrors(err, "Name"); len(errs) != 1 {
		t.Fatalf("want one error for Name, got %d", len(errs))
	}
	if errs := FieldErrors(err, "Other"); len(errs) != 0 {
		t.Fatalf("want no errors for Other, got %d", len(errs))
	}
	if Field("Name", nil, "required") != nil {
		t.Fatal("a nil error must stay nil")
	}
}

func TestRecover(t *testing.T) {
	fail := func() (err error) {
		defer Recover(&err)
		panic("blew up")
	}
	err := fail()
	if !ErrPanic.Is(err) {
		t.Fatalf("want a panic error, got %+v", err)
	}
}
