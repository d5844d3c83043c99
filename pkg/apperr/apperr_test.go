package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", Validation("bad input"), KindValidation},
		{"not found", NotFound("missing"), KindNotFound},
		{"forbidden", Forbidden("nope"), KindForbidden},
		{"already exists", AlreadyExists("subdomain"), KindAlreadyExists},
		{"unauthenticated", Unauthenticated("who"), KindUnauthenticated},
		{"internal", Internal(errors.New("boom")), KindInternal},
		// error แปลกปลอมถือเป็น internal เสมอ
		{"unknown error", errors.New("raw"), KindInternal},
		{"wrapped", fmt.Errorf("ctx: %w", NotFound("missing")), KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlreadyExistsField(t *testing.T) {
	err := AlreadyExists("email")
	if err.Field != "email" {
		t.Errorf("Field = %q, want email", err.Field)
	}
	if err.Error() != "email already exists" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("pg down")
	err := Internal(cause)
	if !errors.Is(err, cause) {
		t.Error("Internal must wrap the cause")
	}
}
