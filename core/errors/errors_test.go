package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestTypedErrorsUnwrapToSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", NewValidation("thickness", "must be positive"), ErrInvalidInput},
		{"parse", NewParse("STEP", "model.ifc", "bad token"), ErrInvalidInput},
		{"defect", NewDefect("export", "forward reference"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("%v does not unwrap to %v", tt.err, tt.want)
			}
		})
	}
}

func TestIOErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIO("write", "/tmp/out.ifc", cause)

	if !errors.Is(err, cause) {
		t.Errorf("%v does not unwrap to its cause", err)
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("errors.As failed for *IOError")
	}
	if ioErr.Path != "/tmp/out.ifc" {
		t.Errorf("Path = %q", ioErr.Path)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation with field", NewValidation("result", "is required"), "validation failed for result: is required"},
		{"validation without field", &ValidationError{Message: "empty"}, "validation failed: empty"},
		{"parse with path", NewParse("YAML", "ifcgen.yaml", "bad indent"), "failed to parse YAML at ifcgen.yaml: bad indent"},
		{"defect", NewDefect("export", "id gap"), "internal defect in export: id gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}

	cause := errors.New("boom")
	wrapped := Wrap(cause, "failed to finalize")
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error does not unwrap to cause")
	}
	if got := fmt.Sprint(wrapped); got != "failed to finalize: boom" {
		t.Errorf("wrapped message = %q", got)
	}
}
