// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/claude-bridge/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrPluginNotFound,
			message: "plugin not found",
			wantStr: "[PLUGIN_NOT_FOUND] plugin not found",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	underlying := stderrors.New("permission denied")
	err := errors.Wrap(underlying, errors.ErrLinkCreate, "failed to create link")

	if err.Code != errors.ErrLinkCreate {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrLinkCreate)
	}

	if !stderrors.Is(err, underlying) {
		t.Error("Wrap() should preserve the underlying error for errors.Is")
	}

	want := "[LINK_CREATE] failed to create link: permission denied"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrLinkCreate, "should be nil"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
	if err := errors.Wrapf(nil, errors.ErrLinkRemove, "should be %s", "nil"); err != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", err)
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrPluginAmbiguous, "ambiguous plugin name %q", "x")

	if !errors.IsErrorCode(err, errors.ErrPluginAmbiguous) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrPluginNotFound) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrPluginAmbiguous) {
		t.Error("IsErrorCode() should not match a plain error")
	}
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrPluginAmbiguous, "ambiguous").
		WithDetail("candidates", []string{"alpha__x", "beta__x"})

	details := errors.GetErrorDetails(err)
	if details == nil {
		t.Fatal("GetErrorDetails() = nil, want details map")
	}

	candidates, ok := details["candidates"].([]string)
	if !ok || len(candidates) != 2 {
		t.Errorf("details[candidates] = %v, want two names", details["candidates"])
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := errors.GetErrorCode(stderrors.New("plain")); code != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", code, errors.ErrUnknown)
	}

	wrapped := errors.Wrap(errors.New(errors.ErrSourceRead, "inner"), errors.ErrInternal, "outer")
	if code := errors.GetErrorCode(wrapped); code != errors.ErrInternal {
		t.Errorf("GetErrorCode(wrapped) = %v, want outermost code %v", code, errors.ErrInternal)
	}
}
