package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("bad value %d for %s", 7, "count")
	if err.Error() != "bad value 7 for count" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("errors.As failed to match ConfigError")
	}
}

func TestRangeError(t *testing.T) {
	err := NewRangeError("int8", 12)
	var rangeErr RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatal("errors.As failed to match RangeError")
	}
	if rangeErr.Domain != "int8" || rangeErr.Index != 12 {
		t.Errorf("unexpected fields: %+v", rangeErr)
	}
	if !strings.Contains(err.Error(), "int8") || !strings.Contains(err.Error(), "12") {
		t.Errorf("message omits context: %q", err.Error())
	}
}

func TestWrapError(t *testing.T) {
	base := errors.New("boom")
	wrapped := WrapError(base, "while doing %s", "things")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error lost its cause")
	}
	if WrapError(nil, "ignored") != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestIsContextError(t *testing.T) {
	if !IsContextError(context.Canceled) || !IsContextError(fmt.Errorf("wrap: %w", context.DeadlineExceeded)) {
		t.Error("context errors not recognized")
	}
	if IsContextError(errors.New("other")) {
		t.Error("non-context error misclassified")
	}
}

func TestHandleRunError(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"out of range", NewRangeError("int32", 50), ExitErrorOutOfRange, "Out of range"},
		{"config", NewConfigError("unknown domain"), ExitErrorConfig, "Configuration error"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "unexpected error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			code := HandleRunError(tc.err, &out, nil)
			if code != tc.wantCode {
				t.Errorf("exit code = %d, want %d", code, tc.wantCode)
			}
			if tc.wantText != "" && !strings.Contains(out.String(), tc.wantText) {
				t.Errorf("output %q missing %q", out.String(), tc.wantText)
			}
		})
	}
}
