package validation

import (
	"testing"

	"github.com/vnykmshr/gotick/pkg/common/errors"
)

func TestValidateNotNil(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     interface{}
		wantError bool
	}{
		{"non-nil value", "timer", "task", struct{}{}, false},
		{"non-nil string", "timer", "task", "something", false},
		{"nil value", "timer", "task", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotNil(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		field     string
		value     string
		wantError bool
	}{
		{"non-empty value", "timer", "expr", "@hourly", false},
		{"whitespace value", "timer", "expr", " ", false},
		{"empty value", "timer", "expr", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotEmpty(tt.module, tt.field, tt.value)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				if !errors.IsValidationError(err) {
					t.Errorf("expected ValidationError, got %T", err)
				}
			} else {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			}
		})
	}
}

func TestValidationErrorsAreMisuse(t *testing.T) {
	if err := ValidateNotNil("timer", "task", nil); !errors.IsMisuse(err) {
		t.Errorf("validation failure should classify as misuse, got %v", err)
	}
}
