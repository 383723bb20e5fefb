package utils

import (
	"strings"
	"testing"
)

type createPayload struct {
	Title  string   `validate:"required"`
	Rating *float64 `validate:"required,gte=0,lte=10"`
	Votes  *int     `validate:"omitempty,gte=0"`
}

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestValidateStruct_Required(t *testing.T) {
	t.Parallel()

	errs := ValidateStruct(createPayload{})
	if len(errs) == 0 {
		t.Fatal("expected validation errors for empty payload")
	}
	if !HasRequiredError(errs) {
		t.Errorf("expected a required-field error, got %v", errs)
	}
}

func TestValidateStruct_RatingBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rating float64
		valid  bool
	}{
		{"zero accepted", 0, true},
		{"ten accepted", 10, true},
		{"mid-range accepted", 7.5, true},
		{"just above ten rejected", 10.1, false},
		{"just below zero rejected", -0.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(createPayload{Title: "X", Rating: f64(tt.rating)})
			if tt.valid && len(errs) > 0 {
				t.Errorf("rating %v: unexpected errors %v", tt.rating, errs)
			}
			if !tt.valid && len(errs) == 0 {
				t.Errorf("rating %v: expected a validation error", tt.rating)
			}
		})
	}
}

func TestValidateStruct_NegativeVotes(t *testing.T) {
	t.Parallel()

	errs := ValidateStruct(createPayload{Title: "X", Rating: f64(5), Votes: intp(-1)})
	if len(errs) == 0 {
		t.Fatal("expected a validation error for negative votes")
	}
	if HasRequiredError(errs) {
		t.Errorf("range failure should not read as a required failure: %v", errs)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	t.Parallel()

	got := FormatValidationErrors(map[string]string{"Rating": "Must be at most 10"})
	if !strings.Contains(got, "Rating") || !strings.Contains(got, "Must be at most 10") {
		t.Errorf("unexpected formatted message: %q", got)
	}
}
