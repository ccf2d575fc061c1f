package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("form", "required")

	if got := err.Error(); got != "validation: form: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "readings", Message: "at least one required"},
		{Field: "senses", Message: "at least one required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestTagError(t *testing.T) {
	t.Parallel()

	err := &TagError{Parent: "sense", Tag: "foo"}

	if got := err.Error(); got != "unknown tag in <sense>: <foo>" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrUnknownTag) {
		t.Fatal("errors.Is(err, ErrUnknownTag) = false")
	}
}

func TestStructureError(t *testing.T) {
	t.Parallel()

	err := &StructureError{Tag: "keb", Reason: "missing text"}

	if got := err.Error(); got != "structural violation in <keb>: missing text" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrStructuralViolation) {
		t.Fatal("errors.Is(err, ErrStructuralViolation) = false")
	}
}

func TestEntryError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *EntryError
		want string
	}{
		{
			name: "index only",
			err:  &EntryError{Index: 1, Err: NewValidationError("readings", "at least one required")},
			want: "entry 1: validation: readings: at least one required",
		},
		{
			name: "index and ent_seq",
			err:  &EntryError{Index: 3, Seq: "1000020", Err: &TagError{Parent: "k_ele", Tag: "bogus"}},
			want: "entry 3 (ent_seq 1000020): unknown tag in <k_ele>: <bogus>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	var err error = fmt.Errorf("build: %w", &EntryError{Index: 2, Err: &TagError{Parent: "r_ele", Tag: "x"}})

	if !errors.Is(err, ErrUnknownTag) {
		t.Fatal("errors.Is(err, ErrUnknownTag) = false")
	}
	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatal("errors.As(err, *EntryError) = false")
	}
	if entryErr.Index != 2 {
		t.Fatalf("Index = %d, want 2", entryErr.Index)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrUnknownTag, ErrStructuralViolation, ErrValidation}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
