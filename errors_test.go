package linex

import (
	"errors"
	"testing"
)

func TestCompileErrorUnwrapsInvalidPattern(t *testing.T) {
	_, err := CompileRegex("(unterminated")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("errors.Is(err, ErrInvalidPattern) = false, err = %v", err)
	}
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("errors.As(err, *CompileError) = false, err = %v", err)
	}
	if ce.Source != "(unterminated" {
		t.Fatalf("Source = %q", ce.Source)
	}
}

func TestCompileErrorUnwrapsTooComplex(t *testing.T) {
	cfg := Config{MaxDFAStates: 1}
	_, err := CompileRegexWithConfig("a*b*c*d*e*f*g*h*", cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrPatternTooComplex) {
		t.Fatalf("errors.Is(err, ErrPatternTooComplex) = false, err = %v", err)
	}
}

func TestCompileErrorMessage(t *testing.T) {
	_, err := CompileRegex("[")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got == "" {
		t.Fatal("empty error message")
	}
}
