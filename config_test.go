package linex

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxDFAStates <= 0 {
		t.Fatalf("MaxDFAStates = %d, want positive", cfg.MaxDFAStates)
	}
}

func TestCompileRegexWithConfigHonorsLowerCap(t *testing.T) {
	generous := Config{MaxDFAStates: 10000}
	if _, err := CompileRegexWithConfig("[a-z]+", generous); err != nil {
		t.Fatalf("CompileRegexWithConfig with generous cap: %v", err)
	}

	stingy := Config{MaxDFAStates: 1}
	if _, err := CompileRegexWithConfig("a*b*c*d*e*f*g*h*i*j*", stingy); err == nil {
		t.Fatal("expected ErrPatternTooComplex with a 1-state cap")
	}
}
