package gemini

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig returned error: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Fatalf("expected default model, got %s", cfg.Model)
	}
}

func TestNewConfigAllowsMissingKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig should not fail without a key: %v", err)
	}
	if cfg.APIKey != "" {
		t.Fatalf("expected empty key, got %s", cfg.APIKey)
	}
}
