package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFileTrimsValue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  api-key-value\n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	secret, err := Load(Source{Name: "gemini api key", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "api-key-value" {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestLoadInlineValue(t *testing.T) {
	t.Parallel()

	secret, err := Load(Source{Name: "token", Value: " inline "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if secret != "inline" {
		t.Fatalf("unexpected secret: %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	if _, err := Load(Source{Name: "token"}); err == nil {
		t.Fatal("expected error when nothing is configured")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(Source{Name: "token", File: empty}); err == nil {
		t.Fatal("expected error for empty secret file")
	}
}
