// internal/testutil/helpers.go
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteTempFile writes content to a file inside a test-scoped temp
// directory and returns its path. The file is removed with the test.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp file %s: %v", name, err)
	}
	return path
}

// AssertContains fails the test when s does not contain substr.
func AssertContains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("%s: %q does not contain %q", msg, s, substr)
	}
}

// AssertNotContains fails the test when s contains substr.
func AssertNotContains(t *testing.T, s, substr, msg string) {
	t.Helper()
	if strings.Contains(s, substr) {
		t.Errorf("%s: %q should not contain %q", msg, s, substr)
	}
}
