package config

import (
	"os"
	"testing"
)

// unsetenv removes name from the environment for the rest of the test,
// restoring the previous value on cleanup.
func unsetenv(t *testing.T, name string) {
	t.Helper()

	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("unsetenv %s: %v", name, err)
	}
}
