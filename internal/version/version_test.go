package version

import "testing"

func TestDefaults(t *testing.T) {
	// Without ldflags injection the placeholders must be non-empty so
	// the status endpoint always reports something.
	if Version == "" {
		t.Error("Version is empty")
	}
	if GitCommit == "" {
		t.Error("GitCommit is empty")
	}
	if BuildTime == "" {
		t.Error("BuildTime is empty")
	}
}
