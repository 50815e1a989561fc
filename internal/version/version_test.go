package version_test

import (
	"regexp"
	"strings"
	"testing"

	"saffron/internal/version"
)

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestPlainMatchesVersion(t *testing.T) {
	stripped := ansiSequence.ReplaceAllString(version.Version, "")
	if stripped != version.Plain {
		t.Errorf("Version without styling = %q, want %q", stripped, version.Plain)
	}
}

func TestPlainIsSemver(t *testing.T) {
	parts := strings.Split(version.Plain, ".")
	if len(parts) != 3 {
		t.Fatalf("Plain = %q, want major.minor.patch", version.Plain)
	}
	for _, part := range parts {
		if part == "" {
			t.Errorf("Plain has an empty component: %q", version.Plain)
		}
	}
}
