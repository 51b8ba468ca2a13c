package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args     []string
		dryRun   bool
		patterns []string
	}{
		{nil, false, []string{"./..."}},
		{[]string{"--dry-run"}, true, []string{"./..."}},
		{[]string{"./ui", "--dry-run", "."}, true, []string{"./ui", "."}},
	}
	for _, tt := range tests {
		dryRun, patterns := parseArgs(tt.args)
		if dryRun != tt.dryRun {
			t.Errorf("parseArgs(%v) dryRun = %v", tt.args, dryRun)
		}
		if diff := cmp.Diff(tt.patterns, patterns); diff != "" {
			t.Errorf("parseArgs(%v) patterns (-want +got):\n%s", tt.args, diff)
		}
	}
}
