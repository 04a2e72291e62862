package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildDate(t *testing.T, date string) {
	t.Helper()
	old := BuildDate
	t.Cleanup(func() { BuildDate = old })
	BuildDate = date
}

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2025-06-01", expected: 0},
		{name: "next day", date: "2025-06-02", expected: 1},
		{name: "one year later", date: "2026-06-01", expected: 365},
		{name: "invalid format", date: "yesterday", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-05-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuildDate(t, tt.date)

			got, err := BuildID()
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestString(t *testing.T) {
	setBuildDate(t, "")
	assert.Equal(t, "Build local (no build metadata)", String())

	setBuildDate(t, "2025-06-02")
	assert.Contains(t, String(), "Build 1 (2025-06-02)")
}
