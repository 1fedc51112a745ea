package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "zero", size: 0, expected: "0 B"},
		{name: "under a kilobyte", size: 512, expected: "512 B"},
		{name: "fractional kilobyte", size: 1536, expected: "1.5 KB"},
		{name: "megabyte", size: 1024 * 1024, expected: "1.0 MB"},
		{name: "gigabyte", size: 5 * 1024 * 1024 * 1024, expected: "5.0 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{name: "seconds", seconds: 45, expected: "45s"},
		{name: "minutes", seconds: 150, expected: "2m30s"},
		{name: "default SAS lifetime", seconds: 3600, expected: "1h0m"},
		{name: "hours and minutes", seconds: 5400, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatExpiry(tt.seconds))
		})
	}
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 client", Plural(1, "client", "clients"))
	assert.Equal(t, "0 clients", Plural(0, "client", "clients"))
	assert.Equal(t, "3 clients", Plural(3, "client", "clients"))
}
