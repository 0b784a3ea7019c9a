package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		size     int64
		expected string
	}{
		{size: 0, expected: "0B"},
		{size: 900, expected: "900B"},
		{size: 1536, expected: "1.5KB"},
		{size: 5 << 20, expected: "5MB"},
		{size: 5<<20 + 300<<10, expected: "5.3MB"},
		{size: 3 << 30, expected: "3GB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{name: "milliseconds", elapsed: 850 * time.Millisecond, expected: "850ms"},
		{name: "seconds keep one decimal", elapsed: 1240 * time.Millisecond, expected: "1.2s"},
		{name: "whole seconds", elapsed: 12 * time.Second, expected: "12s"},
		{name: "minutes round to the second", elapsed: 3*time.Minute + 5600*time.Millisecond, expected: "3m6s"},
		{name: "hours round to the minute", elapsed: 2*time.Hour + 15*time.Minute + 40*time.Second, expected: "2h16m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.elapsed))
		})
	}
}
