package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"empty", 0, "[░░░░░░░░░░]   0%"},
		{"half", 0.5, "[█████░░░░░]  50%"},
		{"full", 1, "[██████████] 100%"},
		{"clamps high", 1.7, "[██████████] 100%"},
		{"clamps low", -0.2, "[░░░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 10)))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	for _, pct := range []float64{0, 0.5, 1, 1.5, -0.5} {
		got := stripANSI(RenderCompactBar(pct, 10, false))
		assert.NotContains(t, got, "[")
		assert.NotContains(t, got, "%")
		assert.Equal(t, 10, len([]rune(got)))
	}
	assert.Equal(t, 2, len([]rune(stripANSI(RenderCompactBar(0.5, 1, true)))))
}

func TestRenderLoadBar(t *testing.T) {
	got := stripANSI(RenderLoadBar(0.75, 4))
	assert.Equal(t, "[███░]  75%", got)
	assert.True(t, strings.HasSuffix(stripANSI(RenderLoadBar(2, 4)), "100%"))
}
