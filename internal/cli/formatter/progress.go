package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	return fmt.Sprintf("[%s] %3.0f%%", progressBar(pct, width, false), pct*100)
}

// RenderCompactBar renders the bar alone, without brackets or percentage.
// dim renders it in the muted color regardless of level.
func RenderCompactBar(pct float64, width int, dim bool) string {
	return progressBar(clampFraction(pct), width, dim)
}

// RenderLoadBar renders a usage bar where high is bad: red above 90%,
// yellow above 70%. Used for weekly hours against the limit.
func RenderLoadBar(pct float64, width int) string {
	pct = clampFraction(pct)
	style := StyleGreen
	switch {
	case pct > 0.9:
		style = StyleRed
	case pct > 0.7:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(blocks(pct, width)), pct*100)
}

func progressBar(pct float64, width int, dim bool) string {
	style := StyleGreen
	switch {
	case dim:
		style = StyleDim
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return style.Render(blocks(pct, width))
}

func blocks(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}
