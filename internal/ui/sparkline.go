package ui

import (
	"math"
	"strings"
)

// Sparkline characters for different levels (8 levels)
var sparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkLevels maps each value to an index into sparklineChars, relative to
// the range of the slice. A flat series sits on the lowest level.
func sparkLevels(values []float64) []int {
	levels := make([]int, len(values))
	if len(values) == 0 {
		return levels
	}

	min, max := values[0], values[0]
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if max == min {
		return levels
	}

	top := float64(len(sparklineChars) - 1)
	for i, v := range values {
		level := int(math.Round((v - min) / (max - min) * top))
		if level < 0 {
			level = 0
		}
		if level > len(sparklineChars)-1 {
			level = len(sparklineChars) - 1
		}
		levels[i] = level
	}
	return levels
}

// RenderSparkline creates a sparkline string exactly width runes wide. When
// there are more values than width, the last width values are shown; fewer
// values are left-padded with '─'.
func RenderSparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var result strings.Builder
	result.WriteString(strings.Repeat("─", width-len(values)))
	for _, level := range sparkLevels(values) {
		result.WriteRune(sparklineChars[level])
	}
	return result.String()
}
