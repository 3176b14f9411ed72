package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
)

// DrawBar draws a horizontal bar filled to value/max
func DrawBar(screen tcell.Screen, x, y, width int, value, max float64, color tcell.Color) {
	if max <= 0 || width <= 0 {
		return
	}

	ratio := value / max
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}

	filled := int(float64(width) * ratio)
	for i := 0; i < width; i++ {
		if i < filled {
			screen.SetContent(x+i, y, '█', nil, tcell.StyleDefault.Foreground(color))
		} else {
			screen.SetContent(x+i, y, '░', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
		}
	}
}

// DrawSparkline draws RenderSparkline(data, width) at x, y
func DrawSparkline(screen tcell.Screen, x, y, width int, data []float64, color tcell.Color) {
	if len(data) == 0 || width <= 0 {
		return
	}
	DrawText(screen, x, y, RenderSparkline(data, width), tcell.StyleDefault.Foreground(color))
}

// GetColorForValue returns green below low, yellow below high, red otherwise
func GetColorForValue(value, low, high float64) tcell.Color {
	switch {
	case value < low:
		return tcell.ColorGreen
	case value < high:
		return tcell.ColorYellow
	default:
		return tcell.ColorRed
	}
}

// DrawText draws text starting at x, one cell per rune. It returns the
// column after the last rune.
func DrawText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// DrawTextClipped draws text, cutting it with "..." when it would run past
// maxWidth cells
func DrawTextClipped(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	DrawText(screen, x, y, Truncate(text, maxWidth), style)
}

// Truncate shortens s to at most width runes, marking the cut with "..."
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// ClearLine blanks a row
func ClearLine(screen tcell.Screen, y, width int) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// DrawBox draws a single-line border
func DrawBox(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}
	right, bottom := x+width-1, y+height-1

	for i := x + 1; i < right; i++ {
		screen.SetContent(i, y, '─', nil, style)
		screen.SetContent(i, bottom, '─', nil, style)
	}
	for j := y + 1; j < bottom; j++ {
		screen.SetContent(x, j, '│', nil, style)
		screen.SetContent(right, j, '│', nil, style)
	}

	screen.SetContent(x, y, '┌', nil, style)
	screen.SetContent(right, y, '┐', nil, style)
	screen.SetContent(x, bottom, '└', nil, style)
	screen.SetContent(right, bottom, '┘', nil, style)
}

// FormatValue prints a float with at most the given decimals, dropping
// trailing zeros
func FormatValue(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if decimals <= 0 {
		return s
	}
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
