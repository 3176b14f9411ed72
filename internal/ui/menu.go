package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// ViewType represents the current view
type ViewType int

const (
	ViewStatistics ViewType = iota
	ViewTable
	ViewSummary
	ViewCount
)

// ViewInfo contains information about each view
type ViewInfo struct {
	Name     string
	Shortcut string
}

// GetViewInfo returns information about all views, indexed by ViewType
func GetViewInfo() []ViewInfo {
	return []ViewInfo{
		{Name: "Statistics", Shortcut: "1"},
		{Name: "Table", Shortcut: "2"},
		{Name: "Summary", Shortcut: "3"},
	}
}

func (v ViewType) String() string {
	views := GetViewInfo()
	if v < 0 || int(v) >= len(views) {
		return "Unknown"
	}
	return views[v].Name
}

// DrawCompactMenuBar draws the title line and the view tabs and returns the
// next free row
func DrawCompactMenuBar(screen tcell.Screen, width int, title string, currentView ViewType) int {
	y := 0
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, titleStyle)
	}
	DrawTextClipped(screen, 2, y, width-4, title, titleStyle)
	y++

	x := 2
	for i, view := range GetViewInfo() {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		item := fmt.Sprintf(" %s %s ", view.Shortcut, view.Name)
		if ViewType(i) == currentView {
			style = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
			item = fmt.Sprintf("[%s %s]", view.Shortcut, view.Name)
		}
		x = DrawText(screen, x, y, item, style) + 1
	}

	return y + 2
}

// DrawFooter draws the current view name and key bindings on the last row
func DrawFooter(screen tcell.Screen, width, height int, currentView ViewType, showHelp bool) {
	y := height - 1
	status := fmt.Sprintf("[%s]", currentView)
	if showHelp {
		status += " help"
	}
	DrawText(screen, 2, y, status, tcell.StyleDefault.Foreground(tcell.ColorTeal))

	controls := " 1-3: View | Tab: Next | ↑↓: Scroll | H: Help | Q: Quit "
	if x := width - len([]rune(controls)) - 2; x > len(status)+3 {
		DrawText(screen, x, y, controls, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}
