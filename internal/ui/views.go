package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"power-gadget/internal/analysis"
	"power-gadget/internal/models"
)

const (
	// labelWidth is the column where bars and sparklines start
	labelWidth = 32

	summaryKeyWidth = 44
)

var (
	headingStyle = tcell.StyleDefault.Bold(true)
	hintStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true)
)

// ColumnView is a table column prepared for display
type ColumnView struct {
	Key     string
	Numeric bool
	Values  []float64
	Dist    models.Distribution
	First   string
	Last    string
}

// BuildColumnViews describes every table column once so redraws don't
// recompute statistics. Columns holding any text cell are shown as text.
func BuildColumnViews(table *models.Table) ([]ColumnView, error) {
	views := make([]ColumnView, 0, len(table.Keys()))
	for _, key := range table.Keys() {
		cv := ColumnView{Key: key}
		if items, _ := table.Column(key); len(items) > 0 {
			cv.First = items[0].String()
			cv.Last = items[len(items)-1].String()
		}

		values, err := table.NumericColumn(key)
		switch {
		case errors.Is(err, models.ErrNonNumeric):
		case err != nil:
			return nil, err
		case len(values) > 0:
			dist, err := analysis.Describe(values)
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", key, err)
			}
			cv.Numeric = true
			cv.Values = values
			cv.Dist = dist
		}
		views = append(views, cv)
	}
	return views, nil
}

// DrawStatisticsView draws the derived statistics
func DrawStatisticsView(screen tcell.Screen, stats *models.Statistics, width, height int, showHelp bool, startY int) {
	barWidth := width - labelWidth - 4
	y := startY

	DrawText(screen, 2, y, fmt.Sprintf("CPU UTILIZATION AND FREQUENCY (%d samples)", stats.Samples),
		headingStyle.Foreground(tcell.ColorTeal))
	y += 2

	util := stats.Utilization
	DrawText(screen, 2, y, fmt.Sprintf("Utilization: %7s %%", FormatValue(util.Mean, 2)), tcell.StyleDefault)
	DrawBar(screen, labelWidth, y, barWidth, util.Mean, 100, GetColorForValue(util.Mean, 50, 80))
	y++
	DrawText(screen, 4, y, fmt.Sprintf("std dev %s, range %s - %s",
		FormatValue(util.StdDev, 2), FormatValue(util.Min, 2), FormatValue(util.Max, 2)), hintStyle)
	y += 2

	freq := stats.Frequency
	DrawText(screen, 2, y, fmt.Sprintf("Frequency:   %7s MHz", FormatValue(freq.Mean, 1)), tcell.StyleDefault)
	DrawBar(screen, labelWidth, y, barWidth, freq.Mean, freq.Max, tcell.ColorBlue)
	y++
	DrawText(screen, 4, y, fmt.Sprintf("std dev %s, range %s - %s",
		FormatValue(freq.StdDev, 1), FormatValue(freq.Min, 1), FormatValue(freq.Max, 1)), hintStyle)
	y += 2

	DrawText(screen, 2, y, "NORMALIZED CPU UTILIZATION", headingStyle.Foreground(tcell.ColorGreen))
	y += 2

	cycles := stats.Cycles
	DrawText(screen, 2, y, fmt.Sprintf("Cycles Utilized: %7s %%", FormatValue(cycles.UtilizedPercentage, 2)), tcell.StyleDefault)
	DrawBar(screen, labelWidth, y, barWidth, cycles.UtilizedPercentage, 100,
		GetColorForValue(cycles.UtilizedPercentage, 50, 80))
	y++
	if showHelp {
		DrawTextClipped(screen, 4, y, width-6, GetDescription("Cycles Utilized"), hintStyle)
		y++
	}
	DrawText(screen, 2, y, fmt.Sprintf("Utilized per sample:  %s M", FormatValue(cycles.UtilizedPerSample, 2)), tcell.StyleDefault)
	y++
	DrawText(screen, 2, y, fmt.Sprintf("Available per sample: %s M", FormatValue(cycles.AvailablePerSample, 2)), tcell.StyleDefault)
	y += 2

	DrawText(screen, 2, y, "POWER USAGE", headingStyle.Foreground(tcell.ColorYellow))
	y += 2
	DrawText(screen, 2, y, fmt.Sprintf("Total Power: %s W", FormatValue(stats.TotalPower, 3)), tcell.StyleDefault)
	y++
	if showHelp && y < height-4 {
		DrawTextClipped(screen, 4, y, width-6, GetDescription("Total Power"), hintStyle)
		y++
	}

	// Frame from the row above the heading to the row below the last line,
	// only when it clears the help line
	if y <= height-4 {
		DrawBox(screen, 0, startY-1, width, y-startY+2, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

// DrawTableView draws one line per column starting at offset
func DrawTableView(screen tcell.Screen, columns []ColumnView, rows int, width, height int, startY, offset int) {
	y := startY
	DrawText(screen, 2, y, fmt.Sprintf("TABLE (%d columns, %d rows)", len(columns), rows),
		headingStyle.Foreground(tcell.ColorTeal))
	y += 2

	sparkWidth := width - labelWidth - 28
	for i := offset; i < len(columns) && y < height-3; i++ {
		cv := columns[i]
		DrawTextClipped(screen, 2, y, labelWidth-4, cv.Key, tcell.StyleDefault)

		if !cv.Numeric {
			DrawTextClipped(screen, labelWidth, y, width-labelWidth-2,
				fmt.Sprintf("%s .. %s", cv.First, cv.Last), hintStyle)
			y++
			continue
		}

		x := DrawText(screen, labelWidth, y, fmt.Sprintf("%10s ±%-8s ",
			FormatValue(cv.Dist.Mean, 2), FormatValue(cv.Dist.StdDev, 2)), tcell.StyleDefault)
		if sparkWidth > 0 {
			DrawSparkline(screen, x, y, sparkWidth, cv.Values, tcell.ColorGreen)
		}
		y++
	}
}

// DrawSummaryView draws summary keys and values starting at offset
func DrawSummaryView(screen tcell.Screen, summary *models.Summary, width, height int, startY, offset int) {
	y := startY
	DrawText(screen, 2, y, fmt.Sprintf("SUMMARY (%d keys)", summary.Len()), headingStyle.Foreground(tcell.ColorTeal))
	y += 2

	keys := summary.Keys()
	for i := offset; i < len(keys) && y < height-3; i++ {
		DrawTextClipped(screen, 2, y, summaryKeyWidth, keys[i], tcell.StyleDefault)
		DrawText(screen, summaryKeyWidth+4, y, FormatValue(summary.Get(keys[i]), 4), headingStyle)
		y++
	}
}
