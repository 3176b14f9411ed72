// Package report renders a parsed power log and its statistics as text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"power-gadget/internal/models"
)

// DefaultPreviewValues is how many samples of each column Verbose prints
const DefaultPreviewValues = 6

// Options controls the verbose report
type Options struct {
	// PreviewValues caps the samples printed per column; <= 0 uses the default
	PreviewValues int
}

// printer remembers the first write error so sections can be written
// without checking every line
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

// Verbose writes the full multi-section report: the parsed table and summary
// followed by the derived statistics
func Verbose(w io.Writer, powerLog *models.PowerLog, stats *models.Statistics, opts Options) error {
	preview := opts.PreviewValues
	if preview <= 0 {
		preview = DefaultPreviewValues
	}

	p := &printer{w: w}
	p.println("Parsed power log file: " + powerLog.Source)

	p.println("TABLE")
	for _, key := range powerLog.Table.Keys() {
		items, _ := powerLog.Table.Column(key)
		p.printf("  \"%s\": [%s]\n", key, previewItems(items, preview))
	}

	p.println("SUMMARY")
	for _, key := range powerLog.Summary.Keys() {
		p.printf("  %s: %s\n", key, formatValue(powerLog.Summary.Get(key)))
	}
	p.println("")

	p.println("CPU UTILIZATION AND FREQUENCY OF SAMPLES")
	p.printf("    Average CPU Utilization(%%): %s  (std dev: %s)\n",
		formatValue(stats.Utilization.Mean), formatValue(stats.Utilization.StdDev))
	p.printf("    Average CPU Frequency(MHz): %s  (std dev: %s)\n",
		formatValue(stats.Frequency.Mean), formatValue(stats.Frequency.StdDev))
	p.println("")

	p.println("NORMALIZED CPU UTILIZATION (AGGREGATED FROM SAMPLES)")
	p.printf("            Cycles Utilized(%%): %s\n", formatValue(stats.Cycles.UtilizedPercentage))
	p.printf("    Average Cycles Utilized(M): %s\n", formatValue(stats.Cycles.UtilizedPerSample))
	p.printf("   Average Cycles Available(M): %s\n", formatValue(stats.Cycles.AvailablePerSample))
	p.println("")

	p.println("POWER USAGE (PACKAGE + DRAM)")
	p.printf("  Average Total Power Usage(W): %s\n", formatValue(stats.TotalPower))

	return p.err
}

// Compact writes one "label<TAB>value" line per derived scalar in a fixed
// order, ready to paste into a spreadsheet column
func Compact(w io.Writer, stats *models.Statistics) error {
	p := &printer{w: w}
	for _, row := range CompactRows(stats) {
		p.printf("%s\t%s\n", row.Label, formatValue(row.Value))
	}
	return p.err
}

// Row is a labelled derived scalar
type Row struct {
	Label string
	Value float64
}

// CompactRows lists the derived scalars in report order
func CompactRows(stats *models.Statistics) []Row {
	return []Row{
		{"Average CPU Utilization(%)", stats.Utilization.Mean},
		{"CPU Utilization Std Dev", stats.Utilization.StdDev},
		{"Average CPU Frequency(MHz)", stats.Frequency.Mean},
		{"CPU Frequency Std Dev", stats.Frequency.StdDev},
		{"Cycles Utilized(%)", stats.Cycles.UtilizedPercentage},
		{"Average Cycles Utilized(M)", stats.Cycles.UtilizedPerSample},
		{"Average Cycles Available(M)", stats.Cycles.AvailablePerSample},
		{"Average Total Power Usage(W)", stats.TotalPower},
	}
}

func previewItems(items []models.Item, limit int) string {
	parts := make([]string, 0, limit+1)
	for i, item := range items {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... (%d more values)", len(items)-i))
			break
		}
		parts = append(parts, item.String())
	}
	return strings.Join(parts, ", ")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
