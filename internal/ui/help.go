package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// MetricDescriptions explains log columns and derived figures. Keys are
// matched as prefixes so per-package columns ("..._0(MHz)") resolve too.
var MetricDescriptions = map[string]string{
	// Sampled columns
	"System Time":         "Wall clock time the sample was taken",
	"RDTSC":               "Raw time stamp counter at the sample",
	"Elapsed Time":        "Seconds since logging started",
	"CPU Utilization":     "Share of time the CPU was busy during the sample",
	"CPU Frequency":       "Clock speed in MHz - drops when the CPU scales down to save power",
	"Processor Power":     "Processor power draw in watts",
	"Package Power":       "Whole CPU package power draw in watts",
	"IA Power":            "Core (IA) power draw, part of the package power",
	"DRAM Power":          "Memory power draw in watts",
	"GT Power":            "Integrated graphics power draw in watts",
	"Package Temperature": "Package temperature in Celsius",
	"Package Hot":         "1 when the package hit its thermal limit",

	// Derived figures
	"Cycles Utilized": "Utilization weighted by clock frequency - busy cycles over available cycles",
	"Total Power":     "Sum of average package/processor and DRAM power from the summary",
	"Std Dev":         "Population standard deviation of the samples",

	// Summary keys
	"Total Elapsed Time":          "Length of the logging session in seconds",
	"Measured RDTSC Frequency":    "Time stamp counter rate used to convert RDTSC to time",
	"Cumulative Package Energy":   "Energy used by the package over the session",
	"Cumulative Processor Energy": "Energy used by the processor over the session",
	"Cumulative DRAM Energy":      "Energy used by memory over the session",
	"Average Package Power":       "Mean package power over the session",
	"Average Processor Power":     "Mean processor power over the session",
	"Average Package DRAM":        "Mean memory power over the session",
	"Average DRAM Power":          "Mean memory power over the session",
}

// GetDescription returns the description of the longest known prefix of
// metric, or "" when none matches
func GetDescription(metric string) string {
	best, desc := 0, ""
	for key, d := range MetricDescriptions {
		if strings.HasPrefix(metric, key) && len(key) > best {
			best, desc = len(key), d
		}
	}
	return desc
}

// DrawHelpFooter draws the description of metric just above the footer
func DrawHelpFooter(screen tcell.Screen, width, height int, metric string) {
	desc := GetDescription(metric)
	if desc == "" {
		return
	}

	ClearLine(screen, height-3, width)
	DrawTextClipped(screen, 2, height-3, width-4, "ℹ "+desc,
		tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true))
}
