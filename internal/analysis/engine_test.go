package analysis

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-gadget/internal/models"
	"power-gadget/internal/parser"
)

const delta = 1e-9

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name     string
		values   []float64
		expected models.Distribution
	}{
		{
			name:   "single value",
			values: []float64{42},
			expected: models.Distribution{
				Mean: 42, Variance: 0, StdDev: 0, Min: 42, Max: 42,
			},
		},
		{
			name:   "constant sequence",
			values: []float64{3, 3, 3, 3},
			expected: models.Distribution{
				Mean: 3, Variance: 0, StdDev: 0, Min: 3, Max: 3,
			},
		},
		{
			name:   "population divisor",
			values: []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expected: models.Distribution{
				Mean: 5, Variance: 4, StdDev: 2, Min: 2, Max: 9,
			},
		},
		{
			name:   "utilization samples",
			values: []float64{50, 100, 25, 75},
			expected: models.Distribution{
				Mean: 62.5, Variance: 781.25, StdDev: 27.95084971874737, Min: 25, Max: 100,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Describe(tc.values)
			require.NoError(t, err)
			assert.InDelta(t, tc.expected.Mean, d.Mean, delta)
			assert.InDelta(t, tc.expected.Variance, d.Variance, delta)
			assert.InDelta(t, tc.expected.StdDev, d.StdDev, delta)
			assert.Equal(t, tc.expected.Min, d.Min)
			assert.Equal(t, tc.expected.Max, d.Max)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := Describe(nil)
		assert.ErrorIs(t, err, ErrEmptyColumn)
	})

	t.Run("std dev is root of variance", func(t *testing.T) {
		d, err := Describe([]float64{1000, 2000, 1200, 1800})
		require.NoError(t, err)
		assert.InDelta(t, 170000, d.Variance, delta)
		assert.InDelta(t, math.Sqrt(d.Variance), d.StdDev, delta)
		assert.GreaterOrEqual(t, d.Variance, 0.0)
	})
}

func TestSampleCycles(t *testing.T) {
	util := []float64{50, 100}
	freq := []float64{1000, 2000}

	cycles, err := SampleCycles(util, freq)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{500, 2000}, cycles, delta)

	// inputs are left untouched
	assert.Equal(t, []float64{50, 100}, util)
	assert.Equal(t, []float64{1000, 2000}, freq)

	_, err = SampleCycles([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = SampleCycles(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyColumn)
}

func TestUtilization(t *testing.T) {
	t.Run("frequency weighted", func(t *testing.T) {
		c, err := Utilization([]float64{50, 100}, []float64{1000, 2000})
		require.NoError(t, err)
		assert.InDelta(t, 2500, c.TotalUtilized, delta)
		assert.InDelta(t, 3000, c.TotalAvailable, delta)
		assert.InDelta(t, 2500.0/3000.0*100, c.UtilizedPercentage, delta)
		assert.InDelta(t, 1250, c.UtilizedPerSample, delta)
		assert.InDelta(t, 1500, c.AvailablePerSample, delta)
	})

	t.Run("uniform frequency matches plain mean", func(t *testing.T) {
		util := []float64{10, 20, 30, 40}
		c, err := Utilization(util, []float64{1500, 1500, 1500, 1500})
		require.NoError(t, err)
		assert.InDelta(t, 25, c.UtilizedPercentage, delta)
	})

	t.Run("fully utilized", func(t *testing.T) {
		c, err := Utilization([]float64{100, 100, 100}, []float64{800, 1600, 3200})
		require.NoError(t, err)
		assert.InDelta(t, 100, c.UtilizedPercentage, delta)
		assert.InDelta(t, c.TotalAvailable, c.TotalUtilized, delta)
	})

	t.Run("idle", func(t *testing.T) {
		c, err := Utilization([]float64{0, 0}, []float64{800, 1600})
		require.NoError(t, err)
		assert.Zero(t, c.TotalUtilized)
		assert.Zero(t, c.UtilizedPercentage)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Utilization([]float64{1, 2, 3}, []float64{1, 2})
		assert.ErrorIs(t, err, ErrLengthMismatch)
	})
}

func TestTotalPower(t *testing.T) {
	testCases := []struct {
		name     string
		entries  map[string]float64
		expected float64
	}{
		{
			name: "package and package DRAM",
			entries: map[string]float64{
				models.PackagePowerKey:     10,
				models.PackageDRAMPowerKey: 2,
			},
			expected: 12,
		},
		{
			name: "processor and DRAM",
			entries: map[string]float64{
				models.ProcessorPowerKey: 7,
				models.DRAMPowerKey:      1,
			},
			expected: 8,
		},
		{
			name: "unrelated keys are ignored",
			entries: map[string]float64{
				"Total Elapsed Time (sec)": 120,
				models.ProcessorPowerKey:   3.5,
			},
			expected: 3.5,
		},
		{
			name:     "no power keys",
			entries:  map[string]float64{},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			summary := models.NewSummary()
			for k, v := range tc.entries {
				summary.Set(k, v)
			}
			assert.InDelta(t, tc.expected, TotalPower(summary), delta)
		})
	}
}

func TestCompute(t *testing.T) {
	t.Run("macOS unquoted", func(t *testing.T) {
		powerLog, err := parser.ParseFile(filepath.Join("..", "parser", "testdata", "macos_unquoted.csv"))
		require.NoError(t, err)

		stats, err := Compute(powerLog)
		require.NoError(t, err)

		assert.Equal(t, 4, stats.Samples)
		assert.InDelta(t, 62.5, stats.Utilization.Mean, delta)
		assert.InDelta(t, 781.25, stats.Utilization.Variance, delta)
		assert.InDelta(t, 27.95084971874737, stats.Utilization.StdDev, delta)
		assert.InDelta(t, 1500, stats.Frequency.Mean, delta)
		assert.InDelta(t, 170000, stats.Frequency.Variance, delta)
		assert.InDelta(t, 412.31056256176606, stats.Frequency.StdDev, delta)

		assert.InDelta(t, 4150, stats.Cycles.TotalUtilized, delta)
		assert.InDelta(t, 6000, stats.Cycles.TotalAvailable, delta)
		assert.InDelta(t, 4150.0/6000.0*100, stats.Cycles.UtilizedPercentage, delta)
		assert.InDelta(t, 1037.5, stats.Cycles.UtilizedPerSample, delta)
		assert.InDelta(t, 1500, stats.Cycles.AvailablePerSample, delta)

		assert.InDelta(t, 5.45, stats.TotalPower, delta)
	})

	t.Run("Windows quoted", func(t *testing.T) {
		powerLog, err := parser.ParseFile(filepath.Join("..", "parser", "testdata", "windows_quoted.csv"))
		require.NoError(t, err)

		stats, err := NewEngine(nil).Compute(powerLog)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Samples)
		assert.InDelta(t, 2500, stats.Cycles.TotalUtilized, delta)
		assert.InDelta(t, 3000, stats.Cycles.TotalAvailable, delta)
		assert.InDelta(t, 8.0, stats.TotalPower, delta)
	})

	t.Run("missing frequency column", func(t *testing.T) {
		powerLog := models.NewPowerLog("inline")
		require.NoError(t, powerLog.Table.AddColumn(models.CPUUtilizationKey))
		require.NoError(t, powerLog.Table.AppendRow([]models.Item{models.NewNumberItem(10, "10")}))

		_, err := Compute(powerLog)
		assert.ErrorIs(t, err, models.ErrMissingColumn)
	})

	t.Run("text in utilization column", func(t *testing.T) {
		powerLog := models.NewPowerLog("inline")
		require.NoError(t, powerLog.Table.AddColumn(models.CPUUtilizationKey))
		require.NoError(t, powerLog.Table.AddColumn(models.CPUFrequencyKey))
		require.NoError(t, powerLog.Table.AppendRow([]models.Item{
			models.NewTextItem("n/a"),
			models.NewNumberItem(1000, "1000"),
		}))

		_, err := Compute(powerLog)
		assert.ErrorIs(t, err, models.ErrNonNumeric)
	})

	t.Run("header without rows", func(t *testing.T) {
		powerLog := models.NewPowerLog("inline")
		require.NoError(t, powerLog.Table.AddColumn(models.CPUUtilizationKey))
		require.NoError(t, powerLog.Table.AddColumn(models.CPUFrequencyKey))

		_, err := Compute(powerLog)
		assert.ErrorIs(t, err, ErrEmptyColumn)
	})
}
