// Package analysis derives aggregate utilization and power figures from a
// parsed power log.
package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"power-gadget/internal/models"
)

var (
	ErrEmptyColumn    = errors.New("numeric column is empty")
	ErrLengthMismatch = errors.New("paired columns differ in length")
)

// Describe computes mean, population variance, standard deviation and range
// of a non-empty column
func Describe(values []float64) (models.Distribution, error) {
	var d models.Distribution
	if len(values) == 0 {
		return d, ErrEmptyColumn
	}

	mean, err := stats.Mean(values)
	if err != nil {
		return d, err
	}

	// Divisor is N, not N-1
	variance, err := stats.PopulationVariance(values)
	if err != nil {
		return d, err
	}

	min, err := stats.Min(values)
	if err != nil {
		return d, err
	}

	max, err := stats.Max(values)
	if err != nil {
		return d, err
	}

	d.Mean = mean
	d.Variance = variance
	d.StdDev = math.Sqrt(variance)
	d.Min = min
	d.Max = max
	return d, nil
}

// SampleCycles returns utilization[i] * 0.01 * frequency[i] for every sample
func SampleCycles(utilization, frequency []float64) ([]float64, error) {
	if len(utilization) != len(frequency) {
		return nil, fmt.Errorf("%w: %d utilization samples, %d frequency samples",
			ErrLengthMismatch, len(utilization), len(frequency))
	}
	if len(utilization) == 0 {
		return nil, ErrEmptyColumn
	}

	cycles := make([]float64, len(utilization))
	copy(cycles, utilization)
	floats.Scale(0.01, cycles)
	floats.Mul(cycles, frequency)
	return cycles, nil
}

// Utilization weights each sample's utilization by its clock frequency, so
// samples taken at a lower clock count for fewer cycles
func Utilization(utilization, frequency []float64) (models.CycleUtilization, error) {
	var c models.CycleUtilization

	cycles, err := SampleCycles(utilization, frequency)
	if err != nil {
		return c, err
	}

	n := float64(len(cycles))
	c.TotalUtilized = floats.Sum(cycles)
	c.TotalAvailable = floats.Sum(frequency)
	c.UtilizedPercentage = c.TotalUtilized / c.TotalAvailable * 100
	c.UtilizedPerSample = c.TotalUtilized / n
	c.AvailablePerSample = c.TotalAvailable / n
	return c, nil
}

// TotalPower adds up every known average power key present in the summary.
// Each platform reports only its own subset; absent keys count as zero.
func TotalPower(summary *models.Summary) float64 {
	total := 0.0
	for _, key := range models.PowerKeys {
		if v, ok := summary.Lookup(key); ok {
			total += v
		}
	}
	return total
}

// Engine computes Statistics for parsed logs
type Engine struct {
	log *slog.Logger
}

// NewEngine creates an engine. A nil logger uses slog.Default().
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{log: log}
}

// Compute derives all statistics from the CPU utilization and frequency
// columns and the power summary keys
func (e *Engine) Compute(powerLog *models.PowerLog) (*models.Statistics, error) {
	utilization, err := powerLog.Table.NumericColumn(models.CPUUtilizationKey)
	if err != nil {
		return nil, fmt.Errorf("utilization: %w", err)
	}
	frequency, err := powerLog.Table.NumericColumn(models.CPUFrequencyKey)
	if err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}

	result := &models.Statistics{Samples: len(utilization)}

	if result.Utilization, err = Describe(utilization); err != nil {
		return nil, fmt.Errorf("utilization: %w", err)
	}
	if result.Frequency, err = Describe(frequency); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	if result.Cycles, err = Utilization(utilization, frequency); err != nil {
		return nil, fmt.Errorf("cycles: %w", err)
	}
	result.TotalPower = TotalPower(powerLog.Summary)

	e.log.Debug("computed statistics",
		"samples", result.Samples,
		"utilization_mean", result.Utilization.Mean,
		"cycles_utilized_pct", result.Cycles.UtilizedPercentage,
		"total_power_w", result.TotalPower)

	return result, nil
}

// Compute runs Engine.Compute with the default logger
func Compute(powerLog *models.PowerLog) (*models.Statistics, error) {
	return NewEngine(nil).Compute(powerLog)
}
