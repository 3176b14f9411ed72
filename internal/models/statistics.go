package models

// Distribution describes one numeric column
type Distribution struct {
	Mean     float64
	Variance float64 // population variance
	StdDev   float64
	Min      float64
	Max      float64
}

// CycleUtilization is utilization weighted by the clock frequency of each sample
type CycleUtilization struct {
	TotalUtilized      float64 // sum of utilization% * 0.01 * MHz
	TotalAvailable     float64 // sum of MHz
	UtilizedPercentage float64
	UtilizedPerSample  float64
	AvailablePerSample float64
}

// Statistics holds every derived scalar for one parsed log
type Statistics struct {
	Samples     int
	Utilization Distribution
	Frequency   Distribution
	Cycles      CycleUtilization
	TotalPower  float64 // watts
}
