package models

// Column keys read by the statistics engine
const (
	CPUUtilizationKey = "CPU Utilization(%)"
	CPUFrequencyKey   = "CPU Frequency_0(MHz)"
)

// Average power summary keys. Windows logs report processor and DRAM power,
// macOS logs report package and package DRAM power.
const (
	ProcessorPowerKey   = "Average Processor Power_0 (Watt)"
	PackagePowerKey     = "Average Package Power_0 (Watt)"
	PackageDRAMPowerKey = "Average Package DRAM_0 (Watt)"
	DRAMPowerKey        = "Average DRAM Power_0 (Watt)"
)

// PowerKeys lists every summary key that contributes to total power
var PowerKeys = []string{
	ProcessorPowerKey,
	PackagePowerKey,
	PackageDRAMPowerKey,
	DRAMPowerKey,
}
