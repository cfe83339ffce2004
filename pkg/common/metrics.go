package common

const (
	// MetricsNamespace is the namespace for all metrics.
	MetricsNamespace = "authprobe"
	// MetricsSubsystemProbe is the subsystem for probe engine metrics.
	MetricsSubsystemProbe = "probe"
)
