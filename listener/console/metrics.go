package console

import root "github.com/trickstertwo/xlogq"

// MetricsCollector receives write metrics. Implementations must be concurrency-safe.
type MetricsCollector interface {
	LoggedMessage(level root.Level, durMS float64, size int, err error)
}

type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) LoggedMessage(root.Level, float64, int, error) {}
