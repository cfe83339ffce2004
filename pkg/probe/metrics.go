package probe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/wastetrack/authprobe/pkg/common"
)

var outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: common.MetricsNamespace,
	Subsystem: common.MetricsSubsystemProbe,
	Name:      "outcomes_total",
	Help:      "Total number of classified login probe outcomes, by kind.",
},
	[]string{"kind"},
)

func recordOutcome(o Outcome) {
	switch o.(type) {
	case Success:
		outcomesTotal.WithLabelValues("success").Inc()
	case Rejected:
		outcomesTotal.WithLabelValues("rejected").Inc()
	case TransportFailed:
		outcomesTotal.WithLabelValues("transport_failed").Inc()
	}
}
