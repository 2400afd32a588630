// Package diag implements resynth.Diagnostics with logrus warnings and
// Prometheus counters, in the style runZeroInc-sockstats' exporter package
// wires a prometheus.Collector around a mutex-guarded struct.
package diag

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	resynth "github.com/rapid7/resynth-go"
)

// Diagnostics logs warnings through a logrus.FieldLogger and tracks
// emitted-packet counts through Prometheus counters.
type Diagnostics struct {
	log *logrus.Entry

	warnings prometheus.Counter
	packets  prometheus.Counter
	bytes    prometheus.Counter
}

// New builds a Diagnostics. log may be nil, in which case
// logrus.StandardLogger() is used. The three counters are registered
// against reg if non-nil; a nil registry leaves them unregistered but
// still usable.
func New(log *logrus.Logger, reg prometheus.Registerer) *Diagnostics {
	if log == nil {
		log = logrus.StandardLogger()
	}

	d := &Diagnostics{
		log: log.WithField("component", "resynth"),
		warnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resynth",
			Name:      "warnings_total",
			Help:      "Non-fatal diagnostics raised while interpreting a script.",
		}),
		packets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resynth",
			Name:      "packets_emitted_total",
			Help:      "Packets written to the sink.",
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resynth",
			Name:      "packet_bytes_emitted_total",
			Help:      "Sum of on-wire frame bytes written to the sink.",
		}),
	}

	if reg != nil {
		reg.MustRegister(d.warnings, d.packets, d.bytes)
	}
	return d
}

// Warn implements resynth.Diagnostics.
func (d *Diagnostics) Warn(loc resynth.Loc, msg string) {
	d.warnings.Inc()
	d.log.WithField("loc", loc.String()).Warn(msg)
}

// PacketEmitted implements resynth.Diagnostics.
func (d *Diagnostics) PacketEmitted(nbytes int) {
	d.packets.Inc()
	d.bytes.Add(float64(nbytes))
}
