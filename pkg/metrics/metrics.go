package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes de un ajuste de stock.
const (
	OutcomeOK            = "ok"
	OutcomeRejected      = "rejected"
	OutcomeMovementError = "movement_error"
	OutcomeDrift         = "drift"
)

// Metrics agrupa los colectores de la aplicación. Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	adjustments *prometheus.CounterVec
	drift       prometheus.Counter
	storeCalls  *prometheus.HistogramVec
}

// New registra los colectores en el registerer dado. Con reg nil devuelve un Metrics inerte.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	adjustments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_adjustments_total",
		Help: "Stock adjustments by movement type and outcome.",
	}, []string{"type", "outcome"})
	drift := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stock_drift_total",
		Help: "Movements persisted whose product stock write failed afterwards.",
	})
	storeCalls := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recordstore_request_duration_seconds",
		Help:    "Duration of record store calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"table", "op"})
	reg.MustRegister(adjustments, drift, storeCalls)
	return &Metrics{
		adjustments: adjustments,
		drift:       drift,
		storeCalls:  storeCalls,
	}
}

// IncAdjustment cuenta un ajuste con su tipo de movimiento y resultado.
func (m *Metrics) IncAdjustment(movementType, outcome string) {
	if m == nil || m.adjustments == nil {
		return
	}
	m.adjustments.WithLabelValues(normalizeLabel(movementType), outcome).Inc()
}

// IncDrift cuenta una divergencia entre auditoría y stock.
func (m *Metrics) IncDrift() {
	if m == nil || m.drift == nil {
		return
	}
	m.drift.Inc()
}

// ObserveStoreCall registra la duración de una llamada al almacén de registros.
func (m *Metrics) ObserveStoreCall(table, op string, d time.Duration) {
	if m == nil || m.storeCalls == nil {
		return
	}
	m.storeCalls.WithLabelValues(normalizeLabel(table), normalizeLabel(op)).Observe(d.Seconds())
}

func normalizeLabel(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
