package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Recorder struct {
	scans         *prometheus.CounterVec
	capacity      *prometheus.CounterVec
	casRetries    prometheus.Counter
	invoiceFolds  *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	storeErrors   *prometheus.CounterVec
	jobRuns       *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		scans: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpass_scans_total",
				Help: "Gate scans by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		capacity: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpass_capacity_adjustments_total",
				Help: "Capacity ledger adjustments by outcome",
			},
			[]string{"outcome"},
		),
		casRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "parkpass_capacity_cas_retries_total",
				Help: "Lost compare-and-swap races on lot availability",
			},
		),
		invoiceFolds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpass_invoice_folds_total",
				Help: "Invoice folds by outcome",
			},
			[]string{"outcome"},
		),
		storeDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "parkpass_store_op_duration_seconds",
				Help:    "Duration of store transactions",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"op"},
		),
		storeErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpass_store_op_errors_total",
				Help: "Failed store transactions",
			},
			[]string{"op"},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parkpass_job_runs_total",
				Help: "Background job runs by job and outcome",
			},
			[]string{"job", "outcome"},
		),
	}
}

func (r *Recorder) ScanProcessed(direction, outcome string) {
	r.scans.WithLabelValues(direction, outcome).Inc()
}

func (r *Recorder) CapacityAdjusted(outcome string) {
	r.capacity.WithLabelValues(outcome).Inc()
}

func (r *Recorder) CASRetried() {
	r.casRetries.Inc()
}

func (r *Recorder) InvoiceFolded(outcome string) {
	r.invoiceFolds.WithLabelValues(outcome).Inc()
}

func (r *Recorder) StoreOp(op string, d time.Duration, err error) {
	r.storeDuration.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		r.storeErrors.WithLabelValues(op).Inc()
	}
}

func (r *Recorder) JobRun(job string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.jobRuns.WithLabelValues(job, outcome).Inc()
}
