package internal

import (
	"math"
	"time"
)

// RunInfo holds the specification an audit run was configured with
// and its results, in the shape output templates consume.
type RunInfo struct {
	Spec   Spec
	Result Results
}

// Header represents an HTTP header used on live probes.
type Header struct {
	Key, Value string
}

// Spec describes the audit run.
type Spec struct {
	NumberOfWorkers uint64

	InputPath string
	BaseURL   string

	Normalize bool
	Live      bool

	Headers []Header

	CertPath string
	KeyPath  string

	Timeout time.Duration
	Rate    *uint64
}

// IsLiveRun tells whether valid URLs were probed over the network.
func (s Spec) IsLiveRun() bool {
	return s.Live
}

// ErrorWithCount contains an error description alongside the number
// of times it occurred.
type ErrorWithCount struct {
	Error string
	Count uint64
}

// Results holds the outcome of the run.
type Results struct {
	TimeTaken time.Duration

	Total   uint64
	Parsed  uint64
	Failed  uint64
	Flagged uint64

	Diagnostics []ErrorWithCount
	Errors      []ErrorWithCount

	// Live-probe outcome, by status class.
	BytesRead, BytesWritten        int64
	Req1XX, Req2XX, Req3XX, Req4XX uint64
	Req5XX, Others                 uint64

	Latencies ReadonlyUint64Histogram
	Rates     ReadonlyFloat64Histogram
}

// Throughput returns the total probe throughput (read + write) in
// bytes per second.
func (r Results) Throughput() float64 {
	return float64(r.BytesRead+r.BytesWritten) / r.TimeTaken.Seconds()
}

// ValidShare returns the fraction of inputs that parsed.
func (r Results) ValidShare() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Parsed) / float64(r.Total)
}

// LatenciesStats contains statistical information about per-URL
// processing latencies.
type LatenciesStats struct {
	// These are in microseconds
	Mean   float64
	Stddev float64
	Max    float64

	// This is map[0.0 <= p <= 1.0 (percentile)]microseconds
	Percentiles map[float64]uint64
}

// LatenciesStats performs various statistical calculations on
// latencies.
func (r Results) LatenciesStats(percentiles []float64) *LatenciesStats {
	aggregates, err := NewUint64HistogramAggregates(r.Latencies)
	if err != nil {
		return nil
	}

	percentilesMap := aggregates.percentilesMap(percentiles)

	mean := float64(aggregates.Sum) / float64(aggregates.Count)
	sumOfSquares := float64(0)
	r.Latencies.VisitAll(func(f uint64, c uint64) bool {
		sumOfSquares += math.Pow(float64(f)-mean, 2)
		return true
	})
	stddev := 0.0
	if aggregates.Count > 2 {
		stddev = math.Sqrt(sumOfSquares / float64(aggregates.Count))
	}
	return &LatenciesStats{
		Mean:   mean,
		Stddev: stddev,
		Max:    float64(aggregates.Max),

		Percentiles: percentilesMap,
	}
}

// RatesStats contains statistical information about processing rates.
type RatesStats struct {
	// These are in URLs per second.
	Mean   float64
	Stddev float64
	Max    float64

	// This is map[0.0 <= p <= 1.0 (percentile)](URLs per second)
	Percentiles map[float64]float64
}

// RatesStats performs various statistical calculations on the
// per-interval processing rates.
func (r Results) RatesStats(percentiles []float64) *RatesStats {
	h := r.Rates

	aggregates, err := NewFloat64HistogramAggregates(h)
	if err != nil {
		return nil
	}

	percentilesMap := aggregates.percentilesMap(percentiles)

	mean := aggregates.Sum / float64(aggregates.Count)
	sumOfSquares := float64(0)
	h.VisitAll(func(f float64, c uint64) bool {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return true
		}
		sumOfSquares += math.Pow(f-mean, 2)
		return true
	})
	stddev := 0.0
	if aggregates.Count > 2 {
		stddev = math.Sqrt(sumOfSquares / float64(aggregates.Count))
	}
	return &RatesStats{
		Mean:   mean,
		Stddev: stddev,
		Max:    aggregates.Max,

		Percentiles: percentilesMap,
	}
}
