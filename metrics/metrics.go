package metrics

import (
	"sync/atomic"

	"github.com/heyvito/conbound/internal/metrics"
)

var hasDelegate atomic.Bool

// InstallDelegate starts forwarding instrumentation readings to del. Only the
// first call has any effect; readings produced before it are discarded.
// Latencies are reported in microseconds.
func InstallDelegate(del *Delegates) {
	if hasDelegate.Swap(true) {
		return
	}
	go metrics.Dispatch(del)
}

type Delegates struct {
	Build BuildInstrumentationDelegate
	Table TableInstrumentationDelegate
}

func (d *Delegates) Dispatch(kind metrics.MetricKind, value float64) {
	switch kind {
	case metrics.BuildExtractCalls:
		d.Build.ExtractCalls(value)
	case metrics.BuildExtractLatency:
		d.Build.ExtractLatency(value)
	case metrics.BuildSegmentsExtracted:
		d.Build.SegmentsExtracted(value)
	case metrics.BuildDuplicatesRemoved:
		d.Build.DuplicatesRemoved(value)
	case metrics.BuildRecordsEmitted:
		d.Build.RecordsEmitted(value)
	case metrics.BuildFinishLatency:
		d.Build.FinishLatency(value)
	case metrics.TableOpenLatency:
		d.Table.OpenLatency(value)
	case metrics.TableOpenFailures:
		d.Table.OpenFailures(value)
	case metrics.TableLookupCalls:
		d.Table.LookupCalls(value)
	case metrics.TableLookupLatency:
		d.Table.LookupLatency(value)
	case metrics.TableLookupScanDepth:
		d.Table.LookupScanDepth(value)
	case metrics.TableLookupDefaulted:
		d.Table.LookupDefaulted(value)
	}
}

type BuildInstrumentationDelegate interface {
	ExtractCalls(float64)
	ExtractLatency(float64)

	SegmentsExtracted(float64)
	DuplicatesRemoved(float64)
	RecordsEmitted(float64)
	FinishLatency(float64)
}

type TableInstrumentationDelegate interface {
	OpenLatency(float64)
	OpenFailures(float64)

	LookupCalls(float64)
	LookupLatency(float64)

	// LookupScanDepth receives the amount of records inspected after the
	// binary search of each lookup.
	LookupScanDepth(float64)

	// LookupDefaulted is called for lookups that found no boundary to their
	// north and fell back to Ursa Minor.
	LookupDefaulted(float64)
}
