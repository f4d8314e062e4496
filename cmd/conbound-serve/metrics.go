package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heyvito/conbound/metrics"
)

// Latencies arrive in microseconds.
var latencyBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000, 10000}

type promBuild struct {
	extractCalls      prometheus.Counter
	extractLatency    prometheus.Histogram
	segmentsExtracted prometheus.Counter
	duplicatesRemoved prometheus.Counter
	recordsEmitted    prometheus.Counter
	finishLatency     prometheus.Histogram
}

func (p *promBuild) ExtractCalls(v float64)      { p.extractCalls.Add(v) }
func (p *promBuild) ExtractLatency(v float64)    { p.extractLatency.Observe(v) }
func (p *promBuild) SegmentsExtracted(v float64) { p.segmentsExtracted.Add(v) }
func (p *promBuild) DuplicatesRemoved(v float64) { p.duplicatesRemoved.Add(v) }
func (p *promBuild) RecordsEmitted(v float64)    { p.recordsEmitted.Add(v) }
func (p *promBuild) FinishLatency(v float64)     { p.finishLatency.Observe(v) }

type promTable struct {
	openLatency     prometheus.Histogram
	openFailures    prometheus.Counter
	lookupCalls     prometheus.Counter
	lookupLatency   prometheus.Histogram
	lookupScanDepth prometheus.Histogram
	lookupDefaulted prometheus.Counter
}

func (p *promTable) OpenLatency(v float64)     { p.openLatency.Observe(v) }
func (p *promTable) OpenFailures(v float64)    { p.openFailures.Add(v) }
func (p *promTable) LookupCalls(v float64)     { p.lookupCalls.Add(v) }
func (p *promTable) LookupLatency(v float64)   { p.lookupLatency.Observe(v) }
func (p *promTable) LookupScanDepth(v float64) { p.lookupScanDepth.Observe(v) }
func (p *promTable) LookupDefaulted(v float64) { p.lookupDefaulted.Add(v) }

func newDelegates(reg prometheus.Registerer) *metrics.Delegates {
	f := promauto.With(reg)
	counter := func(name, help string) prometheus.Counter {
		return f.NewCounter(prometheus.CounterOpts{Namespace: "conbound", Name: name, Help: help})
	}
	histogram := func(name, help string, buckets []float64) prometheus.Histogram {
		return f.NewHistogram(prometheus.HistogramOpts{Namespace: "conbound", Name: name, Help: help, Buckets: buckets})
	}

	return &metrics.Delegates{
		Build: &promBuild{
			extractCalls:      counter("build_extract_calls_total", "Polygons passed to segment extraction."),
			extractLatency:    histogram("build_extract_latency_microseconds", "Time spent extracting segments from one polygon.", latencyBuckets),
			segmentsExtracted: counter("build_segments_extracted_total", "Segments produced by extraction."),
			duplicatesRemoved: counter("build_duplicates_removed_total", "Duplicate segments dropped while building."),
			recordsEmitted:    counter("build_records_emitted_total", "Packed records produced by builds."),
			finishLatency:     histogram("build_finish_latency_microseconds", "Time spent sorting and packing a table.", latencyBuckets),
		},
		Table: &promTable{
			openLatency:     histogram("table_open_latency_microseconds", "Time spent opening table files.", latencyBuckets),
			openFailures:    counter("table_open_failures_total", "Table files that failed to open."),
			lookupCalls:     counter("table_lookup_calls_total", "Constellation lookups performed."),
			lookupLatency:   histogram("table_lookup_latency_microseconds", "Time spent per lookup.", latencyBuckets),
			lookupScanDepth: histogram("table_lookup_scan_depth", "Records inspected after the binary search.", prometheus.ExponentialBuckets(1, 2, 10)),
			lookupDefaulted: counter("table_lookup_defaulted_total", "Lookups resolved to Ursa Minor by default."),
		},
	}
}
