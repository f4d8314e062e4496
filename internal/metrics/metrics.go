package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

const backlog = 1024

var readings = make(chan *reading, backlog)
var readingPool = sync.Pool{
	New: func() any { return &reading{} },
}
var dispatching atomic.Bool
var dropped atomic.Uint64

type reading struct {
	kind  MetricKind
	value float64
}

// Simple records a single reading. Readings are discarded while no delegate
// is installed, and when the dispatcher falls more than backlog readings
// behind, so instrumented code never blocks on a slow delegate.
func Simple(kind MetricKind, value float64) {
	if !dispatching.Load() {
		return
	}
	r := readingPool.Get().(*reading)
	r.kind, r.value = kind, value
	select {
	case readings <- r:
	default:
		readingPool.Put(r)
		dropped.Add(1)
	}
}

// Count records one occurrence of kind.
func Count(kind MetricKind) { Simple(kind, 1) }

// Measure returns a func reporting the microseconds elapsed since Measure was
// called.
func Measure(kind MetricKind) func() {
	start := time.Now()
	return func() {
		Simple(kind, float64(time.Since(start).Microseconds()))
	}
}

// Dropped returns how many readings were discarded because the backlog was
// full.
func Dropped() uint64 { return dropped.Load() }

type delegate interface {
	Dispatch(kind MetricKind, value float64)
}

// Dispatch forwards readings to del until the process exits.
func Dispatch(del delegate) {
	dispatching.Store(true)
	for r := range readings {
		del.Dispatch(r.kind, r.value)
		readingPool.Put(r)
	}
}
