package internal

import (
	"cmp"
	"slices"

	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/conbound/internal/metrics"
)

// BuildStats summarises a single table build.
type BuildStats struct {
	Polygons   int
	Segments   int
	Duplicates int
	Records    int
}

// Accumulator collects segments from every constellation polygon of a build
// and turns them into the packed, ordered table. An Accumulator is owned by a
// single build and is not safe for concurrent use.
type Accumulator struct {
	segments []Segment
	polygons int
	log      stdlog.Logger
}

func NewAccumulator(config Config) *Accumulator {
	return &Accumulator{
		segments: make([]Segment, 0, 512),
		log:      config.GetLogger().Named("builder"),
	}
}

// Add appends already extracted segments.
func (a *Accumulator) Add(segments ...Segment) {
	a.segments = append(a.segments, segments...)
}

// Extract runs segment extraction over one finished polygon and keeps the
// result.
func (a *Accumulator) Extract(points []Vertex, constellation int) int {
	metrics.Count(metrics.BuildExtractCalls)
	defer metrics.Measure(metrics.BuildExtractLatency)()

	segs := ExtractSegments(points, constellation)
	a.polygons++
	a.Add(segs...)
	a.log.Debug("Polygon processed",
		"constellation", ConstellationName(constellation),
		"vertices", len(points),
		"segments", len(segs),
	)
	return len(segs)
}

func (a *Accumulator) Len() int { return len(a.segments) }

// Finish sorts the collected segments north to south (decreasing SPD, then
// decreasing MinRA), drops exact duplicates and packs the survivors. The
// accumulator is emptied afterwards.
func (a *Accumulator) Finish() ([]Record, BuildStats, error) {
	defer metrics.Measure(metrics.BuildFinishLatency)()

	stats := BuildStats{Polygons: a.polygons, Segments: len(a.segments)}
	metrics.Simple(metrics.BuildSegmentsExtracted, float64(stats.Segments))

	segs := SortSegments(a.segments)
	segs = slices.Compact(segs)
	stats.Duplicates = stats.Segments - len(segs)
	metrics.Simple(metrics.BuildDuplicatesRemoved, float64(stats.Duplicates))

	records := make([]Record, 0, len(segs))
	for _, s := range segs {
		rec, err := PackRecord(s)
		if err != nil {
			a.log.Error(err, "Segment cannot be packed", "segment", s.String())
			return nil, stats, err
		}
		records = append(records, rec)
	}
	stats.Records = len(records)
	metrics.Simple(metrics.BuildRecordsEmitted, float64(stats.Records))

	a.log.Info("Table built",
		"polygons", stats.Polygons,
		"segments", stats.Segments,
		"duplicates", stats.Duplicates,
		"records", stats.Records,
	)
	a.segments = nil
	a.polygons = 0
	return records, stats, nil
}

// SortSegments orders segs in place by decreasing SPD, then decreasing
// MinRA, and returns it.
func SortSegments(segs []Segment) []Segment {
	slices.SortStableFunc(segs, compareSegments)
	return segs
}

func compareSegments(x, y Segment) int {
	if c := cmp.Compare(y.SPD, x.SPD); c != 0 {
		return c
	}
	if c := cmp.Compare(y.MinRA, x.MinRA); c != 0 {
		return c
	}
	// Remaining keys only make duplicates adjacent.
	if c := cmp.Compare(y.MaxRA, x.MaxRA); c != 0 {
		return c
	}
	return cmp.Compare(y.Constellation, x.Constellation)
}

// checkOrder returns the index of the first record of src that is not
// strictly after its predecessor in table order, or -1 when src is ordered
// and free of duplicates.
func checkOrder(src RecordSource) int {
	for i := 1; i < src.Len(); i++ {
		if compareSegments(src.At(i-1).Segment(), src.At(i).Segment()) >= 0 {
			return i
		}
	}
	return -1
}
