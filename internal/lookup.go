package internal

import (
	"math"
	"sort"

	"github.com/heyvito/conbound/internal/metrics"
)

// RecordSource is a read-only sequence of packed records, ordered as produced
// by Accumulator.Finish.
type RecordSource interface {
	Len() int
	At(i int) Record
}

// Records adapts an in-memory slice to RecordSource.
type Records []Record

func (r Records) Len() int        { return len(r) }
func (r Records) At(i int) Record { return r[i] }

// Lookup returns the constellation containing the point at ra seconds of
// right ascension and spd arcminutes of south polar distance.
//
// Boundaries strictly north of the point are located by binary search, then
// scanned from the nearest one northwards; the first whose span covers ra
// names the constellation south of it. Points with no covering boundary to
// their north lie in Ursa Minor.
func Lookup(src RecordSource, ra, spd int32) int {
	metrics.Count(metrics.TableLookupCalls)
	defer metrics.Measure(metrics.TableLookupLatency)()

	ra = normalizeRA(ra)
	n := src.Len()
	north := sort.Search(n, func(i int) bool { return src.At(i).SPD() <= spd })

	depth := 0
	for i := north - 1; i >= 0; i-- {
		depth++
		rec := src.At(i)
		if rec.Covers(ra) {
			metrics.Simple(metrics.TableLookupScanDepth, float64(depth))
			return int(rec.Constellation)
		}
	}
	metrics.Simple(metrics.TableLookupScanDepth, float64(depth))
	metrics.Count(metrics.TableLookupDefaulted)
	return UrsaMinor
}

// LookupDegrees is Lookup for coordinates in catalogue units: right ascension
// in hours and declination in degrees. Coordinates are truncated onto the
// grid, so a point anywhere inside a grid cell resolves like the cell's
// south-west corner.
func LookupDegrees(src RecordSource, raHours, decDegrees float64) int {
	ra := int32(math.Floor(math.Mod(raHours*3600, FullCircle)))
	spd := math.Floor(decDegrees*60) + SPDOffset
	spd = math.Max(0, math.Min(spd, MaxSPD))
	return Lookup(src, ra, int32(spd))
}

func normalizeRA(ra int32) int32 {
	ra %= FullCircle
	if ra < 0 {
		ra += FullCircle
	}
	return ra
}
