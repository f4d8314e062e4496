package internal

import "fmt"

// Segment is a horizontal boundary line at a fixed south polar distance. It
// spans [MinRA, MaxRA) and is labelled with the constellation lying
// immediately south of it.
type Segment struct {
	SPD           int16
	MinRA         int32
	MaxRA         int32
	Constellation int8
}

// Width returns the extent of s in seconds of right ascension.
func (s Segment) Width() int32 { return s.MaxRA - s.MinRA }

func (s Segment) String() string {
	return fmt.Sprintf("%s@%d[%d,%d)", ConstellationName(int(s.Constellation)), s.SPD, s.MinRA, s.MaxRA)
}

// canonicalize moves the segment by whole turns until MinRA falls in
// [0, FullCircle).
func (s Segment) canonicalize() Segment {
	for s.MinRA >= FullCircle {
		s.MinRA -= FullCircle
		s.MaxRA -= FullCircle
	}
	for s.MinRA < 0 {
		s.MinRA += FullCircle
		s.MaxRA += FullCircle
	}
	return s
}

// Split bisects s until every piece is at most MaxSpan wide. Pieces are
// returned west to east and are contiguous.
func (s Segment) Split() []Segment {
	if s.Width() <= MaxSpan {
		return []Segment{s}
	}
	mid := s.MinRA + s.Width()/2
	west, east := s, s
	west.MaxRA = mid
	east.MinRA = mid
	return append(west.Split(), east.Split()...)
}
