package internal

import (
	"github.com/heyvito/conbound/errors"
)

// Record is the packed form of a Segment. Key holds MinRA in its low 17 bits
// and SPD in bits 17 through 30; Width is MaxRA - MinRA.
type Record struct {
	Key           uint32
	Width         uint16
	Constellation uint8
}

// PackRecord encodes s, returning a RecordOverflow error if any field falls
// outside the packed format.
func PackRecord(s Segment) (Record, error) {
	switch {
	case s.MinRA < 0 || s.MinRA > minRAMask:
		return Record{}, errors.RecordOverflow{Field: "min_ra", Value: int64(s.MinRA)}
	case s.SPD < 0 || int(s.SPD) > spdMask:
		return Record{}, errors.RecordOverflow{Field: "spd", Value: int64(s.SPD)}
	case s.Width() <= 0 || s.Width() > 0xFFFF:
		return Record{}, errors.RecordOverflow{Field: "width", Value: int64(s.Width())}
	case s.Constellation < 0 || int(s.Constellation) >= ConstellationCount:
		return Record{}, errors.RecordOverflow{Field: "constellation", Value: int64(s.Constellation)}
	}
	return Record{
		Key:           uint32(s.MinRA) | uint32(s.SPD)<<minRABits,
		Width:         uint16(s.Width()),
		Constellation: uint8(s.Constellation),
	}, nil
}

func (r Record) SPD() int32   { return int32(r.Key>>minRABits) & spdMask }
func (r Record) MinRA() int32 { return int32(r.Key & minRAMask) }
func (r Record) MaxRA() int32 { return r.MinRA() + int32(r.Width) }

// Segment decodes r back into its unpacked form.
func (r Record) Segment() Segment {
	return Segment{
		SPD:           int16(r.SPD()),
		MinRA:         r.MinRA(),
		MaxRA:         r.MaxRA(),
		Constellation: int8(r.Constellation),
	}
}

// Covers reports whether ra, taken modulo a full turn, falls in [MinRA, MaxRA).
func (r Record) Covers(ra int32) bool {
	lo, hi := r.MinRA(), r.MaxRA()
	for _, v := range [...]int32{ra, ra + FullCircle, ra - FullCircle} {
		if v >= lo && v < hi {
			return true
		}
	}
	return false
}

func (r *Record) Read(b []byte) {
	r.Key = be.Uint32(b[recordOffsets.Key:])
	r.Width = be.Uint16(b[recordOffsets.Width:])
	r.Constellation = b[recordOffsets.Constellation]
}

func (r *Record) Write(b []byte) {
	be.PutUint32(b[recordOffsets.Key:], r.Key)
	be.PutUint16(b[recordOffsets.Width:], r.Width)
	b[recordOffsets.Constellation] = r.Constellation
}
