package internal

import "encoding/binary"

var be = binary.BigEndian

const (
	// FullCircle is the length of the RA axis, in seconds of time.
	FullCircle = 24 * 60 * 60
	HalfCircle = FullCircle / 2

	// SPDOffset converts declination arcminutes into south polar distance.
	SPDOffset = 90 * 60
	MaxSPD    = 180 * 60

	// MaxSpan is the widest segment the extractor emits. Anything wider is
	// bisected until it fits, leaving margin under the 16-bit width field.
	MaxSpan = 65000

	// extensionReach is how far an unbounded candidate may extend before it
	// is considered open (49 hours, comfortably beyond any real boundary).
	extensionReach = 49 * 60 * 60

	minRABits = 17
	minRAMask = 1<<minRABits - 1
	spdBits   = 14
	spdMask   = 1<<spdBits - 1
)

const RecordSize = 4 + 2 + 1

var recordOffsets = struct {
	Key           uint8
	Width         uint8
	Constellation uint8
}{
	Key:           0,
	Width:         4,
	Constellation: 6,
}

const (
	TableMagic       = "CBND"
	TableVersion     = 1
	TableHeaderSize  = 4 + 2 + 2 + 4 + tableBuildIDSize
	tableBuildIDSize = 16
	tableMaxRecords  = 1 << 20
)

var tableHeaderOffsets = struct {
	Magic    uint8
	Version  uint8
	Reserved uint8
	Count    uint8
	BuildID  uint8
}{
	Magic:    0,
	Version:  4,
	Reserved: 6,
	Count:    8,
	BuildID:  12,
}
