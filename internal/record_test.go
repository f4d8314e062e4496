package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/conbound/errors"
)

func TestRecordEncoding(t *testing.T) {
	ori := idx(t, "Ori")
	rec, err := PackRecord(Segment{SPD: 5400, MinRA: 18000, MaxRA: 21600, Constellation: int8(ori)})
	require.NoError(t, err)
	assert.Equal(t, uint32(0x2A304650), rec.Key)
	assert.Equal(t, uint16(3600), rec.Width)
	assert.Equal(t, uint8(59), rec.Constellation)

	buf := make([]byte, RecordSize)
	rec.Write(buf)
	assert.Equal(t, mustByesFromHex("2A304650 0E10 3B"), buf)
}

func TestRecordDecoding(t *testing.T) {
	var rec Record
	rec.Read(mustByesFromHex("2A304650 0E10 3B"))

	assert.Equal(t, int32(5400), rec.SPD())
	assert.Equal(t, int32(18000), rec.MinRA())
	assert.Equal(t, int32(21600), rec.MaxRA())
	assert.Equal(t, Segment{SPD: 5400, MinRA: 18000, MaxRA: 21600, Constellation: 59}, rec.Segment())
}

func TestRecordExtremes(t *testing.T) {
	s := Segment{SPD: MaxSPD, MinRA: FullCircle - 1, MaxRA: FullCircle - 1 + MaxSpan, Constellation: ConstellationCount - 1}
	rec, err := PackRecord(s)
	require.NoError(t, err)
	assert.Equal(t, s, rec.Segment())
}

func TestPackRecordOverflow(t *testing.T) {
	cases := map[string]Segment{
		"min_ra":        {SPD: 10, MinRA: -1, MaxRA: 10},
		"spd":           {SPD: -1, MinRA: 0, MaxRA: 10},
		"width":         {SPD: 10, MinRA: 0, MaxRA: 0x10000},
		"constellation": {SPD: 10, MinRA: 0, MaxRA: 10, Constellation: ConstellationCount},
	}
	for field, seg := range cases {
		_, err := PackRecord(seg)
		var overflow errors.RecordOverflow
		require.ErrorAs(t, err, &overflow, field)
		assert.Equal(t, field, overflow.Field)
	}

	_, err := PackRecord(Segment{SPD: 10, MinRA: 20, MaxRA: 20})
	assert.ErrorAs(t, err, &errors.RecordOverflow{})
}

func TestRecordCovers(t *testing.T) {
	rec, err := PackRecord(Segment{SPD: 6000, MinRA: 82800, MaxRA: 90000})
	require.NoError(t, err)

	assert.True(t, rec.Covers(82800))
	assert.True(t, rec.Covers(86399))
	assert.True(t, rec.Covers(0))
	assert.True(t, rec.Covers(3599))
	assert.False(t, rec.Covers(3600))
	assert.False(t, rec.Covers(82799))
}
