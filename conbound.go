// Package conbound determines which constellation contains a point of the
// sky. It compacts the IAU constellation boundary catalogue into a few
// hundred packed records of horizontal boundary lines, and answers lookups
// with a binary search followed by a short scan northwards.
package conbound

import (
	"github.com/google/uuid"

	"github.com/heyvito/conbound/internal"
)

type (
	// Record is a packed boundary line: Key holds the western right
	// ascension in its low 17 bits and the south polar distance above them,
	// Width is the line's extent in seconds of right ascension.
	Record = internal.Record

	// Segment is the unpacked form of a Record.
	Segment = internal.Segment

	BuildStats = internal.BuildStats
)

type Table interface {
	// Lookup returns the index of the constellation containing the point at
	// raSeconds seconds of right ascension and spd arcminutes of south polar
	// distance (declination + 90 degrees, in arcminutes).
	Lookup(raSeconds, spd int) int

	// Find returns the three-letter abbreviation of the constellation
	// containing the point at raHours of right ascension and decDegrees of
	// declination.
	Find(raHours, decDegrees float64) string

	// FindIndex is Find returning the constellation index.
	FindIndex(raHours, decDegrees float64) int

	// Len returns the amount of records in the table.
	Len() int

	// Record returns the i-th record, ordered north to south.
	Record(i int) Record

	// BuildID identifies the build that produced the table. Tables created
	// from records in memory report uuid.Nil.
	BuildID() uuid.UUID

	// Close releases resources held by the table. Tables must not be used
	// after being closed.
	Close() error
}

// FromRecords returns a Table over records, which must be ordered as
// produced by Build. The slice is not copied and must not be modified
// afterwards.
func FromRecords(records []Record) Table {
	return &memoryTable{records: internal.Records(records)}
}

// Open memory maps a table file written by WriteArtifacts.
func Open(path string) (Table, error) {
	f, err := internal.OpenTableFile(path)
	if err != nil {
		return nil, err
	}
	return &fileTable{file: f}, nil
}

// PackRecord encodes a segment into a Record. It fails with a RecordOverflow
// error when any field does not fit the packed format.
func PackRecord(s Segment) (Record, error) {
	return internal.PackRecord(s)
}

// ConstellationName returns the IAU abbreviation for a constellation index.
func ConstellationName(idx int) string {
	return internal.ConstellationName(idx)
}

// ConstellationIndex resolves an IAU abbreviation, ignoring case.
func ConstellationIndex(code string) (int, bool) {
	return internal.ConstellationIndex(code)
}

type memoryTable struct {
	records internal.Records
}

func (m *memoryTable) Lookup(raSeconds, spd int) int {
	return internal.Lookup(m.records, int32(raSeconds), int32(spd))
}

func (m *memoryTable) Find(raHours, decDegrees float64) string {
	return internal.ConstellationName(m.FindIndex(raHours, decDegrees))
}

func (m *memoryTable) FindIndex(raHours, decDegrees float64) int {
	return internal.LookupDegrees(m.records, raHours, decDegrees)
}

func (m *memoryTable) Len() int            { return m.records.Len() }
func (m *memoryTable) Record(i int) Record { return m.records.At(i) }
func (m *memoryTable) BuildID() uuid.UUID  { return uuid.Nil }
func (m *memoryTable) Close() error        { return nil }

type fileTable struct {
	file *internal.TableFile
}

func (f *fileTable) Lookup(raSeconds, spd int) int {
	return internal.Lookup(f.file, int32(raSeconds), int32(spd))
}

func (f *fileTable) Find(raHours, decDegrees float64) string {
	return internal.ConstellationName(f.FindIndex(raHours, decDegrees))
}

func (f *fileTable) FindIndex(raHours, decDegrees float64) int {
	return internal.LookupDegrees(f.file, raHours, decDegrees)
}

func (f *fileTable) Len() int            { return f.file.Len() }
func (f *fileTable) Record(i int) Record { return f.file.At(i) }
func (f *fileTable) BuildID() uuid.UUID  { return f.file.BuildID }
func (f *fileTable) Close() error        { return f.file.Close() }
