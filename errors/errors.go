package errors

import "fmt"

// UnknownConstellation indicates that a catalogue line carries a code that is
// not one of the 88 IAU abbreviations.
type UnknownConstellation struct {
	Code string
	Line int
}

func (u UnknownConstellation) Error() string {
	return fmt.Sprintf("line %d: unknown constellation %q", u.Line, u.Code)
}

// MalformedLine indicates that a catalogue line could not be parsed. Reason
// describes which column was at fault.
type MalformedLine struct {
	Line   int
	Reason string
}

func (m MalformedLine) Error() string {
	return fmt.Sprintf("line %d: %s", m.Line, m.Reason)
}

// RecordOverflow indicates that a segment cannot be represented in the packed
// record format. The splitting performed during extraction should make this
// impossible; seeing it means the input violates the catalogue grid.
type RecordOverflow struct {
	Field string
	Value int64
}

func (r RecordOverflow) Error() string {
	return fmt.Sprintf("value %d does not fit record field %s", r.Value, r.Field)
}

// InvalidTable indicates that a table file is truncated, carries the wrong
// magic or version, or is otherwise unusable.
type InvalidTable struct {
	Path   string
	Reason string
}

func (i InvalidTable) Error() string {
	return fmt.Sprintf("%s: invalid table: %s", i.Path, i.Reason)
}

// CannotAcquireBuildLock indicates that the output directory is locked by
// another running generator. The process holding the lock is present in the
// PID field of this error.
type CannotAcquireBuildLock struct {
	PID int
}

func (c CannotAcquireBuildLock) Error() string {
	return fmt.Sprintf("cannot acquire build lock, as it is being held by process %d", c.PID)
}
