package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/heyvito/gommap"

	"github.com/heyvito/conbound/errors"
	"github.com/heyvito/conbound/internal/metrics"
)

// TableFile is a read-only, memory mapped table. Records are decoded straight
// from the mapping on every access, so opening a table costs a single mmap
// regardless of its size.
//
// Layout, big endian:
//
//	+-------------+---------------+----------------+-------------+---------------+
//	| magic (4)   | version (2)   | reserved (2)   | count (4)   | build id (16) |
//	+-------------+---------------+----------------+-------------+---------------+
//	| key 1 (4) | width 1 (2) | constellation 1 (1) |  ...  | record n          |
//	+-----------+-------------+---------------------+-------+-------------------+
type TableFile struct {
	Path    string
	File    *os.File
	Version uint16
	BuildID uuid.UUID

	count   int
	RawData gommap.MMap
	Records gommap.MMap
}

// WriteTableFile stores records at path. The file is written next to its
// destination and renamed into place, so readers never observe a partial
// table.
func WriteTableFile(path string, records []Record, buildID uuid.UUID) error {
	if len(records) > tableMaxRecords {
		return fmt.Errorf("%s: too many records (%d)", path, len(records))
	}

	data := make([]byte, TableHeaderSize+len(records)*RecordSize)
	copy(data[tableHeaderOffsets.Magic:], TableMagic)
	be.PutUint16(data[tableHeaderOffsets.Version:], TableVersion)
	be.PutUint32(data[tableHeaderOffsets.Count:], uint32(len(records)))
	copy(data[tableHeaderOffsets.BuildID:], buildID[:])
	body := data[TableHeaderSize:]
	for i := range records {
		records[i].Write(body[i*RecordSize:])
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}
	if _, err = tmp.Write(data); err != nil {
		cleanup()
		return err
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func OpenTableFile(path string) (*TableFile, error) {
	done := metrics.Measure(metrics.TableOpenLatency)
	t, err := openTableFile(path)
	if err != nil {
		metrics.Count(metrics.TableOpenFailures)
		return nil, err
	}
	done()
	return t, nil
}

func openTableFile(path string) (*TableFile, error) {
	stat, err := os.Stat(path)
	switch {
	case err != nil:
		return nil, err
	case stat.IsDir():
		return nil, fmt.Errorf("%s: is a directory", path)
	case stat.Size() < TableHeaderSize:
		return nil, errors.InvalidTable{Path: path, Reason: "file shorter than header"}
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	mapped, err := gommap.Map(fd.Fd(), gommap.PROT_READ, gommap.MAP_SHARED)
	if err != nil {
		_ = fd.Close()
		return nil, err
	}

	t := &TableFile{
		Path:    path,
		File:    fd,
		RawData: mapped,
	}
	if err = t.load(); err != nil {
		_ = t.Close()
		return nil, err
	}
	return t, nil
}

func (t *TableFile) load() error {
	header := t.RawData[:TableHeaderSize]
	if string(header[tableHeaderOffsets.Magic:tableHeaderOffsets.Magic+4]) != TableMagic {
		return errors.InvalidTable{Path: t.Path, Reason: "bad magic"}
	}
	t.Version = be.Uint16(header[tableHeaderOffsets.Version:])
	if t.Version != TableVersion {
		return errors.InvalidTable{Path: t.Path, Reason: fmt.Sprintf("unsupported version %d", t.Version)}
	}
	count := int(be.Uint32(header[tableHeaderOffsets.Count:]))
	if count > tableMaxRecords || len(t.RawData) != TableHeaderSize+count*RecordSize {
		return errors.InvalidTable{Path: t.Path, Reason: fmt.Sprintf("size does not match %d records", count)}
	}
	copy(t.BuildID[:], header[tableHeaderOffsets.BuildID:tableHeaderOffsets.BuildID+tableBuildIDSize])
	t.count = count
	t.Records = t.RawData[TableHeaderSize:]

	for i := 0; i < count; i++ {
		if c := t.At(i).Constellation; int(c) >= ConstellationCount {
			return errors.InvalidTable{Path: t.Path, Reason: fmt.Sprintf("record %d: unknown constellation %d", i, c)}
		}
	}
	if i := checkOrder(t); i >= 0 {
		return errors.InvalidTable{Path: t.Path, Reason: fmt.Sprintf("records out of order at %d", i)}
	}
	return nil
}

func (t *TableFile) Len() int { return t.count }

func (t *TableFile) At(i int) Record {
	var r Record
	r.Read(t.Records[i*RecordSize:])
	return r
}

func (t *TableFile) Close() error {
	var unmapErr error
	if t.RawData != nil {
		unmapErr = t.RawData.UnsafeUnmap()
		t.RawData, t.Records = nil, nil
	}
	if err := t.File.Close(); err != nil {
		return err
	}
	return unmapErr
}
