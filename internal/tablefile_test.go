package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/conbound/errors"
)

func TestTableFileLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table")
	id := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, WriteTableFile(path, emitFixture(t), id))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, mustByesFromHex(
		"43424E44 0001 0000 00000001"+
			"00112233445566778899AABBCCDDEEFF"+
			"2A304650 0E10 3B"), data)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), stat.Mode().Perm())
}

func TestTableFileRoundTrip(t *testing.T) {
	table := stackedTable(t)
	path := filepath.Join(t.TempDir(), "table")
	id := uuid.New()
	require.NoError(t, WriteTableFile(path, table, id))

	f, err := OpenTableFile(path)
	require.NoError(t, err)
	defer func() { assert.NoError(t, f.Close()) }()

	assert.Equal(t, id, f.BuildID)
	assert.Equal(t, uint16(TableVersion), f.Version)
	require.Equal(t, table.Len(), f.Len())
	for i := range table {
		assert.Equal(t, table[i], f.At(i))
	}

	for _, p := range [][2]int32{{37800, 5800}, {37800, 5600}, {1800, 5800}, {43200, 5600}} {
		assert.Equal(t, Lookup(table, p[0], p[1]), Lookup(f, p[0], p[1]))
	}
}

func TestTableFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table")
	require.NoError(t, WriteTableFile(path, nil, uuid.Nil))

	f, err := OpenTableFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, UrsaMinor, Lookup(f, 0, 0))
	assert.NoError(t, f.Close())
}

func TestOpenTableFileRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid")
	require.NoError(t, WriteTableFile(valid, emitFixture(t), uuid.New()))
	data, err := os.ReadFile(valid)
	require.NoError(t, err)

	corrupt := func(name string, mutate func([]byte) []byte) string {
		b := mutate(append([]byte(nil), data...))
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, b, 0644))
		return p
	}

	paths := []string{
		corrupt("short", func(b []byte) []byte { return b[:TableHeaderSize-1] }),
		corrupt("magic", func(b []byte) []byte { b[0] = 'X'; return b }),
		corrupt("version", func(b []byte) []byte { b[5] = 9; return b }),
		corrupt("truncated", func(b []byte) []byte { return b[:len(b)-1] }),
		corrupt("count", func(b []byte) []byte { b[11] = 2; return b }),
		corrupt("constellation", func(b []byte) []byte { b[len(b)-1] = ConstellationCount; return b }),
	}
	for _, p := range paths {
		_, err := OpenTableFile(p)
		var invalid errors.InvalidTable
		require.ErrorAs(t, err, &invalid, p)
		assert.Equal(t, p, invalid.Path)
	}

	_, err = OpenTableFile(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = OpenTableFile(dir)
	assert.Error(t, err)
}

func TestOpenTableFileRejectsUnorderedRecords(t *testing.T) {
	table := stackedTable(t)
	require.Greater(t, table.Len(), 1)
	dir := t.TempDir()

	reversed := make([]Record, table.Len())
	for i := range table {
		reversed[len(table)-1-i] = table[i]
	}
	duplicated := append(Records{table[0]}, table...)

	for name, records := range map[string][]Record{"reversed": reversed, "duplicated": duplicated} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteTableFile(path, records, uuid.New()))

		_, err := OpenTableFile(path)
		var invalid errors.InvalidTable
		require.ErrorAs(t, err, &invalid, name)
		assert.Contains(t, invalid.Reason, "out of order", name)
	}
}
