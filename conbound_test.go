package conbound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-stdlog/stdlog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyvito/conbound/errors"
	"github.com/heyvito/conbound/internal/outlock"
)

type vertex struct {
	ra, dec float64
}

func catalogue(polygons map[string][]vertex, order ...string) string {
	var sb strings.Builder
	for _, code := range order {
		for _, v := range polygons[code] {
			fmt.Fprintf(&sb, "%11.7f %+11.7f %s\n", v.ra, v.dec, code)
		}
	}
	return sb.String()
}

// Three regions: Leo north of Sex between 10h and 11h, and Psc straddling
// the 0h meridian.
var testCatalogue = catalogue(map[string][]vertex{
	"LEO": {{10, 10}, {11, 10}, {11, 5}, {10, 5}, {10, 10}},
	"SEX": {{10, 5}, {11, 5}, {11, 0}, {10, 0}, {10, 5}},
	"PSC": {{23, 10}, {1, 10}, {1, 0}, {23, 0}, {23, 10}},
}, "LEO", "SEX", "PSC")

func TestBuildTable(t *testing.T) {
	b, err := BuildTable(Config{}, strings.NewReader(testCatalogue))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, BuildStats{Polygons: 3, Segments: 3, Records: 3}, b.Stats)

	table := b.Table()
	defer table.Close()
	assert.Equal(t, uuid.Nil, table.BuildID())
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "Leo", table.Find(10.5, 7.5))
	assert.Equal(t, "Sex", table.Find(10.5, 2.5))
	assert.Equal(t, "Psc", table.Find(0.5, 5))
	assert.Equal(t, "Psc", table.Find(23.5, 5))
	assert.Equal(t, "UMi", table.Find(10.5, 12))
	assert.Equal(t, "Leo", table.Find(10.5, 5))

	leo, ok := ConstellationIndex("leo")
	require.True(t, ok)
	assert.Equal(t, leo, table.Lookup(37800, 5800))
	assert.Equal(t, leo, table.FindIndex(10.5, 7.5))
	assert.Equal(t, "Leo", ConstellationName(leo))
}

func TestBuildTableRejectsBadCatalogue(t *testing.T) {
	bad := testCatalogue + " 12.0000000  +1.0000000 Foo\n"
	_, err := BuildTable(Config{Logger: stdlog.Discard}, strings.NewReader(bad))
	var unknown errors.UnknownConstellation
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 16, unknown.Line)
}

func TestWriteArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	conf := Config{WorkDir: dir, Plot: true, GoPackage: "sky"}
	b, err := BuildTable(conf, strings.NewReader(testCatalogue))
	require.NoError(t, err)
	require.NoError(t, WriteArtifacts(conf, b))

	for _, name := range []string{TableFileName, ListingFileName, CArrayFileName, GoFileName, PlotFileName} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
	assert.NoFileExists(t, filepath.Join(dir, outlock.FileName))

	goSource, err := os.ReadFile(filepath.Join(dir, GoFileName))
	require.NoError(t, err)
	assert.Contains(t, string(goSource), "package sky\n")
	assert.Contains(t, string(goSource), "var Boundaries = [3]conbound.Record{\n")

	listing, err := os.ReadFile(filepath.Join(dir, ListingFileName))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(listing), "\n"))

	table, err := Open(filepath.Join(dir, TableFileName))
	require.NoError(t, err)
	defer func() { assert.NoError(t, table.Close()) }()

	assert.Equal(t, b.ID, table.BuildID())
	mem := b.Table()
	require.Equal(t, mem.Len(), table.Len())
	for i := 0; i < mem.Len(); i++ {
		assert.Equal(t, mem.Record(i), table.Record(i))
	}
	for _, p := range [][2]float64{{10.5, 7.5}, {10.5, 2.5}, {0.5, 5}, {12, -30}, {10.5, 89}} {
		assert.Equal(t, mem.Find(p[0], p[1]), table.Find(p[0], p[1]))
	}
}

func TestWriteArtifactsWhileLocked(t *testing.T) {
	dir := t.TempDir()
	lock, err := outlock.Acquire(dir, nil)
	require.NoError(t, err)
	defer func() { require.NoError(t, lock.Release()) }()

	b, err := BuildTable(Config{}, strings.NewReader(testCatalogue))
	require.NoError(t, err)
	err = WriteArtifacts(Config{WorkDir: dir}, b)
	assert.ErrorAs(t, err, &errors.CannotAcquireBuildLock{})
	assert.NoFileExists(t, filepath.Join(dir, TableFileName))
}

func TestWriteArtifactsRequiresWorkDir(t *testing.T) {
	assert.Error(t, WriteArtifacts(Config{}, &Build{}))
}

func TestPackRecord(t *testing.T) {
	_, err := PackRecord(Segment{SPD: 10, MinRA: 0, MaxRA: 0x10000})
	assert.ErrorAs(t, err, &errors.RecordOverflow{})
}
