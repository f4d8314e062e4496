package internal

import (
	"encoding/hex"
	"os"
	"strings"
	"testing"

	"github.com/go-stdlog/stdlog"
)

func mustByesFromHex(s string) []byte {
	s = strings.ReplaceAll(s, " ", "")
	v, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type DummyConfig struct {
	WorkDir string
	Logger  stdlog.Logger
}

func (d DummyConfig) GetWorkdir() string {
	return d.WorkDir
}

func (d DummyConfig) GetLogger() stdlog.Logger {
	return d.Logger
}

func WithLogger() DummyOpt {
	return func(d *DummyConfig) { d.Logger = stdlog.NewStd(os.Stdout) }
}

type DummyOpt func(*DummyConfig)

func NewDummyConfig(t *testing.T, dummyOpts ...DummyOpt) *DummyConfig {
	t.Helper()
	d := &DummyConfig{
		WorkDir: t.TempDir(),
		Logger:  stdlog.Discard,
	}

	for _, opt := range dummyOpts {
		opt(d)
	}

	return d
}

func idx(t *testing.T, code string) int {
	t.Helper()
	i, ok := ConstellationIndex(code)
	if !ok {
		t.Fatalf("unknown constellation %s", code)
	}
	return i
}

// rect returns the closed vertex chain of an axis-aligned region, traced the
// way the catalogue traces polygons: east along the north edge, south, west
// along the south edge, then north back to the start.
func rect(west, east, south, north int32) []Vertex {
	return []Vertex{
		{X: west, Y: north},
		{X: east, Y: north},
		{X: east, Y: south},
		{X: west, Y: south},
		{X: west, Y: north},
	}
}
