package conbound

import (
	errs "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heyvito/conbound/internal"
	"github.com/heyvito/conbound/internal/outlock"
	"github.com/heyvito/conbound/internal/plot"
)

// Artifact file names, relative to Config.WorkDir.
const (
	TableFileName   = "conbound.tbl"
	ListingFileName = "listing.txt"
	CArrayFileName  = "boundaries.c"
	GoFileName      = "boundaries.go"
	PlotFileName    = "boundaries.png"
)

// Build is the result of compacting a boundary catalogue.
type Build struct {
	ID      uuid.UUID
	Records []Record
	Stats   BuildStats
}

// Table returns an in-memory Table over the build's records.
func (b *Build) Table() Table {
	return FromRecords(b.Records)
}

// BuildTable reads a boundary catalogue and compacts it into packed records.
// Any malformed line or unknown constellation aborts the build.
func BuildTable(config Config, catalogue io.Reader) (*Build, error) {
	log := config.GetLogger()
	start := time.Now()
	log.Info("Build starting")

	acc := internal.NewAccumulator(config)
	reader := internal.NewCatalogReader(catalogue)
	for reader.Next() {
		p := reader.Polygon()
		acc.Extract(p.Points, p.Constellation)
	}
	if err := reader.Err(); err != nil {
		log.Error(err, "Failed reading catalogue")
		return nil, fmt.Errorf("failed reading catalogue: %w", err)
	}

	records, stats, err := acc.Finish()
	if err != nil {
		return nil, err
	}

	b := &Build{ID: uuid.New(), Records: records, Stats: stats}
	log.Info("Build completed", "id", b.ID.String(), "records", stats.Records, "elapsed", time.Since(start).String())
	return b, nil
}

// WriteArtifacts stores a build in config.WorkDir: the binary table, the
// human-readable listing, C and Go array initializers and, when enabled, a
// rendered chart. The directory is locked while the artifacts are written.
func WriteArtifacts(config Config, b *Build) (err error) {
	wd := config.GetWorkdir()
	if wd == "" {
		return fmt.Errorf("cannot write artifacts without WorkDir")
	}
	log := config.GetLogger().Named("artifacts")

	stat, err := os.Stat(wd)
	if os.IsNotExist(err) {
		if err = os.MkdirAll(wd, 0755); err != nil {
			return err
		}
	} else if err != nil {
		return err
	} else if !stat.IsDir() {
		return fmt.Errorf("%s: exists and is not a directory", wd)
	}

	lock, err := outlock.Acquire(wd, log)
	if err != nil {
		return err
	}
	defer func() {
		if unlockErr := lock.Release(); unlockErr != nil {
			err = errs.Join(err, unlockErr)
		}
	}()

	if err = internal.WriteTableFile(filepath.Join(wd, TableFileName), b.Records, b.ID); err != nil {
		log.Error(err, "Failed writing table file")
		return err
	}
	log.Debug("Table file written", "records", len(b.Records))

	src := internal.Records(b.Records)
	writers := []artifact{
		{ListingFileName, func(w io.Writer) error { return internal.WriteListing(w, src) }},
		{CArrayFileName, func(w io.Writer) error { return internal.WriteCArray(w, src) }},
		{GoFileName, func(w io.Writer) error {
			return internal.WriteGoSource(w, config.GetGoPackage(), config.GetGoVariable(), src)
		}},
	}
	if config.Plot {
		writers = append(writers, artifact{PlotFileName, func(w io.Writer) error {
			return plot.Render(w, src, config.PlotOptions)
		}})
	}

	for _, w := range writers {
		if err = writeFile(filepath.Join(wd, w.name), w.write); err != nil {
			log.Error(err, "Failed writing artifact", "name", w.name)
			return err
		}
		log.Debug("Artifact written", "name", w.name)
	}

	log.Info("Artifacts written", "dir", wd, "build_id", b.ID.String())
	return nil
}

type artifact struct {
	name  string
	write func(io.Writer) error
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
