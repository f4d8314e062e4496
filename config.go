package conbound

import (
	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/conbound/internal/plot"
)

// PlotOptions controls the rendering of boundaries.png.
type PlotOptions = plot.Options

type Config struct {
	// WorkDir is the directory receiving the artifacts written by
	// WriteArtifacts. It is created if missing, and locked for the duration
	// of the write so two generators cannot interleave their output.
	WorkDir string

	// GoPackage and GoVariable name the package and variable of the
	// generated Go source. They default to "boundaries" and "Boundaries".
	GoPackage  string
	GoVariable string

	// Plot enables rendering boundaries.png alongside the other artifacts.
	Plot        bool
	PlotOptions PlotOptions

	// Logger allows a given stdlog.Logger instance to be set as the system
	// logger. If unset, no logs will be generated.
	Logger stdlog.Logger
}

func (c Config) GetWorkdir() string {
	return c.WorkDir
}

func (c Config) GetGoPackage() string {
	if c.GoPackage == "" {
		return "boundaries"
	}
	return c.GoPackage
}

func (c Config) GetGoVariable() string {
	if c.GoVariable == "" {
		return "Boundaries"
	}
	return c.GoVariable
}

func (c Config) GetLogger() stdlog.Logger {
	if c.Logger != nil {
		return c.Logger.Named("conbound")
	}
	return stdlog.Discard
}
