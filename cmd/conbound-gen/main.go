// Command conbound-gen compacts a constellation boundary catalogue into a
// lookup table and its companion artifacts.
//
// Every flag may also be set through the environment variable named in its
// usage, directly or from a .env file in the working directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-stdlog/stdlog"

	"github.com/heyvito/conbound"
	"github.com/heyvito/conbound/cmd/internal/envflag"
)

func main() {
	envflag.Load()

	catalogue := flag.String("catalogue", envflag.String("CONBOUND_CATALOGUE", "data.dat"), "boundary catalogue to read (CONBOUND_CATALOGUE)")
	outDir := flag.String("out", envflag.String("CONBOUND_OUT_DIR", "out"), "directory receiving the artifacts (CONBOUND_OUT_DIR)")
	goPackage := flag.String("go-package", envflag.String("CONBOUND_GO_PACKAGE", ""), "package name of the generated Go source (CONBOUND_GO_PACKAGE)")
	goVariable := flag.String("go-variable", envflag.String("CONBOUND_GO_VARIABLE", ""), "variable name of the generated Go array (CONBOUND_GO_VARIABLE)")
	plot := flag.Bool("plot", envflag.Bool("CONBOUND_PLOT", false), "also render boundaries.png (CONBOUND_PLOT)")
	pixelsPerHour := flag.Float64("plot-scale", envflag.Float("CONBOUND_PLOT_SCALE", 0), "plot pixels per hour of right ascension (CONBOUND_PLOT_SCALE)")
	labels := flag.Bool("plot-labels", envflag.Bool("CONBOUND_PLOT_LABELS", false), "label plotted boundaries (CONBOUND_PLOT_LABELS)")
	flag.Parse()

	log := stdlog.NewStd(os.Stderr)

	f, err := os.Open(*catalogue)
	if err != nil {
		log.Error(err, "Cannot open catalogue", "path", *catalogue)
		os.Exit(1)
	}
	defer f.Close()

	config := conbound.Config{
		WorkDir:    *outDir,
		GoPackage:  *goPackage,
		GoVariable: *goVariable,
		Plot:       *plot,
		PlotOptions: conbound.PlotOptions{
			PixelsPerHour: *pixelsPerHour,
			Labels:        *labels,
		},
		Logger: log,
	}

	build, err := conbound.BuildTable(config, f)
	if err != nil {
		log.Error(err, "Build failed", "path", *catalogue)
		os.Exit(1)
	}
	if err = conbound.WriteArtifacts(config, build); err != nil {
		log.Error(err, "Failed writing artifacts", "dir", *outDir)
		os.Exit(1)
	}

	s := build.Stats
	fmt.Printf("%d polygons, %d segments, %d duplicates, %d records\n", s.Polygons, s.Segments, s.Duplicates, s.Records)
}
