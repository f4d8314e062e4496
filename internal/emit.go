package internal

import (
	"bufio"
	"fmt"
	"io"
)

// WriteListing writes one human-readable line per record, for checking a
// build against the catalogue by eye.
func WriteListing(w io.Writer, src RecordSource) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < src.Len(); i++ {
		r := src.At(i)
		_, err := fmt.Fprintf(bw, "Line at dec %+09.5f, RA %9.5f to %9.5f : %s\n",
			float64(r.SPD())/60-90,
			float64(r.MinRA())/3600,
			float64(r.MaxRA())/3600,
			ConstellationName(int(r.Constellation)),
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCArray writes the records as the body of a C array initializer of
// { key, width, constellation } triples.
func WriteCArray(w io.Writer, src RecordSource) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < src.Len(); i++ {
		r := src.At(i)
		_, err := fmt.Fprintf(bw, "    { 0x%08x, 0x%04x, %2d },   /* %s */\n",
			r.Key, r.Width, r.Constellation, ConstellationName(int(r.Constellation)))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteGoSource writes a Go file declaring the records as a package-level
// array of conbound.Record, ready to be embedded by another program.
func WriteGoSource(w io.Writer, pkg, name string, src RecordSource) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by conbound-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkg)
	fmt.Fprintf(bw, "import \"github.com/heyvito/conbound\"\n\n")
	fmt.Fprintf(bw, "var %s = [%d]conbound.Record{\n", name, src.Len())
	for i := 0; i < src.Len(); i++ {
		r := src.At(i)
		fmt.Fprintf(bw, "\t{Key: 0x%08x, Width: 0x%04x, Constellation: %2d}, // %s\n",
			r.Key, r.Width, r.Constellation, ConstellationName(int(r.Constellation)))
	}
	if _, err := fmt.Fprintf(bw, "}\n"); err != nil {
		return err
	}
	return bw.Flush()
}
