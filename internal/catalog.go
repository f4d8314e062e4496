package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/heyvito/conbound/errors"
)

// Catalogue columns. Each line carries one vertex: right ascension in hours,
// declination in degrees and the constellation abbreviation.
const (
	catalogRACol   = 0
	catalogDecCol  = 12
	catalogCodeCol = 24
	catalogLineLen = catalogCodeCol + 3
)

// Polygon is one contiguous run of catalogue lines sharing a constellation
// code, already unwrapped and simplified.
type Polygon struct {
	Constellation int
	Points        []Vertex
	FirstLine     int
}

// CatalogReader splits a boundary catalogue into polygons. Use Next to
// advance and Polygon to obtain the current one; once Next returns false, Err
// reports what stopped the reader, if anything.
type CatalogReader struct {
	scanner *bufio.Scanner
	line    int
	current Polygon
	err     error

	pending    *catalogLine
	pendingErr error
}

type catalogLine struct {
	number        int
	raHours       float64
	decDegrees    float64
	constellation int
}

func NewCatalogReader(r io.Reader) *CatalogReader {
	return &CatalogReader{scanner: bufio.NewScanner(r)}
}

func (c *CatalogReader) Next() bool {
	if c.err != nil {
		return false
	}

	first, err := c.nextLine()
	if err != nil {
		c.err = err
		return false
	}
	if first == nil {
		return false
	}

	chain := NewChain(64)
	chain.AppendDegrees(first.raHours, first.decDegrees)
	for {
		l, err := c.nextLine()
		if err != nil {
			// Report the polygon read so far; the error surfaces on the
			// following call.
			c.pendingErr = err
			break
		}
		if l == nil {
			break
		}
		if l.constellation != first.constellation {
			c.pending = l
			break
		}
		chain.AppendDegrees(l.raHours, l.decDegrees)
	}

	c.current = Polygon{
		Constellation: first.constellation,
		Points:        chain.Finish(),
		FirstLine:     first.number,
	}
	return true
}

func (c *CatalogReader) Polygon() Polygon { return c.current }

func (c *CatalogReader) Err() error { return c.err }

func (c *CatalogReader) nextLine() (*catalogLine, error) {
	if c.pending != nil {
		l := c.pending
		c.pending = nil
		return l, nil
	}
	if c.pendingErr != nil {
		err := c.pendingErr
		c.pendingErr = nil
		return nil, err
	}

	for c.scanner.Scan() {
		c.line++
		text := strings.TrimRight(c.scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		return parseCatalogLine(text, c.line)
	}
	return nil, c.scanner.Err()
}

func parseCatalogLine(text string, number int) (*catalogLine, error) {
	if len(text) < catalogLineLen {
		return nil, errors.MalformedLine{Line: number, Reason: "line too short"}
	}

	ra, err := leadingFloat(text[catalogRACol:catalogDecCol])
	if err != nil {
		return nil, errors.MalformedLine{Line: number, Reason: "invalid right ascension: " + err.Error()}
	}
	if ra < 0 || ra > 24 {
		return nil, errors.MalformedLine{Line: number, Reason: "right ascension out of range"}
	}

	dec, err := leadingFloat(text[catalogDecCol:catalogCodeCol])
	if err != nil {
		return nil, errors.MalformedLine{Line: number, Reason: "invalid declination: " + err.Error()}
	}
	if dec < -90 || dec > 90 {
		return nil, errors.MalformedLine{Line: number, Reason: "declination out of range"}
	}

	code := text[catalogCodeCol:catalogLineLen]
	idx, ok := ConstellationIndex(code)
	if !ok {
		return nil, errors.UnknownConstellation{Code: code, Line: number}
	}

	return &catalogLine{
		number:        number,
		raHours:       ra,
		decDegrees:    dec,
		constellation: idx,
	}, nil
}

// leadingFloat parses the first whitespace-separated token of a column.
func leadingFloat(column string) (float64, error) {
	fields := strings.Fields(column)
	if len(fields) == 0 {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(fields[0], 64)
}
