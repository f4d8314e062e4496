// Package plot renders a boundary table as an image, for eyeballing a build.
// Right ascension runs along the horizontal axis and declination along the
// vertical one, north up.
package plot

import (
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/heyvito/conbound/internal"
)

// Blank margin around the chart, in pixels.
const padding = 40

type Options struct {
	// PixelsPerHour is the horizontal scale. The vertical scale follows from
	// it so that the chart is twice as wide as it is tall.
	PixelsPerHour float64
	LineWidth     float64
	Labels        bool
}

func (o Options) withDefaults() Options {
	if o.PixelsPerHour <= 0 {
		o.PixelsPerHour = 60
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 2
	}
	return o
}

// Render draws every record of src as a horizontal stroke coloured by the
// constellation it belongs to, and writes the result as PNG to w.
func Render(w io.Writer, src internal.RecordSource, opts Options) error {
	opts = opts.withDefaults()
	chartW := 24 * opts.PixelsPerHour
	chartH := chartW / 2
	c := gg.NewContext(int(chartW)+padding*2, int(chartH)+padding*2)
	c.SetRGB(0, 0, 0)
	c.Clear()

	c.Push()
	c.Translate(padding, padding)
	drawGrid(c, chartW, chartH)

	c.SetLineWidth(opts.LineWidth)
	for i := 0; i < src.Len(); i++ {
		r := src.At(i)
		y := decToY(r.SPD(), chartH)
		x0 := raToX(r.MinRA(), chartW)
		x1 := raToX(r.MaxRA(), chartW)
		red, green, blue := constellationColor(int(r.Constellation))
		c.SetRGB(red, green, blue)
		c.DrawLine(x0, y, x1, y)
		if r.MaxRA() > internal.FullCircle {
			// Draw the part that wrapped past 24h again at the left edge.
			c.DrawLine(x0-chartW, y, x1-chartW, y)
		}
		c.Stroke()
		if opts.Labels {
			c.DrawStringAnchored(internal.ConstellationName(int(r.Constellation)), (x0+x1)/2, y-4, 0.5, 0)
		}
	}
	c.Pop()
	return c.EncodePNG(w)
}

func drawGrid(c *gg.Context, w, h float64) {
	c.SetRGBA(1, 1, 1, 0.15)
	c.SetLineWidth(1)
	for hour := 0; hour <= 24; hour += 2 {
		x := float64(hour) / 24 * w
		c.DrawLine(x, 0, x, h)
	}
	for dec := -90; dec <= 90; dec += 30 {
		y := float64(90-dec) / 180 * h
		c.DrawLine(0, y, w, y)
	}
	c.Stroke()
}

// Chart coordinates: x grows with right ascension from 0h at the left edge,
// y grows southwards from the north pole at the top.
func raToX(ra int32, w float64) float64 {
	return float64(ra) / internal.FullCircle * w
}

func decToY(spd int32, h float64) float64 {
	return (1 - float64(spd)/internal.MaxSPD) * h
}

// constellationColor spreads the 88 constellations around the hue circle.
// Neighbouring indices land far apart so adjoining regions stay
// distinguishable.
func constellationColor(idx int) (float64, float64, float64) {
	hue := math.Mod(float64(idx)*0.381966, 1) * 6
	x := 1 - math.Abs(math.Mod(hue, 2)-1)
	switch int(hue) {
	case 0:
		return 1, x, 0
	case 1:
		return x, 1, 0
	case 2:
		return 0, 1, x
	case 3:
		return 0, x, 1
	case 4:
		return x, 0, 1
	default:
		return 1, 0, x
	}
}
