package internal

import "math"

// Vertex is a boundary vertex on the integer catalogue grid. X is right
// ascension in seconds of time, Y is south polar distance in arcminutes.
type Vertex struct {
	X int32
	Y int32
}

// RASeconds converts right ascension in decimal hours to whole seconds,
// rounding half up.
func RASeconds(hours float64) int32 {
	return int32(math.Floor(hours*3600 + 0.5))
}

// SPDMinutes converts declination in decimal degrees to south polar distance
// in whole arcminutes, rounding half up.
func SPDMinutes(degrees float64) int32 {
	return int32(math.Floor(degrees*60+0.5)) + SPDOffset
}

// Chain accumulates the vertices of a single constellation polygon. Vertices
// are unwrapped across the 0h/24h seam as they are appended, so consecutive
// vertices are never more than twelve hours apart, and collinear runs are
// collapsed to their end points.
type Chain struct {
	Points []Vertex
	shift  bool
}

// NewChain returns an empty chain with room for sizeHint vertices before it
// needs to grow.
func NewChain(sizeHint int) *Chain {
	return &Chain{Points: make([]Vertex, 0, sizeHint)}
}

// Append adds a vertex to the chain.
func (c *Chain) Append(v Vertex) {
	n := len(c.Points)
	if n == 0 {
		c.Points = append(c.Points, v)
		return
	}

	prev := c.Points[n-1]
	switch d := v.X - prev.X; {
	case d > HalfCircle:
		v.X -= FullCircle
	case d < -HalfCircle:
		v.X += FullCircle
	}
	if v.X < 0 {
		c.shift = true
	}

	if n >= 2 {
		before := c.Points[n-2]
		if (before.X == prev.X && prev.X == v.X) || (before.Y == prev.Y && prev.Y == v.Y) {
			c.Points[n-1] = v
			return
		}
	}
	c.Points = append(c.Points, v)
}

// AppendDegrees appends a vertex given in catalogue units: right ascension in
// hours and declination in degrees.
func (c *Chain) AppendDegrees(raHours, decDegrees float64) {
	c.Append(Vertex{X: RASeconds(raHours), Y: SPDMinutes(decDegrees)})
}

// Finish moves the whole chain one turn east when unwrapping pushed any
// vertex west of 0h, and returns the final vertices. Finish must be called
// once, after the last Append.
func (c *Chain) Finish() []Vertex {
	if c.shift {
		for i := range c.Points {
			c.Points[i].X += FullCircle
		}
		c.shift = false
	}
	return c.Points
}

// Len returns the number of vertices kept after simplification.
func (c *Chain) Len() int { return len(c.Points) }
