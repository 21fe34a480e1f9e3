// Package court renders half-court line geometry for shot-chart plots.
// Coordinates live on the original 500x470 grid (tenths of feet) with the
// hoop centered at x=250 near the baseline, matching the reference frame of
// the shot records.
package court

// Style carries the stroke attributes for one court element.
type Style struct {
	Color  string
	Width  float64
	Dashed bool
}

// Canvas is the drawing-surface contract. Implementations receive court
// coordinates; any axis flipping or scaling happens inside the canvas.
type Canvas interface {
	Circle(cx, cy, r float64, s Style)
	Rect(x, y, w, h float64, s Style)
	Line(x1, y1, x2, y2 float64, s Style)
	// Arc draws the elliptical arc centered at (cx, cy) with radii rx and
	// ry between theta1 and theta2, in degrees counter-clockwise from the
	// positive x axis.
	Arc(cx, cy, rx, ry, theta1, theta2 float64, s Style)
}

// Options control the line work: stroke color, stroke width and whether the
// outer boundary (baseline, sidelines, half-court line) is drawn.
type Options struct {
	Color      string
	LineWidth  float64
	OuterLines bool
}

const (
	defaultColor     = "black"
	defaultLineWidth = 2
)

// Draw emits the half-court elements onto c and returns the same canvas
// handle annotated with the line geometry.
func Draw(c Canvas, opts Options) Canvas {
	s := Style{Color: opts.Color, Width: opts.LineWidth}
	if s.Color == "" {
		s.Color = defaultColor
	}
	if s.Width <= 0 {
		s.Width = defaultLineWidth
	}
	dashed := s
	dashed.Dashed = true

	// Hoop and backboard.
	c.Circle(250, 47.5, 7.5, s)
	c.Rect(220, 39, 60, 1, s)

	// The paint: outer box (16ft wide) and inner box (12ft wide).
	c.Rect(170, 0, 160, 190, s)
	c.Rect(190, 0, 120, 190, s)

	// Free-throw circle: solid top half, dashed bottom half.
	c.Arc(250, 190, 60, 60, 0, 180, s)
	c.Arc(250, 190, 60, 60, 180, 360, dashed)

	// Restricted area, 4ft radius from the center of the hoop.
	c.Arc(250, 47.5, 40, 40, 0, 180, s)

	// Three-point line: 14ft corner segments plus the arc 23'9" from the hoop.
	c.Line(30, 0, 30, 140, s)
	c.Line(470, 0, 470, 140, s)
	c.Arc(250, 47.5, 237.5, 237.5, 22, 158, s)

	// Center court circle halves.
	c.Arc(250, 470, 60, 60, 180, 360, s)
	c.Arc(250, 470, 20, 20, 180, 360, s)

	if opts.OuterLines {
		c.Rect(0, 0, 500, 470, s)
	}

	return c
}
