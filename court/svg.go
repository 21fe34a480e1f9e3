package court

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVGCanvas adapts an svgo drawing to the Canvas contract. The court's y
// axis points up while SVG's points down, so callers usually wrap the
// drawing in a flip transform (or accept the mirrored rendering, which is
// symmetric for everything but the center circle).
type SVGCanvas struct {
	svg *svg.SVG
}

func NewSVGCanvas(drawing *svg.SVG) *SVGCanvas {
	return &SVGCanvas{svg: drawing}
}

func (c *SVGCanvas) Circle(cx, cy, r float64, s Style) {
	c.svg.Circle(round(cx), round(cy), round(r), s.svgStyle())
}

func (c *SVGCanvas) Rect(x, y, w, h float64, s Style) {
	c.svg.Rect(round(x), round(y), round(w), round(h), s.svgStyle())
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	c.svg.Line(round(x1), round(y1), round(x2), round(y2), s.svgStyle())
}

func (c *SVGCanvas) Arc(cx, cy, rx, ry, theta1, theta2 float64, s Style) {
	sx := cx + rx*math.Cos(radians(theta1))
	sy := cy + ry*math.Sin(radians(theta1))
	ex := cx + rx*math.Cos(radians(theta2))
	ey := cy + ry*math.Sin(radians(theta2))
	large := math.Abs(theta2-theta1) > 180

	c.svg.Arc(round(sx), round(sy), round(rx), round(ry), 0, large, false,
		round(ex), round(ey), s.svgStyle())
}

func (s Style) svgStyle() string {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", s.Color, s.Width)
	if s.Dashed {
		style += ";stroke-dasharray:10,6"
	}
	return style
}

func round(v float64) int {
	return int(math.Round(v))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
