// Package pie lays out weighted slices as circular sectors for pie charts.
package pie

import (
	"fmt"
	"math"
	"strings"
)

// Slice is one weighted category fed to Layout.
type Slice struct {
	Label string
	Value float64
	Color string // hex, e.g. "#6366f1"
}

// Point is a position in chart coordinates.
type Point struct {
	X float64
	Y float64
}

// Circle describes where segments are placed.
// Offset is added to every angle before converting to radians.
type Circle struct {
	Center Point
	Radius float64
	Offset float64
}

// DefaultCircle matches a 100x100 viewBox with 0° pointing up.
// Angles grow clockwise because SVG's y axis points down.
var DefaultCircle = Circle{
	Center: Point{X: 50, Y: 50},
	Radius: 45,
	Offset: -90,
}

// Segment is the geometry of one rendered slice.
type Segment struct {
	Label      string
	Color      string
	Value      float64
	StartAngle float64
	EndAngle   float64
	LargeArc   bool
	Start      Point
	End        Point
}

// Span returns the angular width of the segment in degrees.
func (s Segment) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// PointAt returns the point on c at the given angle in degrees.
func (c Circle) PointAt(angle float64) Point {
	rad := (angle + c.Offset) * math.Pi / 180
	return Point{
		X: c.Center.X + c.Radius*math.Cos(rad),
		Y: c.Center.Y + c.Radius*math.Sin(rad),
	}
}

// Layout converts slices into segments in a single ordered sweep.
// Slices with a zero (or negative, or NaN) value are skipped. When nothing
// has weight the result is nil and the caller draws a placeholder.
func Layout(slices []Slice, c Circle) []Segment {
	total := 0.0
	for _, s := range slices {
		total += weight(s.Value)
	}
	if total == 0 {
		return nil
	}

	segs := make([]Segment, 0, len(slices))
	cumulative := 0.0
	for _, s := range slices {
		v := weight(s.Value)
		if v == 0 {
			continue
		}
		start := cumulative
		end := cumulative + v/total*360

		segs = append(segs, Segment{
			Label:      s.Label,
			Color:      s.Color,
			Value:      v,
			StartAngle: start,
			EndAngle:   end,
			LargeArc:   end-start > 180,
			Start:      c.PointAt(start),
			End:        c.PointAt(end),
		})
		cumulative = end
	}
	return segs
}

func weight(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// fullCircleEps is how close to 360° a span must be to draw as a full disc.
const fullCircleEps = 1e-9

// Path returns the SVG path data for the segment on c.
func (s Segment) Path(c Circle) string {
	cx, cy, r := c.Center.X, c.Center.Y, c.Radius

	// An arc whose endpoints coincide renders nothing, so a full slice is
	// drawn as two half arcs.
	if s.Span() >= 360-fullCircleEps {
		mid := c.PointAt(s.StartAngle + 180)
		return fmt.Sprintf("M %s,%s L %s,%s A %s,%s 0 1 1 %s,%s A %s,%s 0 1 1 %s,%s Z",
			num(cx), num(cy),
			num(s.Start.X), num(s.Start.Y),
			num(r), num(r), num(mid.X), num(mid.Y),
			num(r), num(r), num(s.End.X), num(s.End.Y),
		)
	}

	large := 0
	if s.LargeArc {
		large = 1
	}
	return fmt.Sprintf("M %s,%s L %s,%s A %s,%s 0 %d 1 %s,%s Z",
		num(cx), num(cy),
		num(s.Start.X), num(s.Start.Y),
		num(r), num(r), large,
		num(s.End.X), num(s.End.Y),
	)
}

// At returns the segment covering angle (degrees, 0 ≤ angle < 360).
func At(segs []Segment, angle float64) (Segment, bool) {
	if len(segs) == 0 {
		return Segment{}, false
	}
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	for _, s := range segs {
		if angle >= s.StartAngle && angle < s.EndAngle {
			return s, true
		}
	}
	// Rounding can leave the last segment ending a hair below 360.
	return segs[len(segs)-1], true
}

// SVGOptions controls RenderSVG output.
type SVGOptions struct {
	Stroke      string // slice border, "#1e293b" on dark backgrounds
	StrokeWidth float64
	Placeholder string // fill for the empty chart
	Size        int    // width/height attributes in px, 0 omits them
}

// DefaultSVGOptions returns the dark-theme rendering options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Stroke:      "#1e293b",
		StrokeWidth: 1,
		Placeholder: "#e2e8f0",
	}
}

// RenderSVG renders segments as a standalone SVG document.
func RenderSVG(segs []Segment, c Circle, opts SVGOptions) string {
	var b strings.Builder

	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"`)
	if opts.Size > 0 {
		fmt.Fprintf(&b, ` width="%d" height="%d"`, opts.Size, opts.Size)
	}
	b.WriteString(">\n")

	if len(segs) == 0 {
		fmt.Fprintf(&b, `  <circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
			num(c.Center.X), num(c.Center.Y), num(c.Radius), opts.Placeholder)
	}
	for _, s := range segs {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" stroke="%s" stroke-width="%s"><title>%s</title></path>`+"\n",
			s.Path(c), s.Color, opts.Stroke, num(opts.StrokeWidth), escape(s.Label))
	}

	b.WriteString("</svg>\n")
	return b.String()
}

// num prints a coordinate with enough precision and no trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.4f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

var svgEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string {
	return svgEscaper.Replace(s)
}
