// Package dxf writes the minimal ASCII DXF subset the drawing tool
// exchanges with external CAD programs: LINE, CIRCLE, and ARC entities
// in a single ENTITIES section. Construction elements (walls, beams,
// slabs, piles) belong to the IFC exporter and are skipped here; DXF
// carries only the plain 2D geometry.
package dxf

import (
	"math"
	"strconv"
	"strings"

	"github.com/stratumcad/ifcgen/core/model"
)

// Result is the outcome of one DXF generation run.
type Result struct {
	// Content is the complete DXF file text.
	Content string

	// EntityCount is the number of DXF entities written.
	EntityCount int

	// Skipped counts shapes excluded per kind.
	Skipped map[model.Kind]int
}

// writer accumulates DXF tagged groups (code line, value line).
type writer struct {
	sb       strings.Builder
	entities int
}

func (w *writer) group(code int, value string) {
	w.sb.WriteString(strconv.Itoa(code))
	w.sb.WriteString("\n")
	w.sb.WriteString(value)
	w.sb.WriteString("\n")
}

func (w *writer) real(code int, f float64) {
	w.group(code, strconv.FormatFloat(f, 'f', -1, 64))
}

// line writes one LINE entity on layer 0.
func (w *writer) line(start, end model.Point) {
	w.group(0, "LINE")
	w.group(8, "0")
	w.real(10, start.X)
	w.real(20, start.Y)
	w.real(30, 0)
	w.real(11, end.X)
	w.real(21, end.Y)
	w.real(31, 0)
	w.entities++
}

// circle writes one CIRCLE entity on layer 0.
func (w *writer) circle(center model.Point, radius float64) {
	w.group(0, "CIRCLE")
	w.group(8, "0")
	w.real(10, center.X)
	w.real(20, center.Y)
	w.real(30, 0)
	w.real(40, radius)
	w.entities++
}

// arc writes one ARC entity. DXF measures angles in degrees
// counterclockwise.
func (w *writer) arc(center model.Point, radius, startAngle, endAngle float64) {
	w.group(0, "ARC")
	w.group(8, "0")
	w.real(10, center.X)
	w.real(20, center.Y)
	w.real(30, 0)
	w.real(40, radius)
	w.real(50, startAngle*180/math.Pi)
	w.real(51, endAngle*180/math.Pi)
	w.entities++
}

// Generate renders the drawable subset of shapes as an ASCII DXF file.
// Shapes outside the subset are skipped, never fatal, mirroring the IFC
// exporter's policy.
func Generate(shapes []model.Shape) *Result {
	w := &writer{}
	skipped := make(map[model.Kind]int)

	w.group(0, "SECTION")
	w.group(2, "ENTITIES")

	for _, s := range shapes {
		switch s.Kind {
		case model.KindLine:
			w.line(s.Start, s.End)

		case model.KindCircle:
			w.circle(s.Center, s.Radius)

		case model.KindArc:
			w.arc(s.Center, s.Radius, s.StartAngle, s.EndAngle)

		case model.KindPolyline:
			if len(s.Points) < 2 {
				skipped[s.Kind]++
				continue
			}
			for i := 1; i < len(s.Points); i++ {
				w.line(s.Points[i-1], s.Points[i])
			}

		case model.KindRectangle:
			corners := rectangleCorners(s)
			for i := range corners {
				w.line(corners[i], corners[(i+1)%len(corners)])
			}

		default:
			skipped[s.Kind]++
		}
	}

	w.group(0, "ENDSEC")
	w.group(0, "EOF")

	return &Result{
		Content:     w.sb.String(),
		EntityCount: w.entities,
		Skipped:     skipped,
	}
}

// rectangleCorners returns the four corners of a rectangle rotated about
// its position.
func rectangleCorners(s model.Shape) []model.Point {
	sin, cos := math.Sincos(s.Rotation)
	local := []model.Point{
		{X: 0, Y: 0},
		{X: s.Width, Y: 0},
		{X: s.Width, Y: s.Height},
		{X: 0, Y: s.Height},
	}
	corners := make([]model.Point, len(local))
	for i, p := range local {
		corners[i] = model.Point{
			X: s.Position.X + p.X*cos - p.Y*sin,
			Y: s.Position.Y + p.X*sin + p.Y*cos,
		}
	}
	return corners
}
