package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapAnnotation emits one IFCANNOTATION for a simple drawing shape:
// line, arc, circle, polyline, rectangle, dimension, text, or section
// callout. Each carries a 2D curve representation matching its geometry
// plus a property set recording the shape type and type-specific fields.
func (g *generator) mapAnnotation(s model.Shape) {
	b := g.b
	storey := g.resolveStorey(s)

	curve, ok := g.annotationCurve(s)
	if !ok {
		g.skip(s.Kind)
		return
	}

	rep := b.ShapeRepresentation(g.context, "Annotation", "Annotation2D", []int{curve})
	shape := b.ProductDefinitionShape([]int{rep})
	placement := g.elementPlacement(storey, 0, 0, 0, 0)

	annotation := b.Annotation(guid.Stable(s.ID, ""), g.ownerHistory, annotationName(s.Kind), placement, shape)

	props := []int{b.PropertySingleValue("ShapeType", ifc.Text(string(s.Kind)))}
	props = append(props, g.annotationProps(s)...)
	pset := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_Annotation", props)
	g.attachPset(pset, annotation)

	g.containElement(storey, annotation)
}

// annotationCurve builds the 2D curve for the shape's geometry. ok is
// false for degenerate geometry (e.g. a polyline with one point).
func (g *generator) annotationCurve(s model.Shape) (int, bool) {
	b := g.b

	switch s.Kind {
	case model.KindLine, model.KindDimension, model.KindSectionCallout:
		start := b.CartesianPoint2D(s.Start.X, s.Start.Y)
		end := b.CartesianPoint2D(s.End.X, s.End.Y)
		return b.Polyline([]int{start, end}), true

	case model.KindArc:
		center := b.CartesianPoint2D(s.Center.X, s.Center.Y)
		position := b.Axis2Placement2D(center, 0)
		circle := b.Circle(position, s.Radius)
		// Trimmed by start/end angle in radians.
		return b.TrimmedCurve(circle, s.StartAngle, s.EndAngle, true), true

	case model.KindCircle:
		center := b.CartesianPoint2D(s.Center.X, s.Center.Y)
		position := b.Axis2Placement2D(center, 0)
		return b.Circle(position, s.Radius), true

	case model.KindPolyline:
		if len(s.Points) < 2 {
			return 0, false
		}
		ids := make([]int, len(s.Points))
		for i, p := range s.Points {
			ids[i] = b.CartesianPoint2D(p.X, p.Y)
		}
		return b.Polyline(ids), true

	case model.KindRectangle:
		corners := rectangleCorners(s)
		ids := make([]int, 0, len(corners)+1)
		for _, p := range corners {
			ids = append(ids, b.CartesianPoint2D(p.X, p.Y))
		}
		ids = append(ids, ids[0])
		return b.Polyline(ids), true

	case model.KindText:
		// Texts anchor at their insertion point with a degenerate
		// zero-length polyline.
		p1 := b.CartesianPoint2D(s.Position.X, s.Position.Y)
		p2 := b.CartesianPoint2D(s.Position.X, s.Position.Y)
		return b.Polyline([]int{p1, p2}), true
	}
	return 0, false
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

// annotationProps returns the kind-specific property set entries.
func (g *generator) annotationProps(s model.Shape) []int {
	b := g.b
	var props []int

	switch s.Kind {
	case model.KindArc, model.KindCircle:
		props = append(props, b.PropertySingleValue("Radius", ifc.Real(s.Radius)))

	case model.KindDimension:
		props = append(props, b.PropertySingleValue("Value", ifc.Text(s.Value)))
		if s.Prefix != "" {
			props = append(props, b.PropertySingleValue("Prefix", ifc.Text(s.Prefix)))
		}
		if s.Suffix != "" {
			props = append(props, b.PropertySingleValue("Suffix", ifc.Text(s.Suffix)))
		}

	case model.KindText:
		props = append(props, b.PropertySingleValue("Content", ifc.Text(s.Content)))
		if s.Font != "" {
			props = append(props, b.PropertySingleValue("Font", ifc.Text(s.Font)))
		}

	case model.KindSectionCallout:
		props = append(props, b.PropertySingleValue("Label", ifc.Text(s.Label)))
		if s.CalloutType != "" {
			props = append(props, b.PropertySingleValue("CalloutType", ifc.Text(s.CalloutType)))
		}
		if d, ok := g.drawingFor(s); ok && d.Kind == model.DrawingSection {
			props = append(props, b.PropertySingleValue("DrawingType", ifc.Text("section")))
		}
	}
	return props
}

func annotationName(kind model.Kind) string {
	switch kind {
	case model.KindLine:
		return "Line"
	case model.KindArc:
		return "Arc"
	case model.KindCircle:
		return "Circle"
	case model.KindPolyline:
		return "Polyline"
	case model.KindRectangle:
		return "Rectangle"
	case model.KindDimension:
		return "Dimension"
	case model.KindText:
		return "Text"
	case model.KindSectionCallout:
		return "Section Callout"
	}
	return "Annotation"
}
