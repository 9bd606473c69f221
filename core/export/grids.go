package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapGridline accumulates one gridline toward the single plan grid
// emitted after the shape loop. Gridlines copied into section drawings
// are derived data and are not re-exported.
func (g *generator) mapGridline(s model.Shape) {
	if !g.isPlanShape(s) {
		g.skip(s.Kind)
		return
	}

	b := g.b
	tag := orDefault(s.Label, s.ID)
	start := b.CartesianPoint3D(s.Start.X, s.Start.Y, 0)
	end := b.CartesianPoint3D(s.End.X, s.End.Y, 0)
	curve := b.Polyline([]int{start, end})
	axis := b.GridAxis(tag, curve, true)

	record := gridAxisRecord{axis: axis, curve: curve, tag: tag}
	// Classify by dominant direction: U runs along X, V along Y.
	if math.Abs(s.End.X-s.Start.X) >= math.Abs(s.End.Y-s.Start.Y) {
		g.uAxes = append(g.uAxes, record)
	} else {
		g.vAxes = append(g.vAxes, record)
	}
	g.gridCurves = append(g.gridCurves, curve)

	if g.gridStorey == 0 {
		g.gridStorey = g.resolveStorey(s)
	}
}

// emitGrid assembles the single IFCGRID from the accumulated axes. The
// schema requires both axis lists to be non-empty, so when one is empty
// an axis is borrowed from the other list.
func (g *generator) emitGrid() {
	if len(g.uAxes) == 0 && len(g.vAxes) == 0 {
		return
	}

	if len(g.uAxes) == 0 {
		g.uAxes = append(g.uAxes, g.borrowAxis(&g.vAxes))
	}
	if len(g.vAxes) == 0 {
		g.vAxes = append(g.vAxes, g.borrowAxis(&g.uAxes))
	}

	b := g.b
	storey := g.gridStorey
	if storey == 0 {
		storey = g.defaultStorey
	}

	// Footprint representation so viewers render the grid lines.
	curveSet := b.GeometricCurveSet(g.gridCurves)
	footprint := b.ShapeRepresentation(g.context, "FootPrint", "GeometricCurveSet", []int{curveSet})
	shape := b.ProductDefinitionShape([]int{footprint})

	placement := g.elementPlacement(storey, 0, 0, 0, 0)
	grid := b.Grid(
		guid.Stable("grid:plan", ""),
		g.ownerHistory,
		"Plan Grid",
		placement,
		shape,
		axisIDs(g.uAxes),
		axisIDs(g.vAxes),
	)
	g.containElement(storey, grid)
}

// borrowAxis takes one axis from donor for the empty list. A donor with
// several axes gives up its last one; a donor with a single axis must
// stay non-empty itself, so a second IFCGRIDAXIS is created over the
// same curve instead.
func (g *generator) borrowAxis(donor *[]gridAxisRecord) gridAxisRecord {
	last := (*donor)[len(*donor)-1]
	if len(*donor) > 1 {
		*donor = (*donor)[:len(*donor)-1]
		return last
	}
	axis := g.b.GridAxis(last.tag, last.curve, true)
	return gridAxisRecord{axis: axis, curve: last.curve, tag: last.tag}
}

func axisIDs(records []gridAxisRecord) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.axis
	}
	return ids
}

// mapLevel emits a level marker as an annotation. Levels were already
// consumed to build the storey hierarchy; only plan-drawing levels are
// re-exported, as annotations.
func (g *generator) mapLevel(s model.Shape) {
	if !g.isPlanShape(s) {
		g.skip(s.Kind)
		return
	}

	b := g.b
	storey := g.resolveStorey(s)

	start := b.CartesianPoint2D(s.Start.X, s.Start.Y)
	end := b.CartesianPoint2D(s.End.X, s.End.Y)
	curve := b.Polyline([]int{start, end})
	rep := b.ShapeRepresentation(g.context, "Annotation", "Annotation2D", []int{curve})
	shape := b.ProductDefinitionShape([]int{rep})

	placement := g.elementPlacement(storey, 0, 0, 0, 0)
	annotation := b.Annotation(guid.Stable(s.ID, ""), g.ownerHistory, orDefault(s.Label, "Level"), placement, shape)

	props := []int{
		b.PropertySingleValue("ShapeType", ifc.Text("level")),
		b.PropertySingleValue("Elevation", ifc.Real(s.Elevation)),
		b.PropertySingleValue("Label", ifc.Text(s.Label)),
	}
	if s.Description != "" {
		props = append(props, b.PropertySingleValue("Description", ifc.Text(s.Description)))
	}
	pset := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_Annotation", props)
	g.attachPset(pset, annotation)

	g.containElement(storey, annotation)
}
