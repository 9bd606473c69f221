package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapPile emits one pile: a circular profile extruded for the default
// pile length, placed at the pile's plan position. A missing diameter
// falls back to the configured default rather than skipping the shape.
func (g *generator) mapPile(s model.Shape) {
	b := g.b
	storey := g.resolveStorey(s)

	diameter := s.Diameter
	if diameter <= 0 {
		diameter = g.opts.PileDiameter
	}
	radius := diameter / 2
	length := g.opts.PileLength

	position := s.Position
	if position == (model.Point{}) {
		position = s.Center
	}

	placement := g.elementPlacement(storey, position.X, position.Y, 0, 0)

	profilePosition := b.Axis2Placement2D(b.CartesianPoint2D(0, 0), 0)
	profile := b.CircleProfileDef("", profilePosition, radius)
	extrudePos := b.Axis2Placement3D(b.CartesianPoint3D(0, 0, 0), 0, 0)
	extrudeDir := b.Direction3D(0, 0, -1)
	body := b.ExtrudedAreaSolid(profile, extrudePos, extrudeDir, length)
	bodyRep := b.ShapeRepresentation(g.context, "Body", "SweptSolid", []int{body})
	shape := b.ProductDefinitionShape([]int{bodyRep})

	pile := b.Pile(guid.Stable(s.ID, ""), g.ownerHistory, "Pile", placement, shape, s.ID)

	// Piles are concrete by convention.
	g.associateMaterial(g.material("Concrete"), pile)

	common := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_PileCommon", []int{
		b.PropertySingleValue("Reference", ifc.Label("Pile")),
		b.PropertySingleValue("LoadBearing", ifc.Boolean(true)),
	})
	g.attachPset(common, pile)

	dims := b.PropertySet(guid.Stable(s.ID, "dims"), g.ownerHistory, "Pset_PileDimensions", []int{
		b.PropertySingleValue("Diameter", ifc.Real(diameter)),
		b.PropertySingleValue("Length", ifc.Real(length)),
		b.PropertySingleValue("CrossSectionArea", ifc.Real(math.Pi*radius*radius)),
	})
	g.attachPset(dims, pile)

	g.containElement(storey, pile)
}
