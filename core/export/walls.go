package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapWall emits the entity subgraph for one wall: axis and body
// representations, the IFCWALL, a material-layer-set usage, and the
// common plus base-quantity property sets.
func (g *generator) mapWall(s model.Shape) {
	length := math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
	if length < minLength {
		g.skip(s.Kind)
		return
	}

	b := g.b
	storey := g.resolveStorey(s)
	angle := math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
	thickness := s.Thickness
	if thickness <= 0 {
		thickness = g.wallThicknessFromType(s.WallTypeID)
	}
	height := g.opts.WallHeight

	placement := g.elementPlacement(storey, s.Start.X, s.Start.Y, 0, angle)

	// Axis: a 2-point polyline along local X.
	axisStart := b.CartesianPoint2D(0, 0)
	axisEnd := b.CartesianPoint2D(length, 0)
	axisCurve := b.Polyline([]int{axisStart, axisEnd})
	axisRep := b.ShapeRepresentation(g.context, "Axis", "Curve2D", []int{axisCurve})

	// Body: a rectangle profile centered so it spans
	// [0,length] x [-t/2,t/2], extruded along local Z.
	profileCenter := b.CartesianPoint2D(length/2, 0)
	profilePosition := b.Axis2Placement2D(profileCenter, 0)
	profile := b.RectangleProfileDef("", profilePosition, length, thickness)
	extrudePos := b.Axis2Placement3D(b.CartesianPoint3D(0, 0, 0), 0, 0)
	extrudeDir := b.Direction3D(0, 0, 1)
	body := b.ExtrudedAreaSolid(profile, extrudePos, extrudeDir, height)
	bodyRep := b.ShapeRepresentation(g.context, "Body", "SweptSolid", []int{body})

	shape := b.ProductDefinitionShape([]int{axisRep, bodyRep})

	name := g.wallName(s.WallTypeID)
	wall := b.Wall(guid.Stable(s.ID, ""), g.ownerHistory, name, placement, shape, s.ID)

	g.emitWallMaterialUsage(s, wall, thickness, name)
	g.emitWallPsets(s, wall, name, length, thickness, height)

	if s.WallTypeID != "" {
		if _, seen := g.wallTypeElems[s.WallTypeID]; !seen {
			g.wallTypeOrder = append(g.wallTypeOrder, s.WallTypeID)
		}
		g.wallTypeElems[s.WallTypeID] = append(g.wallTypeElems[s.WallTypeID], wall)
	}
	g.containElement(storey, wall)
}

// emitWallMaterialUsage creates the single-layer material set and its
// per-element usage. The offset from the wall's reference line depends
// on the justification: center -t/2, left -t, right 0.
func (g *generator) emitWallMaterialUsage(s model.Shape, wall int, thickness float64, typeName string) {
	b := g.b
	materialName := s.Material
	if materialName == "" {
		materialName = g.wallMaterialFromType(s.WallTypeID)
	}

	materialID := g.material(materialName)
	layer := b.MaterialLayer(materialID, thickness, materialName)
	layerSet := b.MaterialLayerSet([]int{layer}, typeName)

	var offset float64
	switch s.Justification {
	case "left":
		offset = -thickness
	case "right":
		offset = 0
	default: // center
		offset = -thickness / 2
	}

	usage := b.MaterialLayerSetUsage(layerSet, "AXIS2", "POSITIVE", offset)
	// Usage associations carry an element-specific offset, so they are
	// one per element rather than batched.
	b.RelAssociatesMaterial(guid.Random(), g.ownerHistory, []int{wall}, usage)
}

// emitWallPsets attaches Pset_WallCommon and the base quantities derived
// from the wall geometry.
func (g *generator) emitWallPsets(s model.Shape, wall int, typeName string, length, thickness, height float64) {
	b := g.b

	common := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_WallCommon", []int{
		b.PropertySingleValue("Reference", ifc.Label(typeName)),
		b.PropertySingleValue("IsExternal", ifc.Boolean(false)),
		b.PropertySingleValue("LoadBearing", ifc.Boolean(true)),
	})
	g.attachPset(common, wall)

	// Volumes and areas leave drawing units: m3 and m2 per the file's
	// unit assignment.
	volume := length * thickness * height / 1e9
	sideArea := length * height / 1e6

	quantities := b.ElementQuantity(guid.Stable(s.ID, "qto"), g.ownerHistory, "Qto_WallBaseQuantities", []int{
		b.QuantityLength("Length", length),
		b.QuantityLength("Width", thickness),
		b.QuantityLength("Height", height),
		b.QuantityVolume("GrossVolume", volume),
		b.QuantityArea("GrossSideArea", sideArea),
	})
	g.attachPset(quantities, wall)
}

// wallName resolves a display name from the wall type catalog.
func (g *generator) wallName(typeID string) string {
	for _, wt := range g.doc.WallTypes {
		if wt.ID == typeID {
			return wt.Name
		}
	}
	return "Wall"
}

func (g *generator) wallThicknessFromType(typeID string) float64 {
	for _, wt := range g.doc.WallTypes {
		if wt.ID == typeID && wt.Thickness > 0 {
			return wt.Thickness
		}
	}
	return 200
}

func (g *generator) wallMaterialFromType(typeID string) string {
	for _, wt := range g.doc.WallTypes {
		if wt.ID == typeID && wt.Material != "" {
			return wt.Material
		}
	}
	return "Concrete"
}
