package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapBeam emits one beam: a rectangular cross-section swept for the full
// member length. Beams drawn in section views export as IFCCOLUMN, a
// modeling convention carried over from the drawing tool.
func (g *generator) mapBeam(s model.Shape) {
	length := math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
	if length < minLength {
		g.skip(s.Kind)
		return
	}

	b := g.b
	storey := g.resolveStorey(s)
	angle := math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)

	flangeWidth := s.FlangeWidth
	if flangeWidth <= 0 {
		flangeWidth = 100
	}
	depth := beamDepth(s, flangeWidth)

	placement := g.elementPlacement(storey, s.Start.X, s.Start.Y, 0, angle)

	profilePosition := b.Axis2Placement2D(b.CartesianPoint2D(0, 0), 0)
	profile := b.RectangleProfileDef(beamProfileName(s), profilePosition, flangeWidth, depth)
	extrudePos := b.Axis2Placement3D(b.CartesianPoint3D(0, 0, 0), 0, 0)
	extrudeDir := b.Direction3D(0, 0, 1)
	body := b.ExtrudedAreaSolid(profile, extrudePos, extrudeDir, length)
	bodyRep := b.ShapeRepresentation(g.context, "Body", "SweptSolid", []int{body})
	shape := b.ProductDefinitionShape([]int{bodyRep})

	name := beamProfileName(s)
	elementGUID := guid.Stable(s.ID, "")

	var element int
	if s.ViewMode == "section" {
		element = b.Column(elementGUID, g.ownerHistory, name, placement, shape, s.ID)
	} else {
		element = b.Beam(elementGUID, g.ownerHistory, name, placement, shape, s.ID)
	}

	g.recordBeamType(s, element)

	materialName := orDefault(s.Material, "Steel")
	g.associateMaterial(g.material(materialName), element)

	common := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_BeamCommon", []int{
		b.PropertySingleValue("Reference", ifc.Label(name)),
		b.PropertySingleValue("IsExternal", ifc.Boolean(false)),
		b.PropertySingleValue("LoadBearing", ifc.Boolean(true)),
		b.PropertySingleValue("Span", ifc.Real(length)),
	})
	g.attachPset(common, element)

	dimProps := []int{
		b.PropertySingleValue("ProfileType", ifc.Text(orDefault(s.ProfileType, "rectangle"))),
		b.PropertySingleValue("FlangeWidth", ifc.Real(flangeWidth)),
		b.PropertySingleValue("Depth", ifc.Real(depth)),
		b.PropertySingleValue("Material", ifc.Text(materialName)),
	}
	if s.PresetName != "" {
		dimProps = append(dimProps, b.PropertySingleValue("PresetName", ifc.Text(s.PresetName)))
	}
	dims := b.PropertySet(guid.Stable(s.ID, "dims"), g.ownerHistory, "Pset_BeamDimensions", dimProps)
	g.attachPset(dims, element)

	g.containElement(storey, element)
}

// beamDepth resolves the cross-section depth: an explicit depth or h
// parameter, else the flange width.
func beamDepth(s model.Shape, flangeWidth float64) float64 {
	if d, ok := s.Params["depth"]; ok && d > 0 {
		return d
	}
	if h, ok := s.Params["h"]; ok && h > 0 {
		return h
	}
	return flangeWidth
}

// beamProfileKey identifies the shared type object for a beam:
// presetId, else preset name, else the profile type.
func beamProfileKey(s model.Shape) string {
	if s.PresetID != "" {
		return s.PresetID
	}
	if s.PresetName != "" {
		return s.PresetName
	}
	return orDefault(s.ProfileType, "rectangle")
}

func beamProfileName(s model.Shape) string {
	if s.PresetName != "" {
		return s.PresetName
	}
	return orDefault(s.ProfileType, "Beam")
}

// recordBeamType resolves the shared IFCBEAMTYPE for the beam's profile
// key, creating it on first use, and records the element for the batched
// type relationship.
func (g *generator) recordBeamType(s model.Shape, element int) {
	key := beamProfileKey(s)
	typeID, ok := g.beamTypeByKey[key]
	if !ok {
		typeID = g.b.BeamType(guid.Stable("beamtype:"+key, "type"), g.ownerHistory, beamProfileName(s))
		g.beamTypeByKey[key] = typeID
		g.beamTypeOrder = append(g.beamTypeOrder, typeID)
	}
	g.beamTypeElems[typeID] = append(g.beamTypeElems[typeID], element)
}
