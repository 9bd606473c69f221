package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
)

// mapSlab emits one slab: its boundary loop as an arbitrary closed
// profile extruded by the slab thickness, placed at the slab elevation.
func (g *generator) mapSlab(s model.Shape) {
	if len(s.Points) < 3 {
		g.skip(s.Kind)
		return
	}

	b := g.b
	storey := g.resolveStorey(s)
	thickness := s.Thickness
	if thickness <= 0 {
		thickness = 200
	}

	placement := g.elementPlacement(storey, 0, 0, s.Elevation, 0)

	// Closed boundary loop: repeat the first point reference to close
	// the polyline.
	pointIDs := make([]int, 0, len(s.Points)+1)
	for _, p := range s.Points {
		pointIDs = append(pointIDs, b.CartesianPoint2D(p.X, p.Y))
	}
	pointIDs = append(pointIDs, pointIDs[0])
	boundary := b.Polyline(pointIDs)
	profile := b.ArbitraryClosedProfileDef("", boundary)

	extrudePos := b.Axis2Placement3D(b.CartesianPoint3D(0, 0, 0), 0, 0)
	extrudeDir := b.Direction3D(0, 0, 1)
	body := b.ExtrudedAreaSolid(profile, extrudePos, extrudeDir, thickness)
	bodyRep := b.ShapeRepresentation(g.context, "Body", "SweptSolid", []int{body})
	shape := b.ProductDefinitionShape([]int{bodyRep})

	slabType := g.matchSlabType(thickness, s.Material)
	name := "Slab"
	if slabType != nil {
		name = slabType.Name
	}

	slab := b.Slab(guid.Stable(s.ID, ""), g.ownerHistory, name, placement, shape, s.ID)

	g.emitSlabMaterialUsage(s, slab, thickness, name)

	common := b.PropertySet(guid.Stable(s.ID, "pset"), g.ownerHistory, "Pset_SlabCommon", []int{
		b.PropertySingleValue("Reference", ifc.Label(name)),
		b.PropertySingleValue("IsExternal", ifc.Boolean(false)),
		b.PropertySingleValue("LoadBearing", ifc.Boolean(true)),
	})
	g.attachPset(common, slab)

	area := polygonArea(s.Points)     // mm2
	grossArea := area / 1e6           // m2
	grossVolume := area * thickness / 1e9 // m3

	quantities := b.ElementQuantity(guid.Stable(s.ID, "qto"), g.ownerHistory, "Qto_SlabBaseQuantities", []int{
		b.QuantityLength("Width", thickness),
		b.QuantityLength("Perimeter", polygonPerimeter(s.Points)),
		b.QuantityArea("GrossArea", grossArea),
		b.QuantityVolume("GrossVolume", grossVolume),
	})
	g.attachPset(quantities, slab)

	if slabType != nil {
		if _, seen := g.slabTypeElems[slabType.ID]; !seen {
			g.slabTypeOrder = append(g.slabTypeOrder, slabType.ID)
		}
		g.slabTypeElems[slabType.ID] = append(g.slabTypeElems[slabType.ID], slab)
	}
	g.containElement(storey, slab)
}

// emitSlabMaterialUsage mirrors the wall usage with a vertical layer-set
// axis.
func (g *generator) emitSlabMaterialUsage(s model.Shape, slab int, thickness float64, typeName string) {
	b := g.b
	materialName := orDefault(s.Material, "Concrete")

	materialID := g.material(materialName)
	layer := b.MaterialLayer(materialID, thickness, materialName)
	layerSet := b.MaterialLayerSet([]int{layer}, typeName)
	usage := b.MaterialLayerSetUsage(layerSet, "AXIS3", "NEGATIVE", 0)
	b.RelAssociatesMaterial(guid.Random(), g.ownerHistory, []int{slab}, usage)
}

// matchSlabType finds a catalog slab type with the same thickness and
// material, for type-relationship batching. No match is not an error;
// the slab simply stays ungrouped.
func (g *generator) matchSlabType(thickness float64, material string) *model.SlabType {
	for i := range g.doc.SlabTypes {
		st := &g.doc.SlabTypes[i]
		if st.Thickness == thickness && st.Material == material {
			return st
		}
	}
	return nil
}

// polygonArea computes the unsigned shoelace area of a point loop in
// drawing units squared.
func polygonArea(points []model.Point) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return math.Abs(sum) / 2
}

// polygonPerimeter sums the closed loop's edge lengths.
func polygonPerimeter(points []model.Point) float64 {
	var sum float64
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += math.Hypot(points[j].X-points[i].X, points[j].Y-points[i].Y)
	}
	return sum
}
