package export

import (
	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/model"
)

// aggregate runs after the shape loop: it assembles the plan grid,
// then emits the minimal set of relationship entities expressing the
// storey, type, material, and property-set groupings accumulated by the
// mappers. Relationship GUIDs are random; the relationships have no
// natural identity of their own.
func (g *generator) aggregate() {
	g.emitGrid()
	g.emitContainment()
	g.emitTypeRelations()
	g.emitMaterialRelations()
	g.emitPsetRelations()
}

// emitContainment emits one batched containment relationship per storey
// that received at least one element.
func (g *generator) emitContainment() {
	for _, storey := range g.storeyOrder {
		elements := g.storeyElems[storey]
		if len(elements) == 0 {
			continue
		}
		g.b.RelContainedInSpatialStructure(guid.Random(), g.ownerHistory, elements, storey)
	}
}

// emitTypeRelations emits one type-definition relationship per non-empty
// wall, slab, and beam type group. Wall and slab type objects are
// created here from the catalogs; beam types were created during the
// shape loop because beams sharing a profile share one type object.
func (g *generator) emitTypeRelations() {
	b := g.b

	for _, typeID := range g.wallTypeOrder {
		elements := g.wallTypeElems[typeID]
		wt := g.findWallType(typeID)
		if wt == nil || len(elements) == 0 {
			continue
		}
		typeEntity := b.WallType(guid.Stable(typeID, "type"), g.ownerHistory, wt.Name)
		b.RelDefinesByType(guid.Random(), g.ownerHistory, elements, typeEntity)
	}

	for _, typeID := range g.slabTypeOrder {
		elements := g.slabTypeElems[typeID]
		st := g.findSlabType(typeID)
		if st == nil || len(elements) == 0 {
			continue
		}
		typeEntity := b.SlabType(guid.Stable(typeID, "type"), g.ownerHistory, st.Name)
		b.RelDefinesByType(guid.Random(), g.ownerHistory, elements, typeEntity)
	}

	for _, typeEntity := range g.beamTypeOrder {
		elements := g.beamTypeElems[typeEntity]
		if len(elements) == 0 {
			continue
		}
		b.RelDefinesByType(guid.Random(), g.ownerHistory, elements, typeEntity)
	}
}

// emitMaterialRelations emits one association per distinct material
// covering every element that shares it. Layer-set usages are not
// grouped here; they carry element-specific offsets and were emitted one
// per element during the shape loop.
func (g *generator) emitMaterialRelations() {
	for _, materialID := range g.materialOrder {
		elements := g.materialElems[materialID]
		if len(elements) == 0 {
			continue
		}
		g.b.RelAssociatesMaterial(guid.Random(), g.ownerHistory, elements, materialID)
	}
}

// emitPsetRelations emits one definition-by-properties relationship per
// accumulated property or quantity set.
func (g *generator) emitPsetRelations() {
	for _, att := range g.psets {
		g.b.RelDefinesByProperties(guid.Random(), g.ownerHistory, att.objects, att.set)
	}
}

func (g *generator) findWallType(id string) *model.WallType {
	for i := range g.doc.WallTypes {
		if g.doc.WallTypes[i].ID == id {
			return &g.doc.WallTypes[i]
		}
	}
	return nil
}

func (g *generator) findSlabType(id string) *model.SlabType {
	for i := range g.doc.SlabTypes {
		if g.doc.SlabTypes[i].ID == id {
			return &g.doc.SlabTypes[i]
		}
	}
	return nil
}
