package ifc

import "github.com/stratumcad/ifcgen/core/step"

// Project creates the single IFCPROJECT root entity.
func (b *Builder) Project(globalID string, ownerHistory int, name string, contexts []int, units int) int {
	return b.append("IFCPROJECT",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null, step.Null, step.Null, step.Null,
		step.EncodeRefList(contexts),
		step.EncodeRef(units),
	)
}

// Site creates an IFCSITE.
func (b *Builder) Site(globalID string, ownerHistory int, name string, placement int) int {
	return b.append("IFCSITE",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeRef(placement),
		step.Null, step.Null,
		step.EncodeEnum("ELEMENT"),
		step.Null, step.Null, step.Null, step.Null, step.Null,
	)
}

// Building creates an IFCBUILDING.
func (b *Builder) Building(globalID string, ownerHistory int, name string, placement int) int {
	return b.append("IFCBUILDING",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeRef(placement),
		step.Null, step.Null,
		step.EncodeEnum("ELEMENT"),
		step.Null, step.Null, step.Null,
	)
}

// BuildingStorey creates an IFCBUILDINGSTOREY at the given elevation.
func (b *Builder) BuildingStorey(globalID string, ownerHistory int, name string, placement int, elevation float64) int {
	return b.append("IFCBUILDINGSTOREY",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeRef(placement),
		step.Null, step.Null,
		step.EncodeEnum("ELEMENT"),
		step.EncodeReal(elevation),
	)
}

// RelAggregates creates an IFCRELAGGREGATES decomposing relating into
// the related objects (project→site→building→storey spine).
func (b *Builder) RelAggregates(globalID string, ownerHistory int, relating int, related []int) int {
	return b.append("IFCRELAGGREGATES",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.Null, step.Null,
		step.EncodeRef(relating),
		step.EncodeRefList(related),
	)
}

// RelContainedInSpatialStructure creates one batched
// IFCRELCONTAINEDINSPATIALSTRUCTURE placing elements into a storey.
func (b *Builder) RelContainedInSpatialStructure(globalID string, ownerHistory int, elements []int, structure int) int {
	return b.append("IFCRELCONTAINEDINSPATIALSTRUCTURE",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.Null, step.Null,
		step.EncodeRefList(elements),
		step.EncodeRef(structure),
	)
}
