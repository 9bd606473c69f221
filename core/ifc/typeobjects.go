package ifc

import "github.com/stratumcad/ifcgen/core/step"

// typeAttrs formats the nine attributes shared by element types:
// GlobalId, OwnerHistory, Name, Description, ApplicableOccurrence,
// HasPropertySets, RepresentationMaps, Tag, ElementType.
func typeAttrs(globalID string, ownerHistory int, name string) []string {
	return []string{
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeOptionalString(name),
		step.Null, step.Null, step.Null, step.Null, step.Null, step.Null,
	}
}

// WallType creates an IFCWALLTYPE with predefined type STANDARD.
func (b *Builder) WallType(globalID string, ownerHistory int, name string) int {
	attrs := append(typeAttrs(globalID, ownerHistory, name), step.EncodeEnum("STANDARD"))
	return b.append("IFCWALLTYPE", attrs...)
}

// BeamType creates an IFCBEAMTYPE with predefined type BEAM.
func (b *Builder) BeamType(globalID string, ownerHistory int, name string) int {
	attrs := append(typeAttrs(globalID, ownerHistory, name), step.EncodeEnum("BEAM"))
	return b.append("IFCBEAMTYPE", attrs...)
}

// SlabType creates an IFCSLABTYPE with predefined type FLOOR.
func (b *Builder) SlabType(globalID string, ownerHistory int, name string) int {
	attrs := append(typeAttrs(globalID, ownerHistory, name), step.EncodeEnum("FLOOR"))
	return b.append("IFCSLABTYPE", attrs...)
}

// RelDefinesByType creates one IFCRELDEFINESBYTYPE grouping all
// occurrences of a type object.
func (b *Builder) RelDefinesByType(globalID string, ownerHistory int, objects []int, relatingType int) int {
	return b.append("IFCRELDEFINESBYTYPE",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.Null, step.Null,
		step.EncodeRefList(objects),
		step.EncodeRef(relatingType),
	)
}
