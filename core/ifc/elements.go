package ifc

import "github.com/stratumcad/ifcgen/core/step"

// productAttrs formats the eight attributes shared by every building
// element: GlobalId, OwnerHistory, Name, Description, ObjectType,
// ObjectPlacement, Representation, Tag.
func productAttrs(globalID string, ownerHistory int, name string, placement, shape int, tag string) []string {
	return []string{
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeOptionalString(name),
		step.Null,
		step.Null,
		refOrNull(placement),
		refOrNull(shape),
		step.EncodeOptionalString(tag),
	}
}

// Wall creates an IFCWALL.
func (b *Builder) Wall(globalID string, ownerHistory int, name string, placement, shape int, tag string) int {
	attrs := append(productAttrs(globalID, ownerHistory, name, placement, shape, tag), step.Null)
	return b.append("IFCWALL", attrs...)
}

// Beam creates an IFCBEAM.
func (b *Builder) Beam(globalID string, ownerHistory int, name string, placement, shape int, tag string) int {
	attrs := append(productAttrs(globalID, ownerHistory, name, placement, shape, tag), step.Null)
	return b.append("IFCBEAM", attrs...)
}

// Column creates an IFCCOLUMN. Beams drawn in section views export as
// columns; the vertical extrusion convention is the caller's.
func (b *Builder) Column(globalID string, ownerHistory int, name string, placement, shape int, tag string) int {
	attrs := append(productAttrs(globalID, ownerHistory, name, placement, shape, tag), step.Null)
	return b.append("IFCCOLUMN", attrs...)
}

// Slab creates an IFCSLAB with predefined type FLOOR.
func (b *Builder) Slab(globalID string, ownerHistory int, name string, placement, shape int, tag string) int {
	attrs := append(productAttrs(globalID, ownerHistory, name, placement, shape, tag), step.EncodeEnum("FLOOR"))
	return b.append("IFCSLAB", attrs...)
}

// Pile creates an IFCPILE with predefined type BORED.
func (b *Builder) Pile(globalID string, ownerHistory int, name string, placement, shape int, tag string) int {
	attrs := append(productAttrs(globalID, ownerHistory, name, placement, shape, tag),
		step.EncodeEnum("BORED"),
		step.Null,
	)
	return b.append("IFCPILE", attrs...)
}

// GridAxis creates an IFCGRIDAXIS over an axis curve.
func (b *Builder) GridAxis(tag string, curve int, sameSense bool) int {
	return b.append("IFCGRIDAXIS",
		step.EncodeOptionalString(tag),
		step.EncodeRef(curve),
		step.EncodeBool(sameSense),
	)
}

// Grid creates an IFCGRID referencing its U and V axis lists. Both lists
// must be non-empty per schema; the exporter enforces that before
// calling.
func (b *Builder) Grid(globalID string, ownerHistory int, name string, placement, shape int, uAxes, vAxes []int) int {
	return b.append("IFCGRID",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeOptionalString(name),
		step.Null,
		step.Null,
		refOrNull(placement),
		refOrNull(shape),
		step.EncodeRefList(uAxes),
		step.EncodeRefList(vAxes),
		step.Null,
		step.Null,
	)
}

// Annotation creates an IFCANNOTATION carrying a 2D curve
// representation.
func (b *Builder) Annotation(globalID string, ownerHistory int, name string, placement, shape int) int {
	return b.append("IFCANNOTATION",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeOptionalString(name),
		step.Null,
		step.Null,
		refOrNull(placement),
		refOrNull(shape),
	)
}
