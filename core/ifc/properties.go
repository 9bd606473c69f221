package ifc

import "github.com/stratumcad/ifcgen/core/step"

// Typed value helpers for property encoding.

// Text encodes an IFCTEXT typed value.
func Text(s string) string {
	return step.EncodeTyped("IFCTEXT", step.EncodeString(s))
}

// Label encodes an IFCLABEL typed value.
func Label(s string) string {
	return step.EncodeTyped("IFCLABEL", step.EncodeString(s))
}

// Real encodes an IFCREAL typed value.
func Real(f float64) string {
	return step.EncodeTyped("IFCREAL", step.EncodeReal(f))
}

// Boolean encodes an IFCBOOLEAN typed value.
func Boolean(v bool) string {
	return step.EncodeTyped("IFCBOOLEAN", step.EncodeBool(v))
}

// PropertySingleValue creates an IFCPROPERTYSINGLEVALUE. valueToken must
// be an encoded typed value (see Text, Label, Real, Boolean).
func (b *Builder) PropertySingleValue(name, valueToken string) int {
	return b.append("IFCPROPERTYSINGLEVALUE",
		step.EncodeString(name),
		step.Null,
		valueToken,
		step.Null,
	)
}

// PropertySet creates an IFCPROPERTYSET over the given properties.
func (b *Builder) PropertySet(globalID string, ownerHistory int, name string, properties []int) int {
	return b.append("IFCPROPERTYSET",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null,
		step.EncodeRefList(properties),
	)
}

// QuantityLength creates an IFCQUANTITYLENGTH in the file's length unit.
func (b *Builder) QuantityLength(name string, value float64) int {
	return b.append("IFCQUANTITYLENGTH",
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeReal(value),
		step.Null,
	)
}

// QuantityArea creates an IFCQUANTITYAREA in the file's area unit.
func (b *Builder) QuantityArea(name string, value float64) int {
	return b.append("IFCQUANTITYAREA",
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeReal(value),
		step.Null,
	)
}

// QuantityVolume creates an IFCQUANTITYVOLUME in the file's volume unit.
func (b *Builder) QuantityVolume(name string, value float64) int {
	return b.append("IFCQUANTITYVOLUME",
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeReal(value),
		step.Null,
	)
}

// ElementQuantity creates an IFCELEMENTQUANTITY (a base-quantities set).
func (b *Builder) ElementQuantity(globalID string, ownerHistory int, name string, quantities []int) int {
	return b.append("IFCELEMENTQUANTITY",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.EncodeString(name),
		step.Null, step.Null,
		step.EncodeRefList(quantities),
	)
}

// RelDefinesByProperties creates one IFCRELDEFINESBYPROPERTIES attaching
// a property or quantity set to the given objects.
func (b *Builder) RelDefinesByProperties(globalID string, ownerHistory int, objects []int, propertySet int) int {
	return b.append("IFCRELDEFINESBYPROPERTIES",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.Null, step.Null,
		step.EncodeRefList(objects),
		step.EncodeRef(propertySet),
	)
}
