package ifc

import "github.com/stratumcad/ifcgen/core/step"

// Material creates an IFCMATERIAL.
func (b *Builder) Material(name string) int {
	return b.append("IFCMATERIAL",
		step.EncodeString(name),
		step.Null, step.Null,
	)
}

// MaterialLayer creates an IFCMATERIALLAYER of the given thickness.
func (b *Builder) MaterialLayer(material int, thickness float64, name string) int {
	return b.append("IFCMATERIALLAYER",
		step.EncodeRef(material),
		step.EncodeReal(thickness),
		step.Null,
		step.EncodeOptionalString(name),
		step.Null, step.Null, step.Null,
	)
}

// MaterialLayerSet creates an IFCMATERIALLAYERSET.
func (b *Builder) MaterialLayerSet(layers []int, name string) int {
	return b.append("IFCMATERIALLAYERSET",
		step.EncodeRefList(layers),
		step.EncodeOptionalString(name),
		step.Null,
	)
}

// MaterialLayerSetUsage creates an IFCMATERIALLAYERSETUSAGE expressing
// how a layer set is offset from an element's reference line. direction
// is the layer-set axis (e.g. "AXIS2"), sense "POSITIVE" or "NEGATIVE".
func (b *Builder) MaterialLayerSetUsage(layerSet int, direction, sense string, offset float64) int {
	return b.append("IFCMATERIALLAYERSETUSAGE",
		step.EncodeRef(layerSet),
		step.EncodeEnum(direction),
		step.EncodeEnum(sense),
		step.EncodeReal(offset),
		step.Null,
	)
}

// RelAssociatesMaterial creates one IFCRELASSOCIATESMATERIAL linking
// elements to a material, layer set, or layer-set usage.
func (b *Builder) RelAssociatesMaterial(globalID string, ownerHistory int, objects []int, material int) int {
	return b.append("IFCRELASSOCIATESMATERIAL",
		step.EncodeString(globalID),
		step.EncodeRef(ownerHistory),
		step.Null, step.Null,
		step.EncodeRefList(objects),
		step.EncodeRef(material),
	)
}
