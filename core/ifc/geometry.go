package ifc

import "github.com/stratumcad/ifcgen/core/step"

// CartesianPoint2D creates an IFCCARTESIANPOINT with two coordinates.
func (b *Builder) CartesianPoint2D(x, y float64) int {
	return b.append("IFCCARTESIANPOINT", step.EncodeRealList([]float64{x, y}))
}

// CartesianPoint3D creates an IFCCARTESIANPOINT with three coordinates.
func (b *Builder) CartesianPoint3D(x, y, z float64) int {
	return b.append("IFCCARTESIANPOINT", step.EncodeRealList([]float64{x, y, z}))
}

// Direction2D creates an IFCDIRECTION in the XY plane.
func (b *Builder) Direction2D(x, y float64) int {
	return b.append("IFCDIRECTION", step.EncodeRealList([]float64{x, y}))
}

// Direction3D creates an IFCDIRECTION in model space.
func (b *Builder) Direction3D(x, y, z float64) int {
	return b.append("IFCDIRECTION", step.EncodeRealList([]float64{x, y, z}))
}

// Axis2Placement2D creates an IFCAXIS2PLACEMENT2D. refDirection may be 0
// for the default X axis.
func (b *Builder) Axis2Placement2D(location, refDirection int) int {
	return b.append("IFCAXIS2PLACEMENT2D",
		step.EncodeRef(location),
		refOrNull(refDirection),
	)
}

// Axis2Placement3D creates an IFCAXIS2PLACEMENT3D. axis and refDirection
// may be 0 for the default Z and X axes.
func (b *Builder) Axis2Placement3D(location, axis, refDirection int) int {
	return b.append("IFCAXIS2PLACEMENT3D",
		step.EncodeRef(location),
		refOrNull(axis),
		refOrNull(refDirection),
	)
}

// LocalPlacement creates an IFCLOCALPLACEMENT relative to placementRelTo
// (0 for an absolute placement).
func (b *Builder) LocalPlacement(placementRelTo, relativePlacement int) int {
	return b.append("IFCLOCALPLACEMENT",
		refOrNull(placementRelTo),
		step.EncodeRef(relativePlacement),
	)
}

// Polyline creates an IFCPOLYLINE through the given points.
func (b *Builder) Polyline(points []int) int {
	return b.append("IFCPOLYLINE", step.EncodeRefList(points))
}

// Circle creates an IFCCIRCLE on a 2D placement.
func (b *Builder) Circle(placement int, radius float64) int {
	return b.append("IFCCIRCLE",
		step.EncodeRef(placement),
		step.EncodeReal(radius),
	)
}

// TrimmedCurve creates an IFCTRIMMEDCURVE over basisCurve trimmed by
// parameter values (radians for circles).
func (b *Builder) TrimmedCurve(basisCurve int, startParam, endParam float64, senseAgreement bool) int {
	return b.append("IFCTRIMMEDCURVE",
		step.EncodeRef(basisCurve),
		step.EncodeList([]string{step.EncodeTyped("IFCPARAMETERVALUE", step.EncodeReal(startParam))}),
		step.EncodeList([]string{step.EncodeTyped("IFCPARAMETERVALUE", step.EncodeReal(endParam))}),
		step.EncodeBool(senseAgreement),
		step.EncodeEnum("PARAMETER"),
	)
}

// RectangleProfileDef creates a closed rectangular IFCRECTANGLEPROFILEDEF.
// position may be 0 when the profile is centered on the origin by its
// own placement.
func (b *Builder) RectangleProfileDef(name string, position int, xDim, yDim float64) int {
	return b.append("IFCRECTANGLEPROFILEDEF",
		step.EncodeEnum("AREA"),
		step.EncodeOptionalString(name),
		refOrNull(position),
		step.EncodeReal(xDim),
		step.EncodeReal(yDim),
	)
}

// CircleProfileDef creates a closed circular IFCCIRCLEPROFILEDEF.
func (b *Builder) CircleProfileDef(name string, position int, radius float64) int {
	return b.append("IFCCIRCLEPROFILEDEF",
		step.EncodeEnum("AREA"),
		step.EncodeOptionalString(name),
		refOrNull(position),
		step.EncodeReal(radius),
	)
}

// ArbitraryClosedProfileDef creates an IFCARBITRARYCLOSEDPROFILEDEF from
// a closed outer curve.
func (b *Builder) ArbitraryClosedProfileDef(name string, outerCurve int) int {
	return b.append("IFCARBITRARYCLOSEDPROFILEDEF",
		step.EncodeEnum("AREA"),
		step.EncodeOptionalString(name),
		step.EncodeRef(outerCurve),
	)
}

// ExtrudedAreaSolid creates an IFCEXTRUDEDAREASOLID sweeping profile
// along direction for depth.
func (b *Builder) ExtrudedAreaSolid(profile, position, direction int, depth float64) int {
	return b.append("IFCEXTRUDEDAREASOLID",
		step.EncodeRef(profile),
		refOrNull(position),
		step.EncodeRef(direction),
		step.EncodeReal(depth),
	)
}

// GeometricCurveSet creates an IFCGEOMETRICCURVESET over the given
// curves. Used for grid footprints.
func (b *Builder) GeometricCurveSet(elements []int) int {
	return b.append("IFCGEOMETRICCURVESET", step.EncodeRefList(elements))
}

// ShapeRepresentation creates an IFCSHAPEREPRESENTATION, e.g.
// ("Axis", "Curve2D") or ("Body", "SweptSolid").
func (b *Builder) ShapeRepresentation(context int, identifier, representationType string, items []int) int {
	return b.append("IFCSHAPEREPRESENTATION",
		step.EncodeRef(context),
		step.EncodeString(identifier),
		step.EncodeString(representationType),
		step.EncodeRefList(items),
	)
}

// ProductDefinitionShape creates an IFCPRODUCTDEFINITIONSHAPE wrapping
// one or more shape representations.
func (b *Builder) ProductDefinitionShape(representations []int) int {
	return b.append("IFCPRODUCTDEFINITIONSHAPE",
		step.Null,
		step.Null,
		step.EncodeRefList(representations),
	)
}

// GeometricRepresentationContext creates the model-space
// IFCGEOMETRICREPRESENTATIONCONTEXT.
func (b *Builder) GeometricRepresentationContext(contextType string, dimensions int, precision float64, worldCoordinateSystem int) int {
	return b.append("IFCGEOMETRICREPRESENTATIONCONTEXT",
		step.Null,
		step.EncodeString(contextType),
		step.EncodeInt(int64(dimensions)),
		step.EncodeReal(precision),
		step.EncodeRef(worldCoordinateSystem),
		step.Null,
	)
}
