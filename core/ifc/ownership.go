package ifc

import "github.com/stratumcad/ifcgen/core/step"

// Person creates an IFCPERSON identified by family name.
func (b *Builder) Person(familyName string) int {
	return b.append("IFCPERSON",
		step.Null,
		step.EncodeOptionalString(familyName),
		step.Null, step.Null, step.Null, step.Null, step.Null, step.Null,
	)
}

// Organization creates an IFCORGANIZATION.
func (b *Builder) Organization(name string) int {
	return b.append("IFCORGANIZATION",
		step.Null,
		step.EncodeString(name),
		step.Null, step.Null, step.Null,
	)
}

// PersonAndOrganization pairs a person with an organization.
func (b *Builder) PersonAndOrganization(person, organization int) int {
	return b.append("IFCPERSONANDORGANIZATION",
		step.EncodeRef(person),
		step.EncodeRef(organization),
		step.Null,
	)
}

// Application creates an IFCAPPLICATION describing the authoring tool.
func (b *Builder) Application(developer int, version, name, identifier string) int {
	return b.append("IFCAPPLICATION",
		step.EncodeRef(developer),
		step.EncodeString(version),
		step.EncodeString(name),
		step.EncodeString(identifier),
	)
}

// OwnerHistory creates the IFCOWNERHISTORY shared by every rooted entity
// in the file. creationDate is a Unix timestamp in seconds.
func (b *Builder) OwnerHistory(owningUser, owningApplication int, creationDate int64) int {
	return b.append("IFCOWNERHISTORY",
		step.EncodeRef(owningUser),
		step.EncodeRef(owningApplication),
		step.Null,
		step.EncodeEnum("ADDED"),
		step.Null, step.Null, step.Null,
		step.EncodeInt(creationDate),
	)
}

// SIUnit creates an IFCSIUNIT. prefix may be empty for an unprefixed
// unit. The dimensional exponents attribute is derived (*) per schema.
func (b *Builder) SIUnit(unitType, prefix, name string) int {
	prefixToken := step.Null
	if prefix != "" {
		prefixToken = step.EncodeEnum(prefix)
	}
	return b.append("IFCSIUNIT",
		step.Derived,
		step.EncodeEnum(unitType),
		prefixToken,
		step.EncodeEnum(name),
	)
}

// DimensionalExponents creates an IFCDIMENSIONALEXPONENTS record.
func (b *Builder) DimensionalExponents(length, mass, time, current, temperature, amount, luminous int) int {
	return b.append("IFCDIMENSIONALEXPONENTS",
		step.EncodeInt(int64(length)),
		step.EncodeInt(int64(mass)),
		step.EncodeInt(int64(time)),
		step.EncodeInt(int64(current)),
		step.EncodeInt(int64(temperature)),
		step.EncodeInt(int64(amount)),
		step.EncodeInt(int64(luminous)),
	)
}

// MeasureWithUnit creates an IFCMEASUREWITHUNIT. valueToken must be an
// encoded typed measure, e.g. IFCPLANEANGLEMEASURE(0.0174...).
func (b *Builder) MeasureWithUnit(valueToken string, unit int) int {
	return b.append("IFCMEASUREWITHUNIT",
		valueToken,
		step.EncodeRef(unit),
	)
}

// ConversionBasedUnit creates an IFCCONVERSIONBASEDUNIT, e.g. the degree
// defined against the radian.
func (b *Builder) ConversionBasedUnit(dimensions int, unitType, name string, conversionFactor int) int {
	return b.append("IFCCONVERSIONBASEDUNIT",
		step.EncodeRef(dimensions),
		step.EncodeEnum(unitType),
		step.EncodeString(name),
		step.EncodeRef(conversionFactor),
	)
}

// UnitAssignment creates the file-wide IFCUNITASSIGNMENT.
func (b *Builder) UnitAssignment(units []int) int {
	return b.append("IFCUNITASSIGNMENT", step.EncodeRefList(units))
}
