package ifc

import (
	"strings"
	"testing"
)

func TestBuilderIDsAreContiguousFromOne(t *testing.T) {
	b := NewBuilder()

	first := b.CartesianPoint2D(0, 0)
	second := b.CartesianPoint2D(1, 1)
	third := b.Polyline([]int{first, second})

	if first != 1 || second != 2 || third != 3 {
		t.Errorf("ids = %d,%d,%d, want 1,2,3", first, second, third)
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d, want 3", b.Count())
	}
	if b.LastID() != 3 {
		t.Errorf("LastID() = %d, want 3", b.LastID())
	}

	for i, e := range b.Entities() {
		if e.ID != i+1 {
			t.Errorf("entity %d has id %d, want %d", i, e.ID, i+1)
		}
	}
}

func TestBuilderReferencesAreBackward(t *testing.T) {
	b := NewBuilder()
	p1 := b.CartesianPoint2D(0, 0)
	p2 := b.CartesianPoint2D(100, 0)
	line := b.Polyline([]int{p1, p2})

	attrs := b.Entities()[line-1].Attrs
	if attrs != "(#1,#2)" {
		t.Errorf("polyline attrs = %q, want (#1,#2)", attrs)
	}
}

func TestFactoryAttributeFormats(t *testing.T) {
	tests := []struct {
		name      string
		build     func(b *Builder) int
		wantType  string
		wantAttrs string
	}{
		{
			name:      "cartesian point 3d",
			build:     func(b *Builder) int { return b.CartesianPoint3D(0, 0, 0) },
			wantType:  "IFCCARTESIANPOINT",
			wantAttrs: "(0.0,0.0,0.0)",
		},
		{
			name:      "direction",
			build:     func(b *Builder) int { return b.Direction3D(0, 0, 1) },
			wantType:  "IFCDIRECTION",
			wantAttrs: "(0.0,0.0,1.0)",
		},
		{
			name:      "si unit",
			build:     func(b *Builder) int { return b.SIUnit("LENGTHUNIT", "MILLI", "METRE") },
			wantType:  "IFCSIUNIT",
			wantAttrs: "*,.LENGTHUNIT.,.MILLI.,.METRE.",
		},
		{
			name:      "si unit without prefix",
			build:     func(b *Builder) int { return b.SIUnit("AREAUNIT", "", "SQUARE_METRE") },
			wantType:  "IFCSIUNIT",
			wantAttrs: "*,.AREAUNIT.,$,.SQUARE_METRE.",
		},
		{
			name:      "material",
			build:     func(b *Builder) int { return b.Material("Concrete") },
			wantType:  "IFCMATERIAL",
			wantAttrs: "'Concrete',$,$",
		},
		{
			name:      "quantity length",
			build:     func(b *Builder) int { return b.QuantityLength("Length", 5000) },
			wantType:  "IFCQUANTITYLENGTH",
			wantAttrs: "'Length',$,$,5000.0,$",
		},
		{
			name:      "property single value",
			build:     func(b *Builder) int { return b.PropertySingleValue("IsExternal", Boolean(false)) },
			wantType:  "IFCPROPERTYSINGLEVALUE",
			wantAttrs: "'IsExternal',$,IFCBOOLEAN(.F.),$",
		},
		{
			name:      "rectangle profile",
			build:     func(b *Builder) int { return b.RectangleProfileDef("", 0, 5000, 200) },
			wantType:  "IFCRECTANGLEPROFILEDEF",
			wantAttrs: ".AREA.,$,$,5000.0,200.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			id := tt.build(b)
			e := b.Entities()[id-1]
			if e.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", e.Type, tt.wantType)
			}
			if e.Attrs != tt.wantAttrs {
				t.Errorf("Attrs = %q, want %q", e.Attrs, tt.wantAttrs)
			}
		})
	}
}

func TestMaterialLayerSetUsageOffset(t *testing.T) {
	b := NewBuilder()
	mat := b.Material("Concrete")
	layer := b.MaterialLayer(mat, 200, "Concrete")
	set := b.MaterialLayerSet([]int{layer}, "Wall 200")
	usage := b.MaterialLayerSetUsage(set, "AXIS2", "POSITIVE", -100)

	attrs := b.Entities()[usage-1].Attrs
	if !strings.Contains(attrs, "-100.0") {
		t.Errorf("usage attrs = %q, want offset -100.0", attrs)
	}
	if !strings.Contains(attrs, ".AXIS2.") || !strings.Contains(attrs, ".POSITIVE.") {
		t.Errorf("usage attrs = %q, want .AXIS2. and .POSITIVE.", attrs)
	}
}

func TestTypedValueHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"text", Text("hello"), "IFCTEXT('hello')"},
		{"label", Label("W1"), "IFCLABEL('W1')"},
		{"real", Real(0.3), "IFCREAL(0.3)"},
		{"boolean true", Boolean(true), "IFCBOOLEAN(.T.)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
