package step

import "testing"

const sampleFile = `ISO-10303-21;
HEADER;
FILE_DESCRIPTION(('ViewDefinition [DesignTransferView]'),'2;1');
FILE_NAME('Test','2026-01-02T03:04:05',('Author'),('Org'),'ifcgen 0.1.0','ifcgen','');
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCCARTESIANPOINT((0.0,0.0,0.0));
#2=IFCDIRECTION((0.0,0.0,1.0));
#3=IFCAXIS2PLACEMENT3D(#1,$,$);
#4=IFCSIUNIT(*,.LENGTHUNIT.,.MILLI.,.METRE.);
#5=IFCMEASUREWITHUNIT(IFCPLANEANGLEMEASURE(0.017453292519943295),#4);
#6=IFCPOLYLINE((#1,#1));
ENDSEC;
END-ISO-10303-21;
`

func TestParse(t *testing.T) {
	file, err := Parse(sampleFile)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if file.Schema != "IFC4" {
		t.Errorf("Schema = %q, want IFC4", file.Schema)
	}
	if len(file.Entities) != 6 {
		t.Fatalf("got %d entities, want 6", len(file.Entities))
	}

	tests := []struct {
		index    int
		id       int
		typeName string
		refs     []int
	}{
		{0, 1, "IFCCARTESIANPOINT", nil},
		{1, 2, "IFCDIRECTION", nil},
		{2, 3, "IFCAXIS2PLACEMENT3D", []int{1}},
		{3, 4, "IFCSIUNIT", nil},
		{4, 5, "IFCMEASUREWITHUNIT", []int{4}},
		{5, 6, "IFCPOLYLINE", []int{1, 1}},
	}

	for _, tt := range tests {
		e := file.Entities[tt.index]
		if e.ID != tt.id {
			t.Errorf("entity %d: ID = %d, want %d", tt.index, e.ID, tt.id)
		}
		if e.Type != tt.typeName {
			t.Errorf("entity %d: Type = %q, want %q", tt.index, e.Type, tt.typeName)
		}
		if len(e.Refs) != len(tt.refs) {
			t.Errorf("entity %d: refs = %v, want %v", tt.index, e.Refs, tt.refs)
			continue
		}
		for i, ref := range tt.refs {
			if e.Refs[i] != ref {
				t.Errorf("entity %d: refs[%d] = %d, want %d", tt.index, i, e.Refs[i], ref)
			}
		}
	}
}

func TestParseNestedRefs(t *testing.T) {
	content := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCCARTESIANPOINT((0.0,0.0));
#2=IFCCARTESIANPOINT((1.0,1.0));
#3=IFCTRIMMEDCURVE(#1,(IFCPARAMETERVALUE(0.0)),(IFCPARAMETERVALUE(1.5)),.T.,.PARAMETER.);
#4=IFCGRID('g',#1,'Plan Grid',$,$,$,$,(#2,#3),(#1),$,$);
ENDSEC;
END-ISO-10303-21;
`
	file, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	grid := file.Entities[3]
	want := []int{1, 2, 3, 1}
	if len(grid.Refs) != len(want) {
		t.Fatalf("grid refs = %v, want %v", grid.Refs, want)
	}
	for i := range want {
		if grid.Refs[i] != want[i] {
			t.Errorf("grid refs[%d] = %d, want %d", i, grid.Refs[i], want[i])
		}
	}
}

func TestParseStringEscapes(t *testing.T) {
	content := `ISO-10303-21;
HEADER;
FILE_SCHEMA(('IFC4'));
ENDSEC;
DATA;
#1=IFCMATERIAL('O''Brien''s mix',$,$);
ENDSEC;
END-ISO-10303-21;
`
	file, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(file.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(file.Entities))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"missing footer", "ISO-10303-21;\nHEADER;\nENDSEC;\nDATA;\nENDSEC;\n"},
		{"not step", "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.content); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.name)
			}
		})
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"'IFC4'", "IFC4"},
		{"''", ""},
		{"'O''Brien'", "O'Brien"},
	}

	for _, tt := range tests {
		if got := DecodeString(tt.input); got != tt.want {
			t.Errorf("DecodeString(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "O'Brien", "a''b"}
	for _, in := range inputs {
		if got := DecodeString(EncodeString(in)); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}
