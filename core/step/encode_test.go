package step

import "testing"

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "''"},
		{"plain", "Concrete", "'Concrete'"},
		{"embedded quote", "O'Brien", "'O''Brien'"},
		{"only quotes", "''", "''''''"},
		{"unicode", "Stütze", "'Stütze'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeString(tt.input)
			if got != tt.want {
				t.Errorf("EncodeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeReal(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"integral", 5000, "5000.0"},
		{"zero", 0, "0.0"},
		{"negative integral", -100, "-100.0"},
		{"fractional", 0.3, "0.3"},
		{"negative fractional", -0.5, "-0.5"},
		{"small", 0.017453292519943295, "0.017453292519943295"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeReal(tt.input)
			if got != tt.want {
				t.Errorf("EncodeReal(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeBool(t *testing.T) {
	if got := EncodeBool(true); got != ".T." {
		t.Errorf("EncodeBool(true) = %q, want .T.", got)
	}
	if got := EncodeBool(false); got != ".F." {
		t.Errorf("EncodeBool(false) = %q, want .F.", got)
	}
}

func TestEncodeEnum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", "ELEMENT", ".ELEMENT."},
		{"already wrapped", ".ELEMENT.", ".ELEMENT."},
		{"single letter", "T", ".T."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeEnum(tt.input)
			if got != tt.want {
				t.Errorf("EncodeEnum(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeRef(t *testing.T) {
	if got := EncodeRef(42); got != "#42" {
		t.Errorf("EncodeRef(42) = %q, want #42", got)
	}
}

func TestEncodeRefList(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  string
	}{
		{"empty", nil, "()"},
		{"single", []int{1}, "(#1)"},
		{"several", []int{1, 2, 3}, "(#1,#2,#3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeRefList(tt.input)
			if got != tt.want {
				t.Errorf("EncodeRefList(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEncodeRealList(t *testing.T) {
	got := EncodeRealList([]float64{0, 5000, -0.5})
	want := "(0.0,5000.0,-0.5)"
	if got != want {
		t.Errorf("EncodeRealList = %q, want %q", got, want)
	}
}

func TestEncodeTyped(t *testing.T) {
	got := EncodeTyped("IFCPLANEANGLEMEASURE", EncodeReal(1.5))
	want := "IFCPLANEANGLEMEASURE(1.5)"
	if got != want {
		t.Errorf("EncodeTyped = %q, want %q", got, want)
	}
}

func TestEncodeOptionalString(t *testing.T) {
	if got := EncodeOptionalString(""); got != "$" {
		t.Errorf("EncodeOptionalString(\"\") = %q, want $", got)
	}
	if got := EncodeOptionalString("x"); got != "'x'" {
		t.Errorf("EncodeOptionalString(\"x\") = %q, want 'x'", got)
	}
}
