package model

import (
	"os"
	"testing"
)

const sampleDocument = `{
  "shapes": [
    {"id": "w1", "kind": "wall", "start": {"x": 0, "y": 0}, "end": {"x": 5000, "y": 0}, "thickness": 200, "justification": "center"},
    {"id": "g1", "kind": "gridline", "drawingId": "d1", "start": {"x": 0, "y": 0}, "end": {"x": 10000, "y": 0}, "label": "A"}
  ],
  "wallTypes": [
    {"id": "wt1", "name": "Generic 200", "thickness": 200, "material": "Concrete"}
  ],
  "structure": {
    "id": "p1",
    "name": "Site A",
    "buildings": [
      {"id": "b1", "name": "Block A", "storeys": [{"id": "s1", "name": "Ground", "elevation": 0}]}
    ]
  },
  "drawings": [
    {"id": "d1", "name": "Ground Plan", "kind": "plan", "storeyId": "s1"}
  ]
}`

func TestLoadDocument(t *testing.T) {
	osReadFileDocument = func(string) ([]byte, error) {
		return []byte(sampleDocument), nil
	}
	defer func() { osReadFileDocument = os.ReadFile }()

	doc, err := LoadDocument("drawing.json")
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}

	if len(doc.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(doc.Shapes))
	}

	wall := doc.Shapes[0]
	if wall.Kind != KindWall {
		t.Errorf("Kind = %q, want wall", wall.Kind)
	}
	if wall.End.X != 5000 {
		t.Errorf("End.X = %v, want 5000", wall.End.X)
	}
	if wall.Justification != "center" {
		t.Errorf("Justification = %q, want center", wall.Justification)
	}

	grid := doc.Shapes[1]
	if grid.DrawingID != "d1" {
		t.Errorf("DrawingID = %q, want d1", grid.DrawingID)
	}

	if len(doc.WallTypes) != 1 || doc.WallTypes[0].Thickness != 200 {
		t.Errorf("wall types = %+v", doc.WallTypes)
	}
	if doc.Structure.Empty() {
		t.Error("structure reported empty")
	}
	if len(doc.Drawings) != 1 || doc.Drawings[0].Kind != DrawingPlan {
		t.Errorf("drawings = %+v", doc.Drawings)
	}
	if doc.Drawings[0].StoreyID != "s1" {
		t.Errorf("StoreyID = %q, want s1", doc.Drawings[0].StoreyID)
	}
}

func TestLoadDocumentInvalidJSON(t *testing.T) {
	osReadFileDocument = func(string) ([]byte, error) {
		return []byte("{not json"), nil
	}
	defer func() { osReadFileDocument = os.ReadFile }()

	if _, err := LoadDocument("broken.json"); err == nil {
		t.Error("LoadDocument accepted invalid JSON")
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	osReadFileDocument = os.ReadFile
	if _, err := LoadDocument("/nonexistent/drawing.json"); err == nil {
		t.Error("LoadDocument succeeded on a missing file")
	}
}

func TestProjectStructureEmpty(t *testing.T) {
	var nilStructure *ProjectStructure
	if !nilStructure.Empty() {
		t.Error("nil structure should be empty")
	}
	if !(&ProjectStructure{}).Empty() {
		t.Error("zero structure should be empty")
	}
	populated := &ProjectStructure{Buildings: []Building{{ID: "b1"}}}
	if populated.Empty() {
		t.Error("populated structure reported empty")
	}
}
