package model

import (
	"encoding/json"
	"os"

	"github.com/stratumcad/ifcgen/core/errors"
)

// Injectable functions for testing
var (
	osReadFileDocument = os.ReadFile
)

// Document is one serialized drawing file: everything the exporter needs
// for a single generation run.
type Document struct {
	Shapes    []Shape           `json:"shapes"`
	WallTypes []WallType        `json:"wallTypes,omitempty"`
	SlabTypes []SlabType        `json:"slabTypes,omitempty"`
	Structure *ProjectStructure `json:"structure,omitempty"`
	Drawings  []Drawing         `json:"drawings,omitempty"`
}

// LoadDocument reads and decodes a drawing document from a JSON file.
func LoadDocument(path string) (*Document, error) {
	data, err := osReadFileDocument(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewParse("JSON", path, err.Error())
	}
	return &doc, nil
}
