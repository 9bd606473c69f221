// Package model defines the read-only input side of the exporter: the
// drawing shapes, the wall/slab type catalogs, the project structure
// tree, and drawing metadata. The exporter never mutates these values.
package model

// Point is a 2D coordinate in drawing units (millimeters).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind tags the shape variant.
type Kind string

// Shape kinds understood by the exporter. Kinds outside this list
// (hatches, images, splines, ...) are silently skipped.
const (
	KindWall           Kind = "wall"
	KindBeam           Kind = "beam"
	KindSlab           Kind = "slab"
	KindPile           Kind = "pile"
	KindGridline       Kind = "gridline"
	KindLevel          Kind = "level"
	KindLine           Kind = "line"
	KindArc            Kind = "arc"
	KindCircle         Kind = "circle"
	KindPolyline       Kind = "polyline"
	KindRectangle      Kind = "rectangle"
	KindDimension      Kind = "dimension"
	KindText           Kind = "text"
	KindSectionCallout Kind = "sectionCallout"
)

// Shape is the tagged-variant drawing entity. Only the fields relevant
// to a shape's Kind are populated; the rest stay at their zero values.
type Shape struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	DrawingID string `json:"drawingId"`

	// Linear geometry: walls, beams, gridlines, levels, lines,
	// dimensions.
	Start Point `json:"start,omitempty"`
	End   Point `json:"end,omitempty"`

	// Loop geometry: slabs and polylines.
	Points []Point `json:"points,omitempty"`

	// Radial geometry: arcs, circles, piles.
	Center     Point   `json:"center,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	StartAngle float64 `json:"startAngle,omitempty"` // radians
	EndAngle   float64 `json:"endAngle,omitempty"`   // radians

	// Rectangle geometry.
	Position Point   `json:"position,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Rotation float64 `json:"rotation,omitempty"` // radians

	// Construction attributes.
	Thickness     float64 `json:"thickness,omitempty"`
	Material      string  `json:"material,omitempty"`
	Justification string  `json:"justification,omitempty"` // center, left, right
	WallTypeID    string  `json:"wallTypeId,omitempty"`
	Elevation     float64 `json:"elevation,omitempty"`
	Diameter      float64 `json:"diameter,omitempty"`

	// Beam profile attributes.
	ProfileType string             `json:"profileType,omitempty"`
	FlangeWidth float64            `json:"flangeWidth,omitempty"`
	Params      map[string]float64 `json:"params,omitempty"`
	PresetID    string             `json:"presetId,omitempty"`
	PresetName  string             `json:"presetName,omitempty"`
	ViewMode    string             `json:"viewMode,omitempty"` // plan or section

	// Annotation attributes.
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"` // text annotations
	Font        string `json:"font,omitempty"`
	Value       string `json:"value,omitempty"` // dimensions
	Prefix      string `json:"prefix,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
	CalloutType string `json:"calloutType,omitempty"`
}
