package model

// DrawingKind classifies a drawing for export routing.
type DrawingKind string

const (
	// DrawingPlan is a plan drawing, optionally linked to a storey.
	DrawingPlan DrawingKind = "plan"
	// DrawingSection is a section drawing; derived shapes copied into
	// sections (gridlines, levels) are not re-exported from it.
	DrawingSection DrawingKind = "section"
	// DrawingStandalone is an unlinked drawing.
	DrawingStandalone DrawingKind = "standalone"
)

// Drawing is per-drawing metadata. It is used only to route shapes
// during export and is never mutated.
type Drawing struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Kind     DrawingKind `json:"kind"`
	StoreyID string      `json:"storeyId,omitempty"` // plan drawings only
}
