package model

// Storey is one level of a building with a stable identifier and an
// elevation in millimeters.
type Storey struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Elevation float64 `json:"elevation"`
}

// Building groups storeys.
type Building struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Storeys []Storey `json:"storeys,omitempty"`
}

// ProjectStructure is the spatial-containment tree: one site holding one
// or more buildings holding zero or more storeys. An empty structure
// makes the exporter synthesize a default site, building, and ground
// floor.
type ProjectStructure struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Buildings []Building `json:"buildings,omitempty"`
}

// Empty reports whether the structure carries no buildings at all.
func (p *ProjectStructure) Empty() bool {
	return p == nil || len(p.Buildings) == 0
}

// WallType is a catalog entry referenced by wall shapes.
type WallType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thickness float64 `json:"thickness"`
	Material  string  `json:"material,omitempty"`
}

// SlabType is a catalog entry matched against slab shapes by
// (thickness, material) equality.
type SlabType struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Thickness float64 `json:"thickness"`
	Material  string  `json:"material,omitempty"`
}
