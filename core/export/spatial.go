package export

import (
	"math"

	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/model"
)

// emitSpatialHierarchy builds the site/building/storey spine from the
// project structure, synthesizing a default site, building, and ground
// floor when the structure is empty. Every physical element must end up
// contained in a storey, so the default storey always exists after this
// pass: the storey whose elevation is closest to zero, or the
// synthesized ground floor.
func (g *generator) emitSpatialHierarchy() {
	b := g.b
	structure := g.doc.Structure

	sitePlacement := g.placementAt(0, 0, 0, 0)
	var site int
	if structure.Empty() {
		site = b.Site(guid.Stable("site:default", ""), g.ownerHistory, "Default Site", sitePlacement)
	} else {
		site = b.Site(guid.Stable("site:"+structure.ID, ""), g.ownerHistory, orDefault(structure.Name, "Site"), sitePlacement)
	}
	b.RelAggregates(guid.Random(), g.ownerHistory, g.projectID, []int{site})

	buildings := []model.Building{}
	if !structure.Empty() {
		buildings = structure.Buildings
	}

	if len(buildings) == 0 {
		buildings = []model.Building{{
			ID:   "default",
			Name: "Default Building",
			Storeys: []model.Storey{
				{ID: "default", Name: "Ground Floor", Elevation: 0},
			},
		}}
	}

	var closest int
	closestDist := math.Inf(1)

	for _, building := range buildings {
		buildingPlacement := g.placementRel(sitePlacement, 0, 0, 0, 0)
		buildingID := b.Building(
			guid.Stable("building:"+building.ID, ""),
			g.ownerHistory,
			orDefault(building.Name, "Building"),
			buildingPlacement,
		)
		b.RelAggregates(guid.Random(), g.ownerHistory, site, []int{buildingID})

		storeys := building.Storeys
		if len(storeys) == 0 {
			storeys = []model.Storey{{ID: building.ID + ":ground", Name: "Ground Floor", Elevation: 0}}
		}

		storeyIDs := make([]int, 0, len(storeys))
		for _, storey := range storeys {
			storeyPlacement := g.placementRel(buildingPlacement, 0, 0, storey.Elevation, 0)
			storeyID := b.BuildingStorey(
				guid.Stable("storey:"+storey.ID, ""),
				g.ownerHistory,
				orDefault(storey.Name, "Storey"),
				storeyPlacement,
				storey.Elevation,
			)
			g.storeyByKey[storey.ID] = storeyID
			g.storeyPlacements[storeyID] = storeyPlacement
			storeyIDs = append(storeyIDs, storeyID)

			if d := math.Abs(storey.Elevation); d < closestDist {
				closestDist = d
				closest = storeyID
			}
		}
		b.RelAggregates(guid.Random(), g.ownerHistory, buildingID, storeyIDs)
	}

	g.defaultStorey = closest
}

// placementAt creates an absolute local placement at (x, y, z) rotated
// about Z by angle radians (0 keeps the default axes).
func (g *generator) placementAt(x, y, z, angle float64) int {
	return g.placementRel(0, x, y, z, angle)
}

// placementRel creates a local placement relative to relTo (0 for
// absolute).
func (g *generator) placementRel(relTo int, x, y, z, angle float64) int {
	b := g.b
	location := b.CartesianPoint3D(x, y, z)
	refDirection := 0
	if angle != 0 {
		refDirection = b.Direction3D(math.Cos(angle), math.Sin(angle), 0)
	}
	axis := b.Axis2Placement3D(location, 0, refDirection)
	return b.LocalPlacement(relTo, axis)
}

// elementPlacement places an element at (x, y, z) rotated by angle,
// relative to its containing storey.
func (g *generator) elementPlacement(storey int, x, y, z, angle float64) int {
	return g.placementRel(g.storeyPlacements[storey], x, y, z, angle)
}
