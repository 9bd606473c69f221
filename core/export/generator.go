// Package export converts a drawing document into an ISO-10303-21
// physical file conforming to the IFC4 schema. The entry point is
// Generate; everything else in the package is the per-shape mapping
// machinery, the aggregation pass, and the file assembler.
//
// One Generate call owns one ifc.Builder and a set of tracking caches;
// nothing survives across calls, so the function is re-entrant. The
// generator is single-threaded by design: there is no locking because
// there is no concurrent access.
package export

import (
	"fmt"
	"time"

	"github.com/stratumcad/ifcgen/core/errors"
	"github.com/stratumcad/ifcgen/core/guid"
	"github.com/stratumcad/ifcgen/core/ifc"
	"github.com/stratumcad/ifcgen/core/model"
	"github.com/stratumcad/ifcgen/core/step"
)

// Defaults applied when Options leaves a field zero.
const (
	defaultWallHeight   = 3000.0 // mm
	defaultPileLength   = 6000.0 // mm
	defaultPileDiameter = 600.0  // mm
	defaultProjectName  = "Drawing Export"

	// minLength is the degeneracy threshold for linear elements.
	minLength = 0.001
)

// Options configures one generation run.
type Options struct {
	// ProjectName names the IFCPROJECT and the FILE_NAME header field.
	ProjectName string

	// Author and Organization fill the FILE_NAME header fields.
	Author       string
	Organization string

	// Application and ApplicationVersion identify the originating
	// system in the header and the IFCAPPLICATION entity.
	Application        string
	ApplicationVersion string

	// WallHeight is the default extrusion height for walls (mm).
	WallHeight float64

	// PileLength is the default extrusion length for piles (mm).
	PileLength float64

	// PileDiameter substitutes for piles drawn with no diameter (mm).
	PileDiameter float64

	// Now supplies the header timestamp; defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.ProjectName == "" {
		o.ProjectName = defaultProjectName
	}
	if o.Application == "" {
		o.Application = "ifcgen"
	}
	if o.ApplicationVersion == "" {
		o.ApplicationVersion = "0.1.0"
	}
	if o.WallHeight <= 0 {
		o.WallHeight = defaultWallHeight
	}
	if o.PileLength <= 0 {
		o.PileLength = defaultPileLength
	}
	if o.PileDiameter <= 0 {
		o.PileDiameter = defaultPileDiameter
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// GenerationResult is the outcome of one Generate call.
type GenerationResult struct {
	// Content is the complete ISO-10303-21 file text.
	Content string

	// EntityCount is the number of DATA-section entities.
	EntityCount int

	// FileSize is len(Content) in bytes.
	FileSize int

	// Skipped counts shapes excluded per kind: degenerate geometry and
	// unrecognized kinds. Informational only; skipping is not an error.
	Skipped map[model.Kind]int
}

// psetAttachment records a property or quantity set awaiting its
// definition relationship, emitted during the aggregation pass.
type psetAttachment struct {
	set     int
	objects []int
}

// gridAxisRecord tracks one exported gridline until the grid is
// assembled after the shape loop.
type gridAxisRecord struct {
	axis  int
	curve int
	tag   string
}

// generator carries the per-call state of one export run. Every map is
// created fresh in Generate; none of this is retained between calls.
type generator struct {
	b    *ifc.Builder
	opts Options

	doc      *model.Document
	drawings map[string]model.Drawing

	ownerHistory int
	context      int
	projectID    int

	// Spatial hierarchy, built once before the shape loop.
	storeyByKey      map[string]int // structure storey id -> entity id
	storeyPlacements map[int]int    // storey entity id -> placement id
	defaultStorey    int

	// Storey-containment accumulator.
	storeyElems map[int][]int
	storeyOrder []int

	// Material de-duplication and grouped direct associations.
	materials     map[string]int // display name -> material entity id
	materialElems map[int][]int  // material entity id -> element ids
	materialOrder []int

	// Type-relationship batching.
	wallTypeElems map[string][]int // wall type id -> element ids
	wallTypeOrder []string
	slabTypeElems map[string][]int
	slabTypeOrder []string
	beamTypeByKey map[string]int // profile key -> type entity id
	beamTypeElems map[int][]int
	beamTypeOrder []int

	// Property-set attachments, flushed by the aggregation pass.
	psets []psetAttachment

	// Grid accumulation across all plan gridlines.
	uAxes, vAxes []gridAxisRecord
	gridCurves   []int
	gridStorey   int

	skipped map[model.Kind]int
}

// Generate converts the document into a complete IFC4 STEP file. A
// malformed or degenerate shape is skipped, never fatal; the only error
// Generate can return is an internal defect in the entity graph
// construction.
func Generate(doc *model.Document, opts Options) (result *GenerationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = errors.NewDefect("export", fmt.Sprint(r))
		}
	}()

	if doc == nil {
		doc = &model.Document{}
	}

	g := &generator{
		b:                ifc.NewBuilder(),
		opts:             opts.withDefaults(),
		doc:              doc,
		drawings:         make(map[string]model.Drawing, len(doc.Drawings)),
		storeyByKey:      make(map[string]int),
		storeyPlacements: make(map[int]int),
		storeyElems:      make(map[int][]int),
		materials:        make(map[string]int),
		materialElems:    make(map[int][]int),
		wallTypeElems:    make(map[string][]int),
		slabTypeElems:    make(map[string][]int),
		beamTypeByKey:    make(map[string]int),
		beamTypeElems:    make(map[int][]int),
		skipped:          make(map[model.Kind]int),
	}
	for _, d := range doc.Drawings {
		g.drawings[d.ID] = d
	}

	g.emitBoilerplate()
	g.emitSpatialHierarchy()

	for _, shape := range doc.Shapes {
		g.mapShape(shape)
	}

	g.aggregate()

	content := g.assemble()
	return &GenerationResult{
		Content:     content,
		EntityCount: g.b.Count(),
		FileSize:    len(content),
		Skipped:     g.skipped,
	}, nil
}

// mapShape dispatches one shape to its kind-specific mapping. Unknown
// kinds are silently skipped so the file stays valid for everything the
// generator could map.
func (g *generator) mapShape(s model.Shape) {
	switch s.Kind {
	case model.KindWall:
		g.mapWall(s)
	case model.KindBeam:
		g.mapBeam(s)
	case model.KindSlab:
		g.mapSlab(s)
	case model.KindPile:
		g.mapPile(s)
	case model.KindGridline:
		g.mapGridline(s)
	case model.KindLevel:
		g.mapLevel(s)
	case model.KindLine, model.KindArc, model.KindCircle, model.KindPolyline,
		model.KindRectangle, model.KindDimension, model.KindText, model.KindSectionCallout:
		g.mapAnnotation(s)
	default:
		g.skip(s.Kind)
	}
}

func (g *generator) skip(kind model.Kind) {
	g.skipped[kind]++
}

// drawingFor returns the shape's drawing metadata; ok is false for
// shapes whose drawing id is unknown.
func (g *generator) drawingFor(s model.Shape) (model.Drawing, bool) {
	d, ok := g.drawings[s.DrawingID]
	return d, ok
}

// isPlanShape reports whether the shape's owning drawing is a plan
// drawing. Gridlines and levels copied into section drawings are derived
// data and must not be re-exported.
func (g *generator) isPlanShape(s model.Shape) bool {
	d, ok := g.drawingFor(s)
	return ok && d.Kind == model.DrawingPlan
}

// resolveStorey returns the entity id of the storey containing the
// shape: the plan drawing's linked storey when one matches the project
// structure, otherwise the default storey.
func (g *generator) resolveStorey(s model.Shape) int {
	if d, ok := g.drawingFor(s); ok && d.Kind == model.DrawingPlan && d.StoreyID != "" {
		if id, ok := g.storeyByKey[d.StoreyID]; ok {
			return id
		}
	}
	return g.defaultStorey
}

// containElement records an element against its storey for the batched
// containment relationship.
func (g *generator) containElement(storey, element int) {
	if _, seen := g.storeyElems[storey]; !seen {
		g.storeyOrder = append(g.storeyOrder, storey)
	}
	g.storeyElems[storey] = append(g.storeyElems[storey], element)
}

// material returns the entity id for a material display name, creating
// the IFCMATERIAL on first use.
func (g *generator) material(name string) int {
	if id, ok := g.materials[name]; ok {
		return id
	}
	id := g.b.Material(name)
	g.materials[name] = id
	return id
}

// associateMaterial records a grouped direct material association,
// emitted once per material by the aggregation pass.
func (g *generator) associateMaterial(materialID, element int) {
	if _, seen := g.materialElems[materialID]; !seen {
		g.materialOrder = append(g.materialOrder, materialID)
	}
	g.materialElems[materialID] = append(g.materialElems[materialID], element)
}

// attachPset queues a definition-by-properties relationship.
func (g *generator) attachPset(set int, objects ...int) {
	g.psets = append(g.psets, psetAttachment{set: set, objects: objects})
}

// emitBoilerplate creates the identity, unit, and representation-context
// entities every file carries, in that order.
func (g *generator) emitBoilerplate() {
	b := g.b

	person := b.Person(g.opts.Author)
	org := b.Organization(orDefault(g.opts.Organization, "Unknown"))
	owner := b.PersonAndOrganization(person, org)
	app := b.Application(org, g.opts.ApplicationVersion, g.opts.Application, g.opts.Application)
	g.ownerHistory = b.OwnerHistory(owner, app, g.opts.Now().Unix())

	lengthUnit := b.SIUnit("LENGTHUNIT", "MILLI", "METRE")
	areaUnit := b.SIUnit("AREAUNIT", "", "SQUARE_METRE")
	volumeUnit := b.SIUnit("VOLUMEUNIT", "", "CUBIC_METRE")
	radianUnit := b.SIUnit("PLANEANGLEUNIT", "", "RADIAN")
	dims := b.DimensionalExponents(0, 0, 0, 0, 0, 0, 0)
	degreeFactor := b.MeasureWithUnit(
		step.EncodeTyped("IFCPLANEANGLEMEASURE", step.EncodeReal(0.017453292519943295)),
		radianUnit,
	)
	degreeUnit := b.ConversionBasedUnit(dims, "PLANEANGLEUNIT", "DEGREE", degreeFactor)
	units := b.UnitAssignment([]int{lengthUnit, areaUnit, volumeUnit, radianUnit, degreeUnit})

	origin := b.CartesianPoint3D(0, 0, 0)
	wcs := b.Axis2Placement3D(origin, 0, 0)
	g.context = b.GeometricRepresentationContext("Model", 3, 1.0e-5, wcs)

	projectGUID := guid.Stable("project:"+g.opts.ProjectName, "")
	project := b.Project(projectGUID, g.ownerHistory, g.opts.ProjectName, []int{g.context}, units)
	g.projectID = project
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
