// Package verify checks generated STEP output against the invariants the
// exporter promises: every reference resolves, every reference points
// backward, entity ids are contiguous from 1, and the file declares the
// IFC4 schema. A violation indicates a defect in the entity graph
// construction, not bad drawing data.
package verify

import (
	"fmt"

	"github.com/stratumcad/ifcgen/core/step"
)

// Report summarizes one verification run.
type Report struct {
	// EntityCount is the number of DATA-section entities.
	EntityCount int

	// Schema is the declared file schema.
	Schema string

	// Violations lists every invariant failure found. Empty means the
	// file passed.
	Violations []string
}

// OK reports whether the file passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// Check parses content as an ISO-10303-21 file and verifies the
// exporter's invariants. A parse failure is returned as an error; rule
// violations are collected in the report.
func Check(content string) (*Report, error) {
	file, err := step.Parse(content)
	if err != nil {
		return nil, err
	}

	report := &Report{
		EntityCount: len(file.Entities),
		Schema:      file.Schema,
	}

	if file.Schema != "IFC4" {
		report.Violations = append(report.Violations,
			fmt.Sprintf("file schema is %q, want IFC4", file.Schema))
	}

	ids := make(map[int]bool, len(file.Entities))
	for _, e := range file.Entities {
		if ids[e.ID] {
			report.Violations = append(report.Violations,
				fmt.Sprintf("duplicate entity id #%d", e.ID))
		}
		ids[e.ID] = true
	}

	// Id contiguity: the id set must be exactly {1..n}.
	for id := 1; id <= len(file.Entities); id++ {
		if !ids[id] {
			report.Violations = append(report.Violations,
				fmt.Sprintf("entity id #%d missing: ids are not contiguous", id))
		}
	}

	// Referential integrity: every reference resolves and points to an
	// earlier entity.
	for _, e := range file.Entities {
		for _, ref := range e.Refs {
			if !ids[ref] {
				report.Violations = append(report.Violations,
					fmt.Sprintf("#%d=%s references #%d, which does not exist", e.ID, e.Type, ref))
				continue
			}
			if ref >= e.ID {
				report.Violations = append(report.Violations,
					fmt.Sprintf("#%d=%s references #%d: forward reference", e.ID, e.Type, ref))
			}
		}
	}

	return report, nil
}
