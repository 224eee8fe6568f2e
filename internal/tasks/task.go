// Package tasks parses spec tasks.md checklists into task records.
//
// A tasks document is a markdown checklist where each item carries a
// hierarchical numeric ID:
//
//	- [ ] 1. Set up project structure
//	  - Create the base directories
//	  - _Leverage: src/utils/fs.ts_
//	  - _Requirements: 1.1, 1.2_
//	- [x] 2.1 Create the data model
//
// Lines that are not task lines attach to the preceding task, either as a
// recognized annotation (leverage, requirements) or as free-text detail.
package tasks

// Task is one parsed checklist item. Records are created by Parse and
// never mutated afterwards.
type Task struct {
	ID           string   // hierarchical numeric ID, e.g. "1" or "2.3"
	Description  string   // first-line summary
	Completed    bool     // checkbox state; false when the marker is absent
	Details      []string // free-text lines attached to this task
	Leverage     string   // payload of a _Leverage: ..._ annotation, if any
	Requirements []string // payload of a _Requirements: ..._ annotation, if any
}
