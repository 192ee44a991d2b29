// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single driver record. It is the only entity persisted by the
// server; the storage backend is the sole source of truth for it.
type Record struct {
	// ID is the opaque identifier assigned by the storage backend on
	// creation. It is empty for records that have not been created yet and
	// never changes afterwards.
	ID string `json:"id,omitempty"`

	// Name is a free-text driver name, e.g. "Jane Doe".
	Name string `json:"name"`

	// Type is a free-text driver type, e.g. "Instructor".
	Type string `json:"type"`

	// Level is the licence level label. See [Level].
	Level Level `json:"level"`
}

// IsEmpty reports whether none of the editable fields carry a value.
// The identifier is not taken into account.
func (r Record) IsEmpty() bool {
	return r.Name == "" && r.Type == "" && r.Level == ""
}

// Apply returns a copy of r with every non-nil field of patch written over
// the corresponding field. The identifier is never touched.
func (r Record) Apply(patch RecordPatch) Record {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Type != nil {
		r.Type = *patch.Type
	}
	if patch.Level != nil {
		r.Level = *patch.Level
	}
	return r
}

// RecordPatch represents a partial update of a [Record].
// Only non-nil fields are updated. Unknown JSON keys, including "id", are
// ignored on decoding.
type RecordPatch struct {
	// Name is the new driver name. If nil, the field is not updated.
	Name *string `json:"name,omitempty"`

	// Type is the new driver type. If nil, the field is not updated.
	Type *string `json:"type,omitempty"`

	// Level is the new licence level. If nil, the field is not updated.
	Level *Level `json:"level,omitempty"`
}

// IsEmpty reports whether the patch does not update any field.
func (p RecordPatch) IsEmpty() bool {
	return p.Name == nil && p.Type == nil && p.Level == nil
}

// PatchFromRecord builds a patch that overwrites all editable fields with
// the values of r.
func PatchFromRecord(r Record) RecordPatch {
	name, typ, level := r.Name, r.Type, r.Level
	return RecordPatch{Name: &name, Type: &typ, Level: &level}
}
