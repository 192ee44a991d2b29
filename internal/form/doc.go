// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package form implements the record form controller used by the terminal
// client.
//
// A [RecordForm] is bound to the record identifier it was created with. An
// empty identifier puts it in create mode, anything else in edit mode, and
// neither the mode nor the identifier change for the lifetime of the form.
// The controller knows nothing about rendering: the UI calls [RecordForm.Load]
// once, feeds field edits through [RecordForm.Update] and finishes with
// [RecordForm.Submit], following the Redirect of the returned results.
//
// Lifecycle:
//
//	Uninitialized -> Loading (edit mode only) -> Ready -> Submitting -> Navigated
package form
