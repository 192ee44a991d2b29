package form

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/driver-records/internal/adapter"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/models"
)

// RecordClient is the part of [adapter.ServerAdapter] the form talks to.
type RecordClient interface {
	GetRecord(ctx context.Context, id string) (models.Record, error)
	CreateRecord(ctx context.Context, record models.Record) (models.Record, error)
	UpdateRecord(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error)
}

// FieldChange is a partial edit of the form fields. Nil fields are left
// untouched.
type FieldChange struct {
	Name  *string
	Type  *string
	Level *models.Level
}

// SetName returns a change of the name field only.
func SetName(name string) FieldChange { return FieldChange{Name: &name} }

// SetType returns a change of the type field only.
func SetType(typ string) FieldChange { return FieldChange{Type: &typ} }

// SetLevel returns a change of the level field only.
func SetLevel(level models.Level) FieldChange { return FieldChange{Level: &level} }

// LoadResult is the outcome of [RecordForm.Load]. A non-empty Redirect means
// the UI must navigate there.
type LoadResult struct {
	Redirect string
	Err      error
}

// SubmitResult is the outcome of [RecordForm.Submit]. Redirect is always
// RouteRoot after a request was attempted; Err tells failure from success.
// Record is set for a successful create, Result for a successful update.
type SubmitResult struct {
	Redirect string
	Record   models.Record
	Result   models.OperationResult
	Err      error
}

// RecordForm holds the editable fields of one record and synchronises them
// with the server.
type RecordForm struct {
	client RecordClient
	id     string
	mode   Mode

	mu     sync.Mutex
	state  State
	fields models.Record

	logger *logger.Logger
}

// New creates a form for routeID. An empty routeID means create mode.
func New(client RecordClient, routeID string, logger *logger.Logger) *RecordForm {
	mode := ModeCreate
	if routeID != "" {
		mode = ModeEdit
	}

	return &RecordForm{
		client: client,
		id:     routeID,
		mode:   mode,
		state:  StateUninitialized,
		logger: logger,
	}
}

// Mode returns the mode fixed at construction.
func (f *RecordForm) Mode() Mode {
	return f.mode
}

// ID returns the record identifier captured at construction.
func (f *RecordForm) ID() string {
	return f.id
}

// State returns the current lifecycle state.
func (f *RecordForm) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns a copy of the current field values.
func (f *RecordForm) Fields() models.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Load prepares the form. In create mode nothing is requested. In edit mode
// the record is fetched and, on success, replaces every field verbatim. A
// missing record asks the UI to go back to RouteRoot; any other failure is
// logged and leaves the fields as they were.
func (f *RecordForm) Load(ctx context.Context) LoadResult {
	f.mu.Lock()
	switch f.state {
	case StateNavigated:
		f.mu.Unlock()
		return LoadResult{Err: ErrFormClosed}
	case StateLoading, StateSubmitting:
		f.mu.Unlock()
		return LoadResult{Err: ErrFormBusy}
	}

	if f.mode == ModeCreate {
		f.state = StateReady
		f.mu.Unlock()
		return LoadResult{}
	}

	f.state = StateLoading
	f.mu.Unlock()

	log := f.logger.With().Str("func", "*RecordForm.Load").Str("id", f.id).Logger()

	record, err := f.client.GetRecord(ctx, f.id)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) || errors.Is(err, adapter.ErrEmptyBody) {
			log.Warn().Err(err).Msg("record not found, returning to the list")
			f.state = StateNavigated
			return LoadResult{Redirect: RouteRoot, Err: err}
		}

		err = wrapStatus(err)
		log.Error().Err(err).Msg("error loading record")
		f.state = StateReady
		return LoadResult{Err: err}
	}

	f.fields = record
	f.state = StateReady
	return LoadResult{}
}

// Update merges change into the fields. The last value written per field wins.
func (f *RecordForm) Update(change FieldChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateNavigated {
		return ErrFormClosed
	}

	if change.Name != nil {
		f.fields.Name = *change.Name
	}
	if change.Type != nil {
		f.fields.Type = *change.Type
	}
	if change.Level != nil {
		f.fields.Level = *change.Level
	}

	return nil
}

// Submit sends the current fields: a create in create mode, an update of the
// captured identifier in edit mode. Whatever the outcome the fields are
// cleared and the result redirects to RouteRoot. Nothing is retried, and once
// navigated every further Submit returns ErrFormClosed without a request.
func (f *RecordForm) Submit(ctx context.Context) SubmitResult {
	f.mu.Lock()
	switch f.state {
	case StateNavigated:
		f.mu.Unlock()
		return SubmitResult{Err: ErrFormClosed}
	case StateLoading, StateSubmitting:
		f.mu.Unlock()
		return SubmitResult{Err: ErrFormBusy}
	}

	snapshot := f.fields
	f.state = StateSubmitting
	f.mu.Unlock()

	log := f.logger.With().Str("func", "*RecordForm.Submit").Str("mode", f.mode.String()).Logger()

	result := SubmitResult{Redirect: RouteRoot}
	var err error
	if f.mode == ModeCreate {
		result.Record, err = f.client.CreateRecord(ctx, snapshot)
	} else {
		result.Result, err = f.client.UpdateRecord(ctx, f.id, models.PatchFromRecord(snapshot))
	}

	if err != nil {
		result.Err = wrapStatus(err)
		log.Error().Err(result.Err).Msg("error submitting record")
	}

	f.mu.Lock()
	f.fields = models.Record{}
	f.state = StateNavigated
	f.mu.Unlock()

	return result
}

// wrapStatus turns a non-2xx answer into an [HTTPError]; transport errors are
// returned as is.
func wrapStatus(err error) error {
	if code := adapter.StatusCode(err); code != 0 {
		return &HTTPError{Status: code, cause: err}
	}
	return err
}
