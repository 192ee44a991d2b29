package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/driver-records/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldRecordID targets the identifier of a record.
	FieldRecordID = "id"

	// FieldRecordFields targets the presence of at least one data field
	// (name, type, level) of a record.
	FieldRecordFields = "fields"
)

// RecordValidator enforces presence rules on records and record patches.
// Values themselves are free text; the level is not checked against the
// known levels.
type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return v.validateRecord(ctx, value, fields...)
	case *models.Record:
		return v.validateRecord(ctx, *value, fields...)

	case models.RecordPatch:
		return v.validateRecordPatch(ctx, value)
	case *models.RecordPatch:
		return v.validateRecordPatch(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateRecord(ctx context.Context, record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordFields}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordID:
			if strings.TrimSpace(record.ID) == "" {
				return ErrEmptyRecordID
			}
		case FieldRecordFields:
			if record.IsEmpty() {
				return ErrNoRecordFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateRecordPatch(ctx context.Context, patch models.RecordPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return nil
}
