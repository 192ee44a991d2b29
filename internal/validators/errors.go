package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecordID    = errors.New("record id is required")
	ErrNoRecordFields   = errors.New("at least one of name, type or level must be provided")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
