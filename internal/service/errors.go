package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrValidationNoRecordFields = errors.New("no record fields provided")
	ErrValidationEmptyPatch     = errors.New("no fields to update")
	ErrValidationNoRecordID     = errors.New("no record ID was given")
)
