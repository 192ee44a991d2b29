package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/driver-records/internal/validators"
	"github.com/MKhiriev/driver-records/models"
)

// RecordValidationService checks request presence rules before delegating
// to the wrapped RecordService.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *RecordValidationService) List(ctx context.Context) ([]models.Record, error) {
	return v.inner.List(ctx)
}

func (v *RecordValidationService) Get(ctx context.Context, id string) (models.Record, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.Record{}, err
	}

	return v.inner.Get(ctx, id)
}

func (v *RecordValidationService) Create(ctx context.Context, record models.Record) (models.Record, error) {
	if err := v.validator.Validate(ctx, record, validators.FieldRecordFields); err != nil {
		return models.Record{}, fmt.Errorf("error during record validation before saving: %w", mapValidationError(err))
	}

	return v.inner.Create(ctx, record)
}

func (v *RecordValidationService) Update(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.OperationResult{}, err
	}

	if err := v.validator.Validate(ctx, patch); err != nil {
		return models.OperationResult{}, fmt.Errorf("error during record patch validation: %w", mapValidationError(err))
	}

	return v.inner.Update(ctx, id, patch)
}

func (v *RecordValidationService) Delete(ctx context.Context, id string) (models.OperationResult, error) {
	if err := v.validateID(ctx, id); err != nil {
		return models.OperationResult{}, err
	}

	return v.inner.Delete(ctx, id)
}

func (v *RecordValidationService) Wrap(wrapper RecordService) RecordService {
	v.inner = wrapper
	return v
}

func (v *RecordValidationService) validateID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, models.Record{ID: id}, validators.FieldRecordID); err != nil {
		return fmt.Errorf("error during record id validation: %w", mapValidationError(err))
	}

	return nil
}

// mapValidationError translates validator errors into service sentinels so
// that transports only need to know about the service package.
func mapValidationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrEmptyRecordID):
		return ErrValidationNoRecordID
	case errors.Is(err, validators.ErrNoRecordFields):
		return ErrValidationNoRecordFields
	case errors.Is(err, validators.ErrNoFieldsToUpdate):
		return ErrValidationEmptyPatch
	}

	return err
}
