// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/mock"
	"github.com/MKhiriev/driver-records/internal/store"
	"github.com/MKhiriev/driver-records/models"
)

func newTestRecordSvc(t *testing.T, ctrl *gomock.Controller) (RecordService, *mock.MockRecordStorage) {
	t.Helper()
	storage := mock.NewMockRecordStorage(ctrl)
	return NewRecordService(storage, logger.Nop()), storage
}

func TestRecordService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	want := []models.Record{{ID: "1", Name: "Jane"}}
	storage.EXPECT().List(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecordService_Get_PassesErrorThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Get(ctx, "missing").Return(models.Record{}, store.ErrRecordNotFound)

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestRecordService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	in := models.Record{Name: "Jane Doe", Type: "Instructor", Level: models.LevelFull}
	out := in
	out.ID = "abc"
	storage.EXPECT().Create(ctx, in).Return(out, nil)

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, out, got)
}

func TestRecordService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	level := models.LevelRestricted
	patch := models.RecordPatch{Level: &level}
	want := models.OperationResult{ID: "abc", MatchedCount: 1, ModifiedCount: 1}
	storage.EXPECT().Update(ctx, "abc", patch).Return(want, nil)

	got, err := svc.Update(ctx, "abc", patch)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecordService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage := newTestRecordSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Delete(ctx, "abc").Return(models.OperationResult{}, errors.New("db down"))

	_, err := svc.Delete(ctx, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}
