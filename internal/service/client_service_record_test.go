package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/driver-records/internal/adapter"
	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/mock"
	"github.com/MKhiriev/driver-records/internal/store"
	"github.com/MKhiriev/driver-records/models"
)

func newTestClientRecordSvc(t *testing.T) (ClientRecordService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientServices(serverAdapter, logger.Nop()).RecordService, serverAdapter
}

func TestClientRecordService_List(t *testing.T) {
	svc, serverAdapter := newTestClientRecordSvc(t)
	ctx := context.Background()

	want := []models.Record{{ID: "1", Name: "Jane"}}
	serverAdapter.EXPECT().ListRecords(ctx).Return(want, nil)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientRecordService_List_ServerError(t *testing.T) {
	svc, serverAdapter := newTestClientRecordSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().ListRecords(ctx).
		Return(nil, adapter.NewStatusError(http.StatusInternalServerError, app.MsgInternalServerError))

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

func TestClientRecordService_Delete_NotFound(t *testing.T) {
	svc, serverAdapter := newTestClientRecordSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().DeleteRecord(ctx, "abc").
		Return(models.OperationResult{}, adapter.NewStatusError(http.StatusNotFound, app.MsgRecordNotFound))

	_, err := svc.Delete(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
}

func TestClientRecordService_Delete_Success(t *testing.T) {
	svc, serverAdapter := newTestClientRecordSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().DeleteRecord(ctx, "abc").Return(models.OperationResult{ID: "abc", DeletedCount: 1}, nil)

	got, err := svc.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.DeletedCount)
}

func TestClientRecordService_ServerVersion(t *testing.T) {
	svc, serverAdapter := newTestClientRecordSvc(t)
	ctx := context.Background()

	serverAdapter.EXPECT().GetServerVersion(ctx).Return("1.0.0", nil)

	got, err := svc.ServerVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got)
}

func TestMapAdapterError(t *testing.T) {
	transportErr := errors.New("connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no record id", in: adapter.NewStatusError(http.StatusBadRequest, app.MsgNoRecordID), want: ErrValidationNoRecordID},
		{name: "no fields", in: adapter.NewStatusError(http.StatusBadRequest, app.MsgNoRecordFields), want: ErrValidationNoRecordFields},
		{name: "empty patch", in: adapter.NewStatusError(http.StatusBadRequest, app.MsgEmptyPatch), want: ErrValidationEmptyPatch},
		{name: "invalid id", in: adapter.NewStatusError(http.StatusBadRequest, app.MsgInvalidRecordID), want: store.ErrInvalidRecordID},
		{name: "not found", in: adapter.NewStatusError(http.StatusNotFound, ""), want: store.ErrRecordNotFound},
		{name: "empty body", in: adapter.ErrEmptyBody, want: store.ErrRecordNotFound},
		{name: "internal", in: adapter.NewStatusError(http.StatusInternalServerError, ""), want: ErrServerUnavailable},
		{name: "transport", in: transportErr, want: transportErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_UnknownBadRequestKeepsStatus(t *testing.T) {
	in := adapter.NewStatusError(http.StatusBadRequest, app.MsgInvalidDataProvided)

	got := mapAdapterError(in)
	assert.ErrorIs(t, got, adapter.ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, adapter.StatusCode(got))
}
