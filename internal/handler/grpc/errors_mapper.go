package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/service"
	"github.com/MKhiriev/driver-records/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	target  error
	code    codes.Code
	message string
}{
	{service.ErrValidationNoRecordID, codes.InvalidArgument, app.MsgNoRecordID},
	{service.ErrValidationNoRecordFields, codes.InvalidArgument, app.MsgNoRecordFields},
	{service.ErrValidationEmptyPatch, codes.InvalidArgument, app.MsgEmptyPatch},
	{store.ErrInvalidRecordID, codes.InvalidArgument, app.MsgInvalidRecordID},
	{store.ErrRecordNotFound, codes.NotFound, app.MsgRecordNotFound},
	{store.ErrRecordAlreadyExists, codes.AlreadyExists, app.MsgRecordAlreadyExists},
}

func codeFromError(err error) (codes.Code, string) {
	for _, candidate := range errorCodes {
		if errors.Is(err, candidate.target) {
			return candidate.code, candidate.message
		}
	}
	return codes.Internal, app.MsgInternalServerError
}

func (h *Handler) statusError(ctx context.Context, method string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", "*Handler."+method).Msg("gRPC call failed")

	code, message := codeFromError(err)
	return status.Error(code, message)
}
