// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/driver-records/models"
	"google.golang.org/grpc"
)

// RecordServiceName is the fully qualified gRPC service name.
const RecordServiceName = "records.RecordService"

// RecordServer is the server API of records.RecordService.
type RecordServer interface {
	List(ctx context.Context, req *ListRequest) (*ListResponse, error)
	Get(ctx context.Context, req *GetRequest) (*models.Record, error)
	Create(ctx context.Context, req *CreateRequest) (*models.Record, error)
	Update(ctx context.Context, req *UpdateRequest) (*models.OperationResult, error)
	Delete(ctx context.Context, req *DeleteRequest) (*models.OperationResult, error)
}

// RecordServiceDesc describes records.RecordService for [grpc.Server.RegisterService].
var RecordServiceDesc = grpc.ServiceDesc{
	ServiceName: RecordServiceName,
	HandlerType: (*RecordServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "List", Handler: unaryHandler("List", RecordServer.List)},
		{MethodName: "Get", Handler: unaryHandler("Get", RecordServer.Get)},
		{MethodName: "Create", Handler: unaryHandler("Create", RecordServer.Create)},
		{MethodName: "Update", Handler: unaryHandler("Update", RecordServer.Update)},
		{MethodName: "Delete", Handler: unaryHandler("Delete", RecordServer.Delete)},
	},
	Streams: []grpc.StreamDesc{},
}

// unaryHandler adapts a typed RecordServer method to a grpc.MethodDesc
// handler, running it through the server's unary interceptor chain.
func unaryHandler[Req, Resp any](
	method string,
	call func(RecordServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		server := srv.(RecordServer)
		if interceptor == nil {
			return call(server, ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + RecordServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(server, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func (h *Handler) List(ctx context.Context, _ *ListRequest) (*ListResponse, error) {
	records, err := h.services.RecordService.List(ctx)
	if err != nil {
		return nil, h.statusError(ctx, "List", err)
	}
	if records == nil {
		records = make([]models.Record, 0)
	}

	return &ListResponse{Records: records}, nil
}

func (h *Handler) Get(ctx context.Context, req *GetRequest) (*models.Record, error) {
	record, err := h.services.RecordService.Get(ctx, req.ID)
	if err != nil {
		return nil, h.statusError(ctx, "Get", err)
	}

	return &record, nil
}

func (h *Handler) Create(ctx context.Context, req *CreateRequest) (*models.Record, error) {
	record := req.Record
	record.ID = ""

	created, err := h.services.RecordService.Create(ctx, record)
	if err != nil {
		return nil, h.statusError(ctx, "Create", err)
	}

	return &created, nil
}

func (h *Handler) Update(ctx context.Context, req *UpdateRequest) (*models.OperationResult, error) {
	result, err := h.services.RecordService.Update(ctx, req.ID, req.Patch)
	if err != nil {
		return nil, h.statusError(ctx, "Update", err)
	}

	return &result, nil
}

func (h *Handler) Delete(ctx context.Context, req *DeleteRequest) (*models.OperationResult, error) {
	result, err := h.services.RecordService.Delete(ctx, req.ID)
	if err != nil {
		return nil, h.statusError(ctx, "Delete", err)
	}

	return &result, nil
}
