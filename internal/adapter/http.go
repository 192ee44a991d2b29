package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/driver-records/internal/config"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/utils"
	"github.com/MKhiriev/driver-records/models"
	"github.com/go-resty/resty/v2"
)

const (
	recordsPath = "/record"
	recordPath  = "/record/{id}"
	versionPath = "/version"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListRecords implements [ServerAdapter]. It GETs /record and decodes the JSON
// array. A `null` body is treated as an empty collection.
func (h *httpServerAdapter) ListRecords(ctx context.Context) ([]models.Record, error) {
	resp, err := h.request(ctx).Get(recordsPath)
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	records := make([]models.Record, 0)
	if isEmptyBody(resp.Body()) {
		return records, nil
	}
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = make([]models.Record, 0)
	}

	return records, nil
}

// GetRecord implements [ServerAdapter]. It GETs /record/{id}.
func (h *httpServerAdapter) GetRecord(ctx context.Context, id string) (models.Record, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Get(recordPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}
	if isEmptyBody(resp.Body()) {
		return models.Record{}, ErrEmptyBody
	}

	var record models.Record
	if err = json.Unmarshal(resp.Body(), &record); err != nil {
		return models.Record{}, fmt.Errorf("decode record: %w", err)
	}

	return record, nil
}

// CreateRecord implements [ServerAdapter]. It POSTs the editable fields to
// /record; the id is stripped from the body.
func (h *httpServerAdapter) CreateRecord(ctx context.Context, record models.Record) (models.Record, error) {
	record.ID = ""

	var created models.Record
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&created).
		Post(recordsPath)
	if err != nil {
		return models.Record{}, fmt.Errorf("create record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Record{}, err
	}

	return created, nil
}

// UpdateRecord implements [ServerAdapter]. It PATCHes /record/{id}.
func (h *httpServerAdapter) UpdateRecord(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error) {
	var result models.OperationResult
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&result).
		Patch(recordPath)
	if err != nil {
		return models.OperationResult{}, fmt.Errorf("update record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OperationResult{}, err
	}

	return result, nil
}

// DeleteRecord implements [ServerAdapter]. It sends DELETE /record/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) (models.OperationResult, error) {
	var result models.OperationResult
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete(recordPath)
	if err != nil {
		return models.OperationResult{}, fmt.Errorf("delete record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.OperationResult{}, err
	}

	return result, nil
}

// GetServerVersion implements [ServerAdapter]. It GETs /version.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader("X-Trace-ID", traceID)
	}
	return req
}
