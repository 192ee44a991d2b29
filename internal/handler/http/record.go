// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/driver-records/internal/app"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/utils"
	"github.com/MKhiriev/driver-records/models"
	"github.com/go-chi/chi/v5"
)

// listRecords answers GET /record with every stored record. An empty
// collection is encoded as [] and never as null.
func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	records, err := h.services.RecordService.List(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing records")
		writeError(w, err)
		return
	}
	if records == nil {
		records = make([]models.Record, 0)
	}

	if _, err = utils.WriteJSON(w, records, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error writing response")
	}
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, recordIDParam)

	record, err := h.services.RecordService.Get(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Str("id", id).Msg("error getting record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, record, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getRecord").Msg("error writing response")
	}
}

// createRecord answers POST /record. Any id in the body is discarded; the
// storage backend assigns one.
func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var recordFromBody models.Record
	if err := json.NewDecoder(r.Body).Decode(&recordFromBody); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	recordFromBody.ID = ""

	created, err := h.services.RecordService.Create(r.Context(), recordFromBody)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error writing response")
	}
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, recordIDParam)

	var patch models.RecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.RecordService.Update(r.Context(), id, patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Str("id", id).Msg("error updating record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("error writing response")
	}
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, recordIDParam)

	result, err := h.services.RecordService.Delete(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Str("id", id).Msg("error deleting record")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Msg("error writing response")
	}
}
