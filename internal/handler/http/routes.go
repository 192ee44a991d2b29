package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	routeRecords = "/record"
	routeRecord  = "/record/{id}"
	routeVersion = "/version"

	recordIDParam = "id"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get(routeVersion, h.getServerVersion)

	router.Get(routeRecords, h.listRecords)
	router.Post(routeRecords, h.createRecord)
	router.Get(routeRecord, h.getRecord)
	router.Patch(routeRecord, h.updateRecord)
	router.Delete(routeRecord, h.deleteRecord)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
