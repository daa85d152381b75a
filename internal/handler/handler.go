package handler // handler package contains the HTTP handlers of the /api/v1 surface

import (
	"log/slog" // slog records unexpected failures

	"github.com/iliyamo/hbnb-api/internal/service" // service implements the entity operations
)

// Handler bundles the entity service and logger shared by every endpoint.
type Handler struct {
	svc    *service.Service // svc performs validation, persistence and traversal
	logger *slog.Logger     // logger receives errors that surface as 500
}

// NewHandler constructs a Handler and panics if the service is nil.
func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	if svc == nil { // a handler without a service cannot serve anything
		panic("nil service passed to NewHandler")
	}
	if logger == nil { // fall back to the process logger
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}
