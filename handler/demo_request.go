package handler

import (
	"net/http"

	intake "github.com/dawsos/intake-api"
	"go.uber.org/zap"
)

type DemoRequestHandler struct {
	service intake.DemoRequestService
	log     *zap.SugaredLogger
}

func NewDemoRequestHandler(service intake.DemoRequestService, log *zap.SugaredLogger) *DemoRequestHandler {
	return &DemoRequestHandler{
		service: service,
		log:     log,
	}
}

func (h DemoRequestHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var n intake.NewDemoRequest

	if err := decode(r, &n); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		respondFail(ctx, rw, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := n.Validate(); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create demo request")
		return
	}

	d, err := h.service.Create(ctx, n)
	if err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create demo request")
		return
	}

	respond(ctx, rw, http.StatusOK, envelope{Success: true, ID: d.ID})
}

func (h DemoRequestHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := h.service.List(ctx)
	if err != nil {
		h.log.Errorw("List", "error", err.Error())
		respondFail(ctx, rw, http.StatusInternalServerError, "Failed to retrieve demo requests", nil)
		return
	}

	respond(ctx, rw, http.StatusOK, requests)
}
