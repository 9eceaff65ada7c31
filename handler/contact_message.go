package handler

import (
	"net/http"

	intake "github.com/dawsos/intake-api"
	"go.uber.org/zap"
)

type ContactMessageHandler struct {
	service intake.ContactMessageService
	log     *zap.SugaredLogger
}

func NewContactMessageHandler(service intake.ContactMessageService, log *zap.SugaredLogger) *ContactMessageHandler {
	return &ContactMessageHandler{
		service: service,
		log:     log,
	}
}

func (h ContactMessageHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var n intake.NewContactMessage

	if err := decode(r, &n); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		respondFail(ctx, rw, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := n.Validate(); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create contact message")
		return
	}

	m, err := h.service.Create(ctx, n)
	if err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create contact message")
		return
	}

	respond(ctx, rw, http.StatusOK, envelope{Success: true, ID: m.ID})
}

func (h ContactMessageHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	messages, err := h.service.List(ctx)
	if err != nil {
		h.log.Errorw("List", "error", err.Error())
		respondFail(ctx, rw, http.StatusInternalServerError, "Failed to retrieve contact messages", nil)
		return
	}

	respond(ctx, rw, http.StatusOK, messages)
}
