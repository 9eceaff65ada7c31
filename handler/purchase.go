package handler

import (
	"net/http"

	intake "github.com/dawsos/intake-api"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	service intake.PurchaseService
	log     *zap.SugaredLogger
}

func NewPurchaseHandler(service intake.PurchaseService, log *zap.SugaredLogger) *PurchaseHandler {
	return &PurchaseHandler{
		service: service,
		log:     log,
	}
}

func (h PurchaseHandler) Create(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var n intake.NewPurchase

	if err := decode(r, &n); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		respondFail(ctx, rw, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := n.Validate(); err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create purchase")
		return
	}

	p, err := h.service.Create(ctx, n)
	if err != nil {
		h.log.Errorw("Create", "error", err.Error())
		fail(ctx, rw, err, "Failed to create purchase")
		return
	}

	respond(ctx, rw, http.StatusOK, envelope{
		Success: true,
		ID:      p.ID,
		Message: "Purchase created successfully",
	})
}
