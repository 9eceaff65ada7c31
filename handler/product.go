package handler

import (
	"errors"
	"net/http"

	intake "github.com/dawsos/intake-api"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service intake.ProductService
	log     *zap.SugaredLogger
}

func NewProductHandler(service intake.ProductService, log *zap.SugaredLogger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

func (h ProductHandler) List(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.service.List(ctx)
	if err != nil {
		h.log.Errorw("List", "error", err.Error())
		respondFail(ctx, rw, http.StatusInternalServerError, "Failed to retrieve products", nil)
		return
	}

	respond(ctx, rw, http.StatusOK, products)
}

func (h ProductHandler) GetBySlug(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")

	product, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		switch {
		case errors.Is(err, intake.ErrProductNotFound):
			respondFail(ctx, rw, http.StatusNotFound, "Product not found", nil)
		default:
			h.log.Errorw("GetBySlug", "error", err.Error())
			respondFail(ctx, rw, http.StatusInternalServerError, "Failed to retrieve product", nil)
		}
		return
	}

	respond(ctx, rw, http.StatusOK, product)
}
