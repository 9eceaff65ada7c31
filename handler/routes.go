package handler

import (
	"net/http"

	intake "github.com/dawsos/intake-api"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Config carries the stores and logger the handlers depend on. A fresh
// Config per test gives full isolation; main builds one from the
// configured storage engine.
type Config struct {
	Log             *zap.SugaredLogger
	DemoRequests    intake.DemoRequestService
	ContactMessages intake.ContactMessageService
	Products        intake.ProductService
	Purchases       intake.PurchaseService
}

// Routes builds the API route tree. Callers mount it under /api.
func Routes(cfg Config) chi.Router {
	demo := NewDemoRequestHandler(cfg.DemoRequests, cfg.Log)
	contact := NewContactMessageHandler(cfg.ContactMessages, cfg.Log)
	product := NewProductHandler(cfg.Products, cfg.Log)
	purchase := NewPurchaseHandler(cfg.Purchases, cfg.Log)

	r := chi.NewRouter()

	r.Get("/health", Health)

	r.Route("/demo-requests", func(r chi.Router) {
		r.Post("/", demo.Create)
		r.Get("/", demo.List)
	})

	r.Route("/contact-messages", func(r chi.Router) {
		r.Post("/", contact.Create)
		r.Get("/", contact.List)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", product.List)
		r.Get("/{slug}", product.GetBySlug)
	})

	r.Post("/purchases", purchase.Create)

	return r
}

// Health is a liveness probe for the hosting environment.
func Health(rw http.ResponseWriter, r *http.Request) {
	respond(r.Context(), rw, http.StatusOK, envelope{Success: true, Message: "ok"})
}
