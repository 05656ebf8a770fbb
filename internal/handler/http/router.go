package http

import (
	"context"
	"net/http"

	middleware_http "product-catalog/internal/middleware/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the full route surface. The query normalizer runs on every
// catalog route, getAll included, so their envelopes carry the product
// filter totals.
func NewRouter(globalCtx context.Context, catalog *CatalogHandler, health *HealthHandler, normalize func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware_http.TraceMiddleware(globalCtx))
	r.Use(middleware_http.CORS())

	r.Get("/", Docs)
	if health != nil {
		r.Get("/health", health.Check)
	}

	r.Group(func(r chi.Router) {
		r.Use(normalize)

		r.Get("/company/getAll", catalog.Companies)
		r.Get("/category/getAll", catalog.Categories)
		r.Get("/products", catalog.Products)
		r.Get("/products/{id}", catalog.ProductByID)
		r.Get("/category/{category}/products", catalog.ProductsByCategory)
		r.Get("/company/{company}/products", catalog.ProductsByCompany)
		r.Get("/company/{company}/category/{category}/products", catalog.ProductsByCompanyAndCategory)
	})

	return r
}
