package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"product-catalog/internal/logger"
	middleware_http "product-catalog/internal/middleware/http"
	"product-catalog/internal/model"
	"product-catalog/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
)

// CatalogAPI is the service surface the handlers need; tests substitute a
// mock implementation.
type CatalogAPI interface {
	ListProducts(ctx context.Context, scope service.Scope, d middleware_http.Descriptor) (*model.ProductList, error)
	GetProduct(ctx context.Context, id int, d middleware_http.Descriptor) (*model.ProductItem, error)
	ListCompanies(ctx context.Context, d middleware_http.Descriptor) (*model.CompanyList, error)
	ListCategories(ctx context.Context, d middleware_http.Descriptor) (*model.CategoryList, error)
}

type CatalogHandler struct {
	service CatalogAPI
}

var CatalogHandlerTracer = otel.Tracer("HttpCatalogHandler")

func NewCatalogHandler(service CatalogAPI) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, model.ErrorMessage{Message: message})
}

// Products serves the unscoped listing. An empty result is a 200 with an
// empty array, unlike the scoped routes.
func (h *CatalogHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx, span := CatalogHandlerTracer.Start(r.Context(), "HttpCatalogHandler.Products")
	defer span.End()

	d, ok := middleware_http.DescriptorFrom(ctx)
	if !ok {
		http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
		return
	}

	list, err := h.service.ListProducts(ctx, service.Scope{}, d)
	if err != nil {
		logger.Error(ctx, "Error fetching products", slog.String("error", err.Error()))
		http.Error(w, "Error fetching products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) ProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := CatalogHandlerTracer.Start(r.Context(), "HttpCatalogHandler.ProductByID")
	defer span.End()

	d, ok := middleware_http.DescriptorFrom(ctx)
	if !ok {
		http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
		return
	}

	// Non-numeric ids can match nothing; treat them as a miss.
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		notFound(w, "Product not found")
		return
	}

	item, err := h.service.GetProduct(ctx, id, d)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(w, "Product not found")
			return
		}
		logger.Error(ctx, "Error finding product by ID", slog.String("error", err.Error()))
		http.Error(w, "Error finding product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	scope := service.Scope{Category: chi.URLParam(r, "category")}
	h.scopedProducts(w, r, "HttpCatalogHandler.ProductsByCategory", scope,
		"No products found in this category")
}

func (h *CatalogHandler) ProductsByCompany(w http.ResponseWriter, r *http.Request) {
	scope := service.Scope{Company: chi.URLParam(r, "company")}
	h.scopedProducts(w, r, "HttpCatalogHandler.ProductsByCompany", scope,
		"No products found for this company")
}

func (h *CatalogHandler) ProductsByCompanyAndCategory(w http.ResponseWriter, r *http.Request) {
	scope := service.Scope{
		Company:  chi.URLParam(r, "company"),
		Category: chi.URLParam(r, "category"),
	}
	h.scopedProducts(w, r, "HttpCatalogHandler.ProductsByCompanyAndCategory", scope,
		"No products found for this company in this category")
}

// scopedProducts is the shared path for the three scoped listings; only the
// scope and the empty-result message differ.
func (h *CatalogHandler) scopedProducts(w http.ResponseWriter, r *http.Request, spanName string, scope service.Scope, emptyMessage string) {
	ctx, span := CatalogHandlerTracer.Start(r.Context(), spanName)
	defer span.End()

	d, ok := middleware_http.DescriptorFrom(ctx)
	if !ok {
		http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
		return
	}

	list, err := h.service.ListProducts(ctx, scope, d)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			notFound(w, emptyMessage)
			return
		}
		logger.Error(ctx, "Error finding products", slog.String("error", err.Error()))
		http.Error(w, "Error finding products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) Companies(w http.ResponseWriter, r *http.Request) {
	ctx, span := CatalogHandlerTracer.Start(r.Context(), "HttpCatalogHandler.Companies")
	defer span.End()

	d, ok := middleware_http.DescriptorFrom(ctx)
	if !ok {
		http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
		return
	}

	list, err := h.service.ListCompanies(ctx, d)
	if err != nil {
		logger.Error(ctx, "Error fetching data from database", slog.String("error", err.Error()))
		http.Error(w, "Error fetching data from database", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	ctx, span := CatalogHandlerTracer.Start(r.Context(), "HttpCatalogHandler.Categories")
	defer span.End()

	d, ok := middleware_http.DescriptorFrom(ctx)
	if !ok {
		http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
		return
	}

	list, err := h.service.ListCategories(ctx, d)
	if err != nil {
		logger.Error(ctx, "Error fetching data from database", slog.String("error", err.Error()))
		http.Error(w, "Error fetching data from database", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
