package service

import (
	"context"
	"errors"

	middleware_http "product-catalog/internal/middleware/http"
	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
)

// ErrNotFound signals an empty scoped result or a missed id lookup. Handlers
// translate it into the route-specific 404 message.
var ErrNotFound = errors.New("not found")

// Scope is the route-derived filter merged into the query-derived filters.
// Zero value means the unscoped /products listing.
type Scope struct {
	Company  string
	Category string
}

func (s Scope) IsZero() bool {
	return s.Company == "" && s.Category == ""
}

// Merge combines scope and descriptor filters by logical AND. Scope fields
// never collide with filter field names (availability, price, rating).
func (s Scope) Merge(filters bson.M) bson.M {
	merged := bson.M{}
	for k, v := range filters {
		merged[k] = v
	}
	if s.Company != "" {
		merged["company"] = s.Company
	}
	if s.Category != "" {
		merged["category"] = s.Category
	}
	return merged
}

// Reader interfaces over the repositories; tests swap in fakes.
type ProductReader interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
	Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]model.Product, error)
	FindByID(ctx context.Context, id int, filter bson.M) (*model.Product, error)
}

type CompanyReader interface {
	FindAll(ctx context.Context) ([]model.Company, error)
}

type CategoryReader interface {
	FindAll(ctx context.Context) ([]model.Category, error)
}

var _ ProductReader = (*repository.ProductRepository)(nil)

type CatalogService struct {
	products   ProductReader
	companies  CompanyReader
	categories CategoryReader
}

var CatalogServiceTracer = otel.Tracer("CatalogService")

func NewCatalogService(products ProductReader, companies CompanyReader, categories CategoryReader) *CatalogService {
	return &CatalogService{
		products:   products,
		companies:  companies,
		categories: categories,
	}
}

// ListProducts runs the scoped count + paginated fetch. Scoped routes get
// totals recomputed from the scoped count; the unscoped listing reuses the
// descriptor's totals, which were counted against the same filter set.
func (s *CatalogService) ListProducts(ctx context.Context, scope Scope, d middleware_http.Descriptor) (*model.ProductList, error) {
	ctx, span := CatalogServiceTracer.Start(ctx, "CatalogService.ListProducts")
	defer span.End()

	filter := scope.Merge(d.Filters)

	totalItems := d.TotalItems
	totalPages := d.TotalPages
	if !scope.IsZero() {
		scoped, err := s.products.Count(ctx, filter)
		if err != nil {
			return nil, err
		}
		totalItems = scoped
		totalPages = middleware_http.TotalPages(scoped, d.Limit)
	}

	products, err := s.products.Find(ctx, filter, d.Sort, d.Skip, d.Limit)
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		if !scope.IsZero() {
			return nil, ErrNotFound
		}
		products = []model.Product{}
	}

	return &model.ProductList{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: d.CurrentPage,
		Products:    products,
	}, nil
}

// GetProduct fetches a single record by id under the same filter set as the
// collection queries, so e.g. an out-of-range minPrice hides the record.
func (s *CatalogService) GetProduct(ctx context.Context, id int, d middleware_http.Descriptor) (*model.ProductItem, error) {
	ctx, span := CatalogServiceTracer.Start(ctx, "CatalogService.GetProduct")
	defer span.End()

	product, err := s.products.FindByID(ctx, id, d.Filters)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &model.ProductItem{
		TotalItems:  1,
		TotalPages:  1,
		CurrentPage: d.CurrentPage,
		Product:     *product,
	}, nil
}

// ListCompanies returns every company. The pagination totals come from the
// descriptor's product filter context, as the API contract specifies.
func (s *CatalogService) ListCompanies(ctx context.Context, d middleware_http.Descriptor) (*model.CompanyList, error) {
	ctx, span := CatalogServiceTracer.Start(ctx, "CatalogService.ListCompanies")
	defer span.End()

	companies, err := s.companies.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []model.Company{}
	}

	return &model.CompanyList{
		TotalItems:  d.TotalItems,
		TotalPages:  d.TotalPages,
		CurrentPage: d.CurrentPage,
		Companies:   companies,
	}, nil
}

// ListCategories returns every category with the same totals behavior as
// ListCompanies.
func (s *CatalogService) ListCategories(ctx context.Context, d middleware_http.Descriptor) (*model.CategoryList, error) {
	ctx, span := CatalogServiceTracer.Start(ctx, "CatalogService.ListCategories")
	defer span.End()

	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []model.Category{}
	}

	return &model.CategoryList{
		TotalItems:  d.TotalItems,
		TotalPages:  d.TotalPages,
		CurrentPage: d.CurrentPage,
		Categories:  categories,
	}, nil
}
