package service

import (
	"context"
	"errors"
	"testing"

	middleware_http "product-catalog/internal/middleware/http"
	"product-catalog/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeProducts struct {
	count      int64
	countErr   error
	found      []model.Product
	findErr    error
	byID       *model.Product
	byIDErr    error
	lastFilter bson.M
	lastSort   bson.D
	lastSkip   int64
	lastLimit  int64
	countCalls int
}

func (f *fakeProducts) Count(ctx context.Context, filter bson.M) (int64, error) {
	f.countCalls++
	f.lastFilter = filter
	return f.count, f.countErr
}

func (f *fakeProducts) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]model.Product, error) {
	f.lastFilter = filter
	f.lastSort = sort
	f.lastSkip = skip
	f.lastLimit = limit
	return f.found, f.findErr
}

func (f *fakeProducts) FindByID(ctx context.Context, id int, filter bson.M) (*model.Product, error) {
	f.lastFilter = filter
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

type fakeCompanies struct {
	companies []model.Company
	err       error
}

func (f *fakeCompanies) FindAll(ctx context.Context) ([]model.Company, error) {
	return f.companies, f.err
}

type fakeCategories struct {
	categories []model.Category
	err        error
}

func (f *fakeCategories) FindAll(ctx context.Context) ([]model.Category, error) {
	return f.categories, f.err
}

func testDescriptor() middleware_http.Descriptor {
	return middleware_http.Descriptor{
		Filters:     bson.M{"availability": "yes"},
		Page:        2,
		Limit:       10,
		Skip:        10,
		TotalItems:  95,
		TotalPages:  10,
		CurrentPage: 2,
	}
}

func TestScopeMerge(t *testing.T) {
	scope := Scope{Company: "AMZ", Category: "Laptop"}
	filters := bson.M{"availability": "yes"}

	merged := scope.Merge(filters)

	if merged["company"] != "AMZ" || merged["category"] != "Laptop" {
		t.Errorf("merged = %v, want company and category fields", merged)
	}
	if merged["availability"] != "yes" {
		t.Errorf("merged = %v, want availability preserved", merged)
	}
	if _, ok := filters["company"]; ok {
		t.Error("Merge must not mutate the descriptor filters")
	}
}

func TestListProductsUnscopedReusesTotals(t *testing.T) {
	products := &fakeProducts{found: []model.Product{{ID: 1}, {ID: 2}}}
	svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

	list, err := svc.ListProducts(context.Background(), Scope{}, testDescriptor())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	if list.TotalItems != 95 || list.TotalPages != 10 || list.CurrentPage != 2 {
		t.Errorf("totals = %d/%d/%d, want descriptor's 95/10/2", list.TotalItems, list.TotalPages, list.CurrentPage)
	}
	if products.countCalls != 0 {
		t.Error("unscoped listing must not recount; it reuses the normalizer total")
	}
	if products.lastSkip != 10 || products.lastLimit != 10 {
		t.Errorf("skip/limit = %d/%d, want 10/10", products.lastSkip, products.lastLimit)
	}
}

func TestListProductsUnscopedEmptyIsNotAnError(t *testing.T) {
	products := &fakeProducts{found: nil}
	svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

	list, err := svc.ListProducts(context.Background(), Scope{}, testDescriptor())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if list.Products == nil || len(list.Products) != 0 {
		t.Errorf("products = %v, want non-nil empty slice", list.Products)
	}
}

func TestListProductsScopedRecomputesTotals(t *testing.T) {
	products := &fakeProducts{count: 23, found: []model.Product{{ID: 7, Company: "AMZ"}}}
	svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

	list, err := svc.ListProducts(context.Background(), Scope{Company: "AMZ"}, testDescriptor())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	if list.TotalItems != 23 {
		t.Errorf("totalItems = %d, want scoped count 23", list.TotalItems)
	}
	if list.TotalPages != 3 {
		t.Errorf("totalPages = %d, want ceil(23/10) = 3", list.TotalPages)
	}
	if products.lastFilter["company"] != "AMZ" {
		t.Errorf("filter = %v, want company scope merged in", products.lastFilter)
	}
	if products.lastFilter["availability"] != "yes" {
		t.Errorf("filter = %v, want descriptor filters preserved", products.lastFilter)
	}
}

func TestListProductsScopedEmptyIsNotFound(t *testing.T) {
	products := &fakeProducts{count: 0, found: nil}
	svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

	_, err := svc.ListProducts(context.Background(), Scope{Category: "Laptop"}, testDescriptor())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListProductsStoreErrorPropagates(t *testing.T) {
	boom := errors.New("network timeout")
	products := &fakeProducts{countErr: boom}
	svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

	_, err := svc.ListProducts(context.Background(), Scope{Company: "FLP"}, testDescriptor())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped store error", err)
	}
}

func TestGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		products := &fakeProducts{byID: &model.Product{ID: 146, ProductName: "Laptop 16"}}
		svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

		item, err := svc.GetProduct(context.Background(), 146, testDescriptor())
		if err != nil {
			t.Fatalf("GetProduct: %v", err)
		}
		if item.TotalItems != 1 || item.TotalPages != 1 {
			t.Errorf("totals = %d/%d, want 1/1", item.TotalItems, item.TotalPages)
		}
		if item.CurrentPage != 2 {
			t.Errorf("currentPage = %d, want descriptor's 2", item.CurrentPage)
		}
		if item.Product.ID != 146 {
			t.Errorf("product id = %d, want 146", item.Product.ID)
		}
		if products.lastFilter["availability"] != "yes" {
			t.Error("id lookup must apply the same filter set as collection queries")
		}
	})

	t.Run("miss maps to ErrNotFound", func(t *testing.T) {
		products := &fakeProducts{byIDErr: mongo.ErrNoDocuments}
		svc := NewCatalogService(products, &fakeCompanies{}, &fakeCategories{})

		_, err := svc.GetProduct(context.Background(), 999999, testDescriptor())
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestListCompaniesCarriesProductTotals(t *testing.T) {
	companies := &fakeCompanies{companies: []model.Company{{ID: 1, Name: "AMZ"}}}
	svc := NewCatalogService(&fakeProducts{}, companies, &fakeCategories{})

	list, err := svc.ListCompanies(context.Background(), testDescriptor())
	if err != nil {
		t.Fatalf("ListCompanies: %v", err)
	}
	// Totals come from the product filter context, per the API contract.
	if list.TotalItems != 95 || list.TotalPages != 10 {
		t.Errorf("totals = %d/%d, want 95/10", list.TotalItems, list.TotalPages)
	}
	if len(list.Companies) != 1 || list.Companies[0].Name != "AMZ" {
		t.Errorf("companies = %v", list.Companies)
	}
}

func TestListCategoriesEmptyIsNonNil(t *testing.T) {
	svc := NewCatalogService(&fakeProducts{}, &fakeCompanies{}, &fakeCategories{})

	list, err := svc.ListCategories(context.Background(), testDescriptor())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if list.Categories == nil {
		t.Error("categories must encode as [] not null")
	}
}
