package middleware_http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type stubStats struct {
	maxPrice    float64
	maxPriceErr error
	count       int64
	countErr    error
	lastFilter  bson.M
}

func (s *stubStats) MaxPrice(ctx context.Context) (float64, error) {
	return s.maxPrice, s.maxPriceErr
}

func (s *stubStats) Count(ctx context.Context, filter bson.M) (int64, error) {
	s.lastFilter = filter
	return s.count, s.countErr
}

func TestBuildFiltersDefaults(t *testing.T) {
	filters := BuildFilters(url.Values{}, 4200)

	if _, ok := filters["availability"]; ok {
		t.Error("empty availability must be dropped from the filter set")
	}

	price, ok := filters["price"].(bson.M)
	if !ok {
		t.Fatalf("price filter missing: %v", filters)
	}
	if price["$gte"] != 0.0 || price["$lte"] != 4200.0 {
		t.Errorf("price bounds = [%v, %v], want [0, 4200]", price["$gte"], price["$lte"])
	}

	rating, ok := filters["rating"].(bson.M)
	if !ok {
		t.Fatalf("rating filter missing: %v", filters)
	}
	if rating["$gte"] != 0.0 || rating["$lte"] != 5.0 {
		t.Errorf("rating bounds = [%v, %v], want [0, 5]", rating["$gte"], rating["$lte"])
	}
}

func TestBuildFiltersExplicitBounds(t *testing.T) {
	q := url.Values{
		"availability": {"yes"},
		"minPrice":     {"2000"},
		"maxPrice":     {"5000"},
		"minRating":    {"3"},
		"maxRating":    {"4.5"},
	}
	filters := BuildFilters(q, 9999)

	if filters["availability"] != "yes" {
		t.Errorf("availability = %v, want yes", filters["availability"])
	}
	price := filters["price"].(bson.M)
	if price["$gte"] != 2000.0 || price["$lte"] != 5000.0 {
		t.Errorf("price bounds = [%v, %v], want [2000, 5000]", price["$gte"], price["$lte"])
	}
	rating := filters["rating"].(bson.M)
	if rating["$gte"] != 3.0 || rating["$lte"] != 4.5 {
		t.Errorf("rating bounds = [%v, %v], want [3, 4.5]", rating["$gte"], rating["$lte"])
	}
}

func TestBuildFiltersMalformedNumbersCoerce(t *testing.T) {
	q := url.Values{
		"minPrice":  {"cheap"},
		"maxPrice":  {"expensive"},
		"minRating": {"bad"},
	}
	filters := BuildFilters(q, 3000)

	price := filters["price"].(bson.M)
	if price["$gte"] != 0.0 || price["$lte"] != 3000.0 {
		t.Errorf("malformed price bounds = [%v, %v], want defaults [0, 3000]", price["$gte"], price["$lte"])
	}
	rating := filters["rating"].(bson.M)
	if rating["$gte"] != 0.0 {
		t.Errorf("malformed minRating = %v, want 0", rating["$gte"])
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		name   string
		sortOn string
		want   bson.D
	}{
		{"absent means natural order", "", nil},
		{"explicit ascending", "price-asc", bson.D{{Key: "price", Value: 1}}},
		{"descending", "price-desc", bson.D{{Key: "price", Value: -1}}},
		{"unknown direction is ascending", "rating-up", bson.D{{Key: "rating", Value: 1}}},
		{"bare field is ascending", "discount", bson.D{{Key: "discount", Value: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSort(tt.sortOn)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseSort(%q) = %v, want %v", tt.sortOn, got, tt.want)
			}
			if len(got) == 1 && (got[0].Key != tt.want[0].Key || got[0].Value != tt.want[0].Value) {
				t.Errorf("ParseSort(%q) = %v, want %v", tt.sortOn, got, tt.want)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{27, 9, 3},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.total, tt.limit); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestQueryNormalizerDescriptor(t *testing.T) {
	stats := &stubStats{maxPrice: 5000, count: 95}

	var captured Descriptor
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, ok = DescriptorFrom(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/products?page=3&limit=20&sortOn=price-desc&availability=yes", nil)
	rec := httptest.NewRecorder()
	QueryNormalizer(stats)(next).ServeHTTP(rec, req)

	if !ok {
		t.Fatal("descriptor not attached to request context")
	}
	if captured.Page != 3 || captured.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want 3/20", captured.Page, captured.Limit)
	}
	if captured.Skip != 40 {
		t.Errorf("skip = %d, want (3-1)*20 = 40", captured.Skip)
	}
	if captured.TotalItems != 95 {
		t.Errorf("totalItems = %d, want 95", captured.TotalItems)
	}
	if captured.TotalPages != 5 {
		t.Errorf("totalPages = %d, want ceil(95/20) = 5", captured.TotalPages)
	}
	if captured.CurrentPage != 3 {
		t.Errorf("currentPage = %d, want 3", captured.CurrentPage)
	}
	if len(captured.Sort) != 1 || captured.Sort[0].Key != "price" || captured.Sort[0].Value != -1 {
		t.Errorf("sort = %v, want price descending", captured.Sort)
	}
	if stats.lastFilter["availability"] != "yes" {
		t.Errorf("count filter = %v, want availability=yes present", stats.lastFilter)
	}
}

func TestQueryNormalizerPaginationDefaults(t *testing.T) {
	stats := &stubStats{maxPrice: 100, count: 4}

	var captured Descriptor
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = DescriptorFrom(r.Context())
	})

	// Non-numeric and non-positive input coerces to the defaults.
	req := httptest.NewRequest(http.MethodGet, "/products?page=abc&limit=-5", nil)
	rec := httptest.NewRecorder()
	QueryNormalizer(stats)(next).ServeHTTP(rec, req)

	if captured.Page != DefaultPage || captured.Limit != DefaultLimit {
		t.Errorf("page/limit = %d/%d, want defaults %d/%d", captured.Page, captured.Limit, DefaultPage, DefaultLimit)
	}
	if captured.Skip != 0 {
		t.Errorf("skip = %d, want 0", captured.Skip)
	}
}

func TestQueryNormalizerStoreError(t *testing.T) {
	tests := []struct {
		name  string
		stats *stubStats
	}{
		{"aggregate failure", &stubStats{maxPriceErr: errors.New("connection reset")}},
		{"count failure", &stubStats{maxPrice: 100, countErr: errors.New("cursor timeout")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/products", nil)
			rec := httptest.NewRecorder()
			QueryNormalizer(tt.stats)(next).ServeHTTP(rec, req)

			if called {
				t.Error("handler must not run after a store error")
			}
			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}
			if rec.Header().Get("Content-Type") == "application/json" {
				t.Error("store errors are plain text, not JSON")
			}
		})
	}
}
