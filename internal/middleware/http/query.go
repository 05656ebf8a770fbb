package middleware_http

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"product-catalog/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.opentelemetry.io/otel"
)

var queryTracer = otel.Tracer("QueryNormalizer")

const (
	DefaultPage      = int64(1)
	DefaultLimit     = int64(10)
	DefaultMinRating = 0.0
	DefaultMaxRating = 5.0
)

// Descriptor is the normalized query bundle attached to the request context,
// consumed by the catalog service and handlers downstream.
type Descriptor struct {
	Filters     bson.M
	Page        int64
	Limit       int64
	Skip        int64
	Sort        bson.D
	TotalItems  int64
	TotalPages  int64
	CurrentPage int64
}

// ProductStats is the slice of the product repository the normalizer needs.
type ProductStats interface {
	MaxPrice(ctx context.Context) (float64, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type descriptorKey struct{}

// WithDescriptor returns ctx carrying d.
func WithDescriptor(ctx context.Context, d Descriptor) context.Context {
	return context.WithValue(ctx, descriptorKey{}, d)
}

// DescriptorFrom extracts the descriptor set by QueryNormalizer.
func DescriptorFrom(ctx context.Context) (Descriptor, bool) {
	d, ok := ctx.Value(descriptorKey{}).(Descriptor)
	return d, ok
}

// QueryNormalizer builds the filter/pagination/sort descriptor for catalog
// routes. The price ceiling defaults to the current collection-wide maximum,
// and totalItems counts the unscoped product match; route-level scoping
// narrows the count later in the service.
func QueryNormalizer(stats ProductStats) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := queryTracer.Start(r.Context(), "QueryNormalizer")
			defer span.End()

			maxPrice, err := stats.MaxPrice(ctx)
			if err != nil {
				logger.Error(ctx, "Error in query middleware", slog.String("error", err.Error()))
				http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
				return
			}

			q := r.URL.Query()
			filters := BuildFilters(q, maxPrice)

			page := parseCount(q.Get("page"), DefaultPage)
			limit := parseCount(q.Get("limit"), DefaultLimit)

			totalItems, err := stats.Count(ctx, filters)
			if err != nil {
				logger.Error(ctx, "Error in query middleware", slog.String("error", err.Error()))
				http.Error(w, "Error processing query parameters", http.StatusInternalServerError)
				return
			}

			d := Descriptor{
				Filters:     filters,
				Page:        page,
				Limit:       limit,
				Skip:        (page - 1) * limit,
				Sort:        ParseSort(q.Get("sortOn")),
				TotalItems:  totalItems,
				TotalPages:  TotalPages(totalItems, limit),
				CurrentPage: page,
			}

			next.ServeHTTP(w, r.WithContext(WithDescriptor(r.Context(), d)))
		})
	}
}

// BuildFilters assembles the Mongo filter document from raw query values.
// availability is an exact match and is dropped entirely when empty; price
// and rating are always range-constrained.
func BuildFilters(q url.Values, maxPrice float64) bson.M {
	filters := bson.M{
		"price": bson.M{
			"$gte": parseBound(q.Get("minPrice"), 0),
			"$lte": parseBound(q.Get("maxPrice"), maxPrice),
		},
		"rating": bson.M{
			"$gte": parseBound(q.Get("minRating"), DefaultMinRating),
			"$lte": parseBound(q.Get("maxRating"), DefaultMaxRating),
		},
	}
	if availability := q.Get("availability"); availability != "" {
		filters["availability"] = availability
	}
	return filters
}

// ParseSort turns "<field>-<direction>" into a Mongo sort document. "desc" maps
// to descending, anything else to ascending; empty input means natural order.
// There is no field allowlist; unknown fields sort as missing-everywhere.
func ParseSort(sortOn string) bson.D {
	if sortOn == "" {
		return nil
	}
	field, direction, _ := strings.Cut(sortOn, "-")
	order := 1
	if direction == "desc" {
		order = -1
	}
	return bson.D{{Key: field, Value: order}}
}

func TotalPages(totalItems, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (totalItems + limit - 1) / limit
}

// parseCount coerces page/limit input; non-numeric or non-positive values
// fall back to the default rather than erroring.
func parseCount(raw string, def int64) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// parseBound coerces a numeric bound; malformed input falls back to the
// default, mirroring the page/limit permissiveness.
func parseBound(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}
