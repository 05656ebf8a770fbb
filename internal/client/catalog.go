package client

import (
	"context"
	"errors"
	"net/url"
	"time"

	"product-catalog/internal/model"
)

// ErrNotFound reports a 404 from the API: a missed id or a scoped query with
// no matching products.
var ErrNotFound = errors.New("catalog: not found")

// SentinelAll is the selector value meaning "no constraint".
const SentinelAll = "All"

// Selection holds the server-side filter state of the browser. Empty string
// and SentinelAll both mean unset.
type Selection struct {
	Company      string
	Category     string
	Availability string
	MinPrice     string
	MaxPrice     string
}

func isSet(v string) bool {
	return v != "" && v != SentinelAll
}

func (s Selection) query() map[string]string {
	q := map[string]string{}
	if isSet(s.Availability) {
		q["availability"] = s.Availability
	}
	if s.MinPrice != "" {
		q["minPrice"] = s.MinPrice
	}
	if s.MaxPrice != "" {
		q["maxPrice"] = s.MaxPrice
	}
	return q
}

// path picks among the four endpoint shapes by which selectors are concrete.
func (s Selection) path() string {
	company := isSet(s.Company)
	category := isSet(s.Category)
	switch {
	case company && category:
		return "/company/" + url.PathEscape(s.Company) + "/category/" + url.PathEscape(s.Category) + "/products"
	case category:
		return "/category/" + url.PathEscape(s.Category) + "/products"
	case company:
		return "/company/" + url.PathEscape(s.Company) + "/products"
	default:
		return "/products"
	}
}

// Catalog is the typed client for the catalog API.
type Catalog struct {
	http *HTTPClient
}

func NewCatalog(baseURL string) *Catalog {
	return &Catalog{
		http: NewHTTPClient(baseURL, 5*time.Second),
	}
}

func (c *Catalog) Companies(ctx context.Context) ([]model.Company, error) {
	var list model.CompanyList
	if err := c.http.Get("/company/getAll", &list, RequestOptions{Context: ctx}); err != nil {
		return nil, err
	}
	return list.Companies, nil
}

func (c *Catalog) Categories(ctx context.Context) ([]model.Category, error) {
	var list model.CategoryList
	if err := c.http.Get("/category/getAll", &list, RequestOptions{Context: ctx}); err != nil {
		return nil, err
	}
	return list.Categories, nil
}

func (c *Catalog) Products(ctx context.Context, sel Selection) (*model.ProductList, error) {
	var list model.ProductList
	err := c.http.Get(sel.path(), &list, RequestOptions{
		Context:     ctx,
		QueryParams: sel.query(),
	})
	if err != nil {
		return nil, err
	}
	return &list, nil
}
