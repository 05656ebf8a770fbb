package client

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"
)

// PageSize is the fixed client-side page size.
const PageSize = 9

// Sort options over the fetched set, applied independently of any
// server-side sort.
const (
	SortByName     = "name"
	SortByPrice    = "price"
	SortByRating   = "rating"
	SortByDiscount = "discount"

	BasisAscending  = "Ascending"
	BasisDescending = "Descending"
)

// Browser is the in-memory view model of the catalog browsing client. It
// fetches the product collection when the server-side selection changes and
// applies the rating filter, sort, and pagination locally.
type Browser struct {
	catalog *Catalog

	mu         sync.Mutex
	generation uint64

	sel        Selection
	minRating  float64
	sortOption string
	sortBasis  string

	fetched []model.Product
	view    []model.Product
	page    int
}

func NewBrowser(catalog *Catalog) *Browser {
	return &Browser{
		catalog:   catalog,
		sortBasis: BasisAscending,
		page:      1,
	}
}

// SetSelection updates the server-side filters and re-fetches. Each fetch is
// stamped with a generation; a response that arrives after a newer selection
// was made is discarded, so racing fetches cannot reorder the list.
func (b *Browser) SetSelection(ctx context.Context, sel Selection) {
	b.mu.Lock()
	b.generation++
	gen := b.generation
	b.sel = sel
	b.page = 1
	b.mu.Unlock()

	list, err := b.catalog.Products(ctx, sel)

	b.mu.Lock()
	defer b.mu.Unlock()
	if gen != b.generation {
		// Superseded by a newer selection while in flight.
		return
	}

	switch {
	case err == nil:
		b.fetched = list.Products
	case errors.Is(err, ErrNotFound):
		// Scoped query matched nothing; an empty view, not a failure.
		b.fetched = nil
	default:
		// Network failures keep the last fetched state.
		logger.Error(ctx, "Failed to fetch products", slog.String("error", err.Error()))
		return
	}
	b.rebuildLocked()
}

// SetMinRating applies the client-side rating floor. The current page is
// kept; only filter (selection) changes reset it.
func (b *Browser) SetMinRating(minRating float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.minRating = minRating
	b.rebuildLocked()
}

// SetSort changes the sort option and basis without re-fetching.
func (b *Browser) SetSort(option, basis string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sortOption = option
	b.sortBasis = basis
	b.rebuildLocked()
}

func (b *Browser) rebuildLocked() {
	b.view = applyView(b.fetched, b.minRating, b.sortOption, b.sortBasis)
}

// applyView filters by rating floor, sorts by the chosen option, and
// reverses for a descending basis. Membership never depends on the sort.
func applyView(products []model.Product, minRating float64, option, basis string) []model.Product {
	view := make([]model.Product, 0, len(products))
	for _, p := range products {
		if minRating > 0 && p.Rating < minRating {
			continue
		}
		view = append(view, p)
	}

	if option != "" {
		sort.SliceStable(view, func(i, j int) bool {
			a, b := view[i], view[j]
			switch option {
			case SortByPrice:
				return a.Price < b.Price
			case SortByRating:
				return a.Rating > b.Rating
			case SortByDiscount:
				return a.Discount > b.Discount
			case SortByName:
				return strings.Compare(a.ProductName, b.ProductName) < 0
			default:
				return false
			}
		})
		if basis == BasisDescending {
			for i, j := 0, len(view)-1; i < j; i, j = i+1, j-1 {
				view[i], view[j] = view[j], view[i]
			}
		}
	}
	return view
}

// Page returns the current page window of the filtered, sorted view.
func (b *Browser) Page() []model.Product {
	b.mu.Lock()
	defer b.mu.Unlock()

	start := (b.page - 1) * PageSize
	if start >= len(b.view) {
		return nil
	}
	end := start + PageSize
	if end > len(b.view) {
		end = len(b.view)
	}
	page := make([]model.Product, end-start)
	copy(page, b.view[start:end])
	return page
}

func (b *Browser) PageCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return (len(b.view) + PageSize - 1) / PageSize
}

func (b *Browser) CurrentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

// SetPage clamps into the valid range; an empty view pins to page 1.
func (b *Browser) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	last := (len(b.view) + PageSize - 1) / PageSize
	if last < 1 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	b.page = page
}
