package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"product-catalog/internal/client"
	"product-catalog/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	log := logger.Instance()

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	baseURL := os.Getenv("CATALOG_BASE_URL")
	if baseURL == "" {
		log.Error("CATALOG_BASE_URL environment variable is not set")
		os.Exit(1)
	}

	company := flag.String("company", client.SentinelAll, "company code filter (e.g. AMZ)")
	category := flag.String("category", client.SentinelAll, "category filter (e.g. Laptop)")
	availability := flag.String("availability", client.SentinelAll, "availability filter (yes|no)")
	minPrice := flag.String("min-price", "", "minimum price")
	maxPrice := flag.String("max-price", "", "maximum price")
	minRating := flag.Float64("min-rating", 0, "client-side rating floor")
	sortOption := flag.String("sort", "", "sort option: name|price|rating|discount")
	sortBasis := flag.String("basis", client.BasisAscending, "sort basis: Ascending|Descending")
	page := flag.Int("page", 1, "page of the filtered view (9 per page)")
	flag.Parse()

	ctx := context.Background()
	catalog := client.NewCatalog(baseURL)

	// Reference lists, fetched once.
	companies, err := catalog.Companies(ctx)
	if err != nil {
		log.Error("Failed to fetch companies", slog.String("error", err.Error()))
	}
	categories, err := catalog.Categories(ctx)
	if err != nil {
		log.Error("Failed to fetch categories", slog.String("error", err.Error()))
	}

	fmt.Println("Companies:")
	for _, c := range companies {
		fmt.Printf("  %s (%s)\n", c.Name, c.Description)
	}
	fmt.Println("Categories:")
	for _, c := range categories {
		fmt.Printf("  %s\n", c.Name)
	}

	browser := client.NewBrowser(catalog)
	browser.SetSelection(ctx, client.Selection{
		Company:      *company,
		Category:     *category,
		Availability: *availability,
		MinPrice:     *minPrice,
		MaxPrice:     *maxPrice,
	})
	browser.SetMinRating(*minRating)
	browser.SetSort(*sortOption, *sortBasis)
	browser.SetPage(*page)

	products := browser.Page()
	if len(products) == 0 {
		fmt.Println("\nNo Data Found... Please try to change your filters.")
		return
	}

	fmt.Printf("\nPage %d of %d:\n", browser.CurrentPage(), browser.PageCount())
	for _, p := range products {
		inStock := "in stock"
		if p.Availability != "yes" {
			inStock = "out of stock"
		}
		fmt.Printf("  [%d] %s | %s/%s | %.2f (%.0f%% off) | rating %.1f | %s\n",
			p.ID, p.ProductName, p.Company, p.Category, p.Price, p.Discount, p.Rating, inStock)
	}
}
