package model

// Every collection response carries the same pagination header next to its
// payload key.

type ProductList struct {
	TotalItems  int64     `json:"totalItems"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int64     `json:"currentPage"`
	Products    []Product `json:"products"`
}

type ProductItem struct {
	TotalItems  int64   `json:"totalItems"`
	TotalPages  int64   `json:"totalPages"`
	CurrentPage int64   `json:"currentPage"`
	Product     Product `json:"product"`
}

type CompanyList struct {
	TotalItems  int64     `json:"totalItems"`
	TotalPages  int64     `json:"totalPages"`
	CurrentPage int64     `json:"currentPage"`
	Companies   []Company `json:"companies"`
}

type CategoryList struct {
	TotalItems  int64      `json:"totalItems"`
	TotalPages  int64      `json:"totalPages"`
	CurrentPage int64      `json:"currentPage"`
	Categories  []Category `json:"categories"`
}

// ErrorMessage is the 404 body for scoped-empty and not-found-by-id cases.
type ErrorMessage struct {
	Message string `json:"message"`
}
