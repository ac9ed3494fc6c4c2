package services

import (
	"strings"

	"catalogview/internal/models"

	"golang.org/x/text/cases"
)

// Search returns the products whose name contains query, ignoring case.
// An empty query returns the input unchanged. Products without a name never match.
func Search(products []models.Product, query string) []models.Product {
	if query == "" {
		return products
	}
	folder := cases.Fold()
	needle := folder.String(query)

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Name == nil {
			continue
		}
		if strings.Contains(folder.String(*p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// TotalPages returns ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Paginate returns the half-open window [(page-1)*pageSize, page*pageSize) of products.
// Pages outside the collection yield an empty window.
func Paginate(products []models.Product, page, pageSize int) []models.Product {
	if page < 1 || pageSize <= 0 {
		return []models.Product{}
	}
	// Compare page counts first so (page-1)*pageSize cannot overflow.
	if page-1 >= TotalPages(len(products), pageSize) {
		return []models.Product{}
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(products))
	return products[start:end]
}

// ApplyFilter restricts a page window by mode. Unknown modes show everything.
func ApplyFilter(products []models.Product, mode models.FilterMode) []models.Product {
	var keep func(models.Product) bool
	switch mode {
	case models.FilterHideNullPrice:
		keep = models.Product.HasPrice
	case models.FilterHidePlaceholderImage:
		keep = models.Product.HasImage
	default:
		return products
	}

	visible := make([]models.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// Derive computes the visible page of a working collection.
// The order is fixed: search, then the page window, then the filter. The filter
// therefore never changes TotalPages and may leave a page short.
func Derive(products []models.Product, state models.ViewState) models.Page {
	matched := Search(products, state.Search)
	window := Paginate(matched, state.Page, state.PageSize)

	return models.Page{
		State:        state,
		Items:        ApplyFilter(window, state.Filter),
		MatchedCount: len(matched),
		TotalPages:   TotalPages(len(matched), state.PageSize),
	}
}

// ExcludeUnnamed drops products whose name is null, keeping the order.
func ExcludeUnnamed(products []models.Product) []models.Product {
	named := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.HasName() {
			named = append(named, p)
		}
	}
	return named
}
