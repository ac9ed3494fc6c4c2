// Package presenter turns derived pages into what the HTML, JSON and terminal
// layouts display, including the name, price and image fallbacks.
package presenter

import (
	"fmt"
	"net/url"
	"strconv"

	"catalogview/internal/models"
)

const (
	// DefaultPlaceholderImage is shown for products without images or whose image fails to load.
	DefaultPlaceholderImage = "https://via.placeholder.com/150"
	UnnamedProduct          = "Unnamed Product"
	PriceUnavailable        = "N/A"
)

// Presenter builds display rows. Both HTML layouts and the terminal use the same rows.
type Presenter struct {
	placeholder string
}

// New creates a Presenter. An empty placeholder falls back to DefaultPlaceholderImage.
func New(placeholderURL string) *Presenter {
	if placeholderURL == "" {
		placeholderURL = DefaultPlaceholderImage
	}
	return &Presenter{placeholder: placeholderURL}
}

// Placeholder returns the fixed placeholder image URL.
func (p *Presenter) Placeholder() string {
	return p.placeholder
}

// ImageURL returns the first image of the product or the placeholder.
func (p *Presenter) ImageURL(product models.Product) string {
	if len(product.Images) == 0 || product.Images[0] == "" {
		return p.placeholder
	}
	return product.Images[0]
}

// DisplayName returns the product name or the unnamed fallback.
func DisplayName(product models.Product) string {
	if product.Name == nil {
		return UnnamedProduct
	}
	return *product.Name
}

// DisplayPrice returns the price with two decimals, or N/A when it is not set.
func DisplayPrice(product models.Product) string {
	if !product.Price.Valid {
		return PriceUnavailable
	}
	return product.Price.Decimal.StringFixed(2)
}

// Row is one product as displayed in a card or a table line.
type Row struct {
	ID          int64  `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	FallbackURL string `json:"fallback_url"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Rows converts products into display rows, keeping their order.
func (p *Presenter) Rows(products []models.Product) []Row {
	rows := make([]Row, 0, len(products))
	for _, product := range products {
		rows = append(rows, Row{
			ID:          product.ID,
			SKU:         product.SKU,
			Name:        DisplayName(product),
			Price:       DisplayPrice(product),
			ImageURL:    p.ImageURL(product),
			FallbackURL: p.placeholder,
			Category:    product.ParentCategory.DisplayLabel,
			Description: product.Description,
		})
	}
	return rows
}

// PageLink is one entry of the page-number navigation bar.
type PageLink struct {
	Number int
	Active bool
	URL    string
}

// PageLinks returns one link per page 1..totalPages. Following a link only sets the page.
func PageLinks(basePath string, totalPages, current int) []PageLink {
	links := make([]PageLink, 0, totalPages)
	for n := 1; n <= totalPages; n++ {
		links = append(links, PageLink{
			Number: n,
			Active: n == current,
			URL:    basePath + "?" + url.Values{"page": {strconv.Itoa(n)}}.Encode(),
		})
	}
	return links
}

// FilterOption is one entry of the filter select control.
type FilterOption struct {
	Value    string
	Label    string
	Selected bool
}

// ListView is everything the listing templates need.
type ListView struct {
	ViewID       string
	Status       string
	Message      string
	Search       string
	Filters      []FilterOption
	Rows         []Row
	Pages        []PageLink
	Page         int
	TotalPages   int
	MatchedCount int
	BasePath     string
	Placeholder  string
}

// ListView prepares a derived page for rendering under basePath.
func (p *Presenter) ListView(page models.Page, basePath string) ListView {
	filters := make([]FilterOption, 0, len(models.FilterModes))
	for _, mode := range models.FilterModes {
		filters = append(filters, FilterOption{
			Value:    string(mode),
			Label:    mode.Label(),
			Selected: mode == page.State.Filter,
		})
	}

	view := ListView{
		ViewID:       page.ViewID,
		Status:       string(page.Status),
		Message:      page.Message,
		Search:       page.State.Search,
		Filters:      filters,
		Page:         page.State.Page,
		TotalPages:   page.TotalPages,
		MatchedCount: page.MatchedCount,
		BasePath:     basePath,
		Placeholder:  p.placeholder,
	}
	if page.Status == models.StatusReady {
		view.Rows = p.Rows(page.Items)
		view.Pages = PageLinks(basePath, page.TotalPages, page.State.Page)
	}
	return view
}

// Summary is the "Page x of y" caption.
func (v ListView) Summary() string {
	return fmt.Sprintf("Page %d of %d (%d matching products)", v.Page, v.TotalPages, v.MatchedCount)
}
