package models

import "time"

// DefaultPageSize is the number of search-matched products in one page window.
const DefaultPageSize = 10

// FilterMode selects which products of a page window are shown.
type FilterMode string

const (
	FilterShowAll              FilterMode = "all"
	FilterHideNullPrice        FilterMode = "hide-null-price"
	FilterHidePlaceholderImage FilterMode = "hide-placeholder-image"
)

// FilterModes lists the selectable modes in display order.
var FilterModes = []FilterMode{FilterShowAll, FilterHideNullPrice, FilterHidePlaceholderImage}

// Label is the human readable text of a filter option.
func (m FilterMode) Label() string {
	switch m {
	case FilterHideNullPrice:
		return "Hide products without price"
	case FilterHidePlaceholderImage:
		return "Hide products without image"
	default:
		return "Show all"
	}
}

// LoadStatus is the state of a view's one-shot catalog fetch.
type LoadStatus string

const (
	StatusLoading LoadStatus = "loading"
	StatusReady   LoadStatus = "ready"
	StatusError   LoadStatus = "error"
)

// ViewState is the user-adjustable state of one product list view.
type ViewState struct {
	Search   string     `json:"search"`
	Filter   FilterMode `json:"filter"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

// DefaultViewState returns the state a fresh view starts from.
func DefaultViewState(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ViewState{
		Filter:   FilterShowAll,
		Page:     1,
		PageSize: pageSize,
	}
}

// ViewUpdate carries the fields a user changed. Nil fields are left untouched.
type ViewUpdate struct {
	Search *string     `json:"search" validate:"omitnil,max=200"`
	Filter *FilterMode `json:"filter" validate:"omitnil,oneof=all hide-null-price hide-placeholder-image"`
	Page   *int        `json:"page" validate:"omitnil,gte=1"`
}

// View is one activation of the product list: its fetched working collection and state.
type View struct {
	ID         string     `json:"id"`
	Status     LoadStatus `json:"status"`
	Products   []Product  `json:"-"`
	State      ViewState  `json:"state"`
	Err        error      `json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	LastSeenAt time.Time  `json:"last_seen_at"`
}

// Page is the derived, visible slice of a view.
type Page struct {
	ViewID       string     `json:"view_id"`
	Status       LoadStatus `json:"status"`
	Message      string     `json:"message,omitempty"`
	State        ViewState  `json:"state"`
	Items        []Product  `json:"items"`
	MatchedCount int        `json:"matched_count"`
	TotalPages   int        `json:"total_pages"`
}

// GenericErrorMessage is shown in place of the product list whenever the catalog could not be loaded.
const GenericErrorMessage = "Failed to load products. Please try again later."
