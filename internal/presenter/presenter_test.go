package presenter_test

import (
	"bytes"
	"strings"
	"testing"

	"catalogview/internal/models"
	"catalogview/internal/presenter"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "https://img.example.com/placeholder.png"

func product(id int64, name string, price string, images ...string) models.Product {
	p := models.Product{ID: id, Name: models.StringPtr(name), Images: images}
	if price != "" {
		p.Price = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	return p
}

func TestImageURL(t *testing.T) {
	p := presenter.New(placeholder)

	assert.Equal(t, "https://cdn.example.com/a.png", p.ImageURL(product(1, "A", "", "https://cdn.example.com/a.png", "b.png")))
	assert.Equal(t, placeholder, p.ImageURL(product(2, "B", "")))
	assert.Equal(t, placeholder, p.ImageURL(product(3, "C", "", "")))
	assert.Equal(t, presenter.DefaultPlaceholderImage, presenter.New("").Placeholder())
}

func TestRowsFallBackToPlaceholderOnLoadError(t *testing.T) {
	p := presenter.New(placeholder)

	rows := p.Rows([]models.Product{product(1, "A", "", "a.png"), product(2, "B", "")})
	assert.Equal(t, "a.png", rows[0].ImageURL)
	assert.Equal(t, placeholder, rows[0].FallbackURL)
	assert.Equal(t, placeholder, rows[1].ImageURL)
	assert.Equal(t, placeholder, rows[1].FallbackURL)
}

func TestDisplayFallbacks(t *testing.T) {
	assert.Equal(t, presenter.UnnamedProduct, presenter.DisplayName(models.Product{ID: 1}))
	assert.Equal(t, "Chair", presenter.DisplayName(product(1, "Chair", "")))

	assert.Equal(t, presenter.PriceUnavailable, presenter.DisplayPrice(product(1, "Chair", "")))
	assert.Equal(t, "499.90", presenter.DisplayPrice(product(1, "Chair", "499.9")))
	assert.Equal(t, "0.00", presenter.DisplayPrice(product(1, "Chair", "0")))
}

func TestRowsKeepOrder(t *testing.T) {
	p := presenter.New(placeholder)
	rows := p.Rows([]models.Product{product(3, "C", "1"), product(1, "A", ""), product(2, "B", "2", "b.png")})

	require.Len(t, rows, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
	assert.Equal(t, placeholder, rows[1].ImageURL)
	assert.Equal(t, "b.png", rows[2].ImageURL)
	for _, r := range rows {
		assert.Equal(t, placeholder, r.FallbackURL)
	}
}

func TestPageLinks(t *testing.T) {
	links := presenter.PageLinks("/views/abc", 3, 2)

	require.Len(t, links, 3)
	for i, l := range links {
		assert.Equal(t, i+1, l.Number)
		assert.Equal(t, i == 1, l.Active)
	}
	assert.Equal(t, "/views/abc?page=3", links[2].URL)
	assert.Empty(t, presenter.PageLinks("/views/abc", 0, 1))
}

func TestListView(t *testing.T) {
	p := presenter.New(placeholder)
	page := models.Page{
		ViewID:       "abc",
		Status:       models.StatusReady,
		State:        models.ViewState{Search: "ch", Filter: models.FilterHideNullPrice, Page: 1, PageSize: 10},
		Items:        []models.Product{product(1, "Chair", "10")},
		MatchedCount: 1,
		TotalPages:   1,
	}

	view := p.ListView(page, "/views/abc")

	assert.Equal(t, "ch", view.Search)
	require.Len(t, view.Filters, 3)
	assert.True(t, view.Filters[1].Selected)
	assert.False(t, view.Filters[0].Selected)
	assert.Len(t, view.Rows, 1)
	assert.Len(t, view.Pages, 1)
	assert.Equal(t, "Page 1 of 1 (1 matching products)", view.Summary())

	page.Status = models.StatusError
	page.Message = models.GenericErrorMessage
	errView := p.ListView(page, "/views/abc")
	assert.Empty(t, errView.Rows)
	assert.Empty(t, errView.Pages)
	assert.Equal(t, models.GenericErrorMessage, errView.Message)
}

func TestRenderTerminal(t *testing.T) {
	p := presenter.New(placeholder)
	page := models.Page{
		Status:       models.StatusReady,
		State:        models.ViewState{Filter: models.FilterShowAll, Page: 1, PageSize: 10},
		Items:        []models.Product{product(1, "Chair", "10", "chair.png"), product(2, "Table", "")},
		MatchedCount: 2,
		TotalPages:   1,
	}
	view := p.ListView(page, "")

	var table bytes.Buffer
	require.NoError(t, presenter.RenderTerminal(&table, view, presenter.LayoutTable))
	out := table.String()
	assert.Contains(t, out, "Chair")
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, presenter.PriceUnavailable)
	assert.Contains(t, out, placeholder)
	assert.Contains(t, out, "Page 1 of 1")
	assert.Less(t, strings.Index(out, "Chair"), strings.Index(out, "Table"))

	var cards bytes.Buffer
	require.NoError(t, presenter.RenderTerminal(&cards, view, presenter.LayoutCards))
	assert.Contains(t, cards.String(), "[1] Chair")
	assert.Contains(t, cards.String(), "Image: chair.png")
	assert.Less(t, strings.Index(cards.String(), "Chair"), strings.Index(cards.String(), "Table"))

	var failed bytes.Buffer
	page.Status = models.StatusError
	page.Message = models.GenericErrorMessage
	require.NoError(t, presenter.RenderTerminal(&failed, p.ListView(page, ""), presenter.LayoutTable))
	assert.Equal(t, models.GenericErrorMessage+"\n", failed.String())
}

func TestParseLayout(t *testing.T) {
	l, err := presenter.ParseLayout("Cards")
	require.NoError(t, err)
	assert.Equal(t, presenter.LayoutCards, l)

	l, err = presenter.ParseLayout("")
	require.NoError(t, err)
	assert.Equal(t, presenter.LayoutTable, l)

	_, err = presenter.ParseLayout("grid")
	assert.Error(t, err)
}
