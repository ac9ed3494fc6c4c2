package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Layout selects the terminal rendering of a page.
type Layout string

const (
	LayoutTable Layout = "table"
	LayoutCards Layout = "cards"
)

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case LayoutTable, "":
		return LayoutTable, nil
	case LayoutCards:
		return LayoutCards, nil
	default:
		return "", fmt.Errorf("unknown layout %q (want %q or %q)", s, LayoutTable, LayoutCards)
	}
}

const maxNameWidth = 40

// RenderTerminal writes the list view to w in the requested layout.
func RenderTerminal(w io.Writer, view ListView, layout Layout) error {
	switch view.Status {
	case "error":
		_, err := fmt.Fprintln(w, view.Message)
		return err
	case "loading":
		_, err := fmt.Fprintln(w, "Loading products...")
		return err
	}

	var body string
	if layout == LayoutCards {
		body = renderCards(view.Rows)
	} else {
		body = renderTable(view.Rows)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", body, view.Summary())
	return err
}

func renderTable(rows []Row) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Price", "Image"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.ID, r.Name, r.Category, r.Price, r.ImageURL})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: maxNameWidth},
		{Number: 4, Align: text.AlignRight},
	})
	return t.Render()
}

func renderCards(rows []Row) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d] %s\n", r.ID, text.Trim(r.Name, maxNameWidth))
		fmt.Fprintf(&b, "    Price: %s\n", r.Price)
		fmt.Fprintf(&b, "    Image: %s\n", r.ImageURL)
	}
	if len(rows) == 0 {
		b.WriteString("No products to show.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
