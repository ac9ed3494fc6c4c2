package main

import (
	"errors"
	"fmt"
	"io"

	"catalogview/internal/config"
	"catalogview/internal/models"
	"catalogview/internal/presenter"
	"catalogview/internal/repositories"
	"catalogview/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var errCatalogUnavailable = errors.New("catalog unavailable")

type listOptions struct {
	Search string
	Filter string
	Page   int
	Layout string
}

var listOpts listOptions

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch the catalog once and print one page of the listing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load(v)
		catalog := repositories.NewHTTPProductRepository(repositories.HTTPConfig{
			BaseURL: cfg.CatalogBaseURL,
			Timeout: cfg.FetchTimeout,
		})
		return runList(cmd.OutOrStdout(), cfg, catalog, listOpts)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOpts.Search, "search", "s", "", "case-insensitive name search")
	listCmd.Flags().StringVarP(&listOpts.Filter, "filter", "f", string(models.FilterShowAll),
		"filter mode: all, hide-null-price or hide-placeholder-image")
	listCmd.Flags().IntVarP(&listOpts.Page, "page", "p", 1, "page number, starting at 1")
	listCmd.Flags().StringVarP(&listOpts.Layout, "layout", "l", string(presenter.LayoutTable), "output layout: table or cards")
}

// runList performs one view activation against catalog and renders the requested page to w.
func runList(w io.Writer, cfg config.Config, catalog repositories.ProductRepository, opts listOptions) error {
	layout, err := presenter.ParseLayout(opts.Layout)
	if err != nil {
		return err
	}

	filter := models.FilterMode(opts.Filter)
	update := models.ViewUpdate{Search: &opts.Search, Filter: &filter, Page: &opts.Page}
	if err := validator.New().Struct(update); err != nil {
		return fmt.Errorf("invalid list options: %w", err)
	}

	viewService := services.NewViewService(repositories.NewMemoryViewRepository(), services.NewProductService(catalog), cfg.PageSize)
	view, done, err := viewService.Create()
	if err != nil {
		return err
	}
	<-done

	page, err := viewService.Update(view.ID, update)
	if err != nil {
		return err
	}

	p := presenter.New(cfg.PlaceholderImage)
	if err := presenter.RenderTerminal(w, p.ListView(*page, ""), layout); err != nil {
		return err
	}
	if page.Status == models.StatusError {
		return errCatalogUnavailable
	}
	return nil
}
