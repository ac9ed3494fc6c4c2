package main

import (
	"context"
	"fmt"
	"os"

	"catalogview/internal/config"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// v holds the configuration shared by all commands: defaults, environment and bound flags.
var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "catalogview",
	Short: "Searchable, filterable, paginated product catalog listing",
	Long: "catalogview fetches the product catalog once per view and lets users search it\n" +
		"by name, hide products without price or image, and page through the results.",
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("catalog-url", "", "base URL of the product catalog API (env CATALOG_BASE_URL)")
	flags.String("placeholder-image", "", "image shown for products without a usable image (env PLACEHOLDER_IMAGE_URL)")
	flags.Int("page-size", 0, "products per page (env PAGE_SIZE)")
	flags.Duration("fetch-timeout", 0, "timeout of the catalog fetch, 0 for none (env FETCH_TIMEOUT)")

	bindFlag(config.KeyCatalogBaseURL, "catalog-url")
	bindFlag(config.KeyPlaceholderImage, "placeholder-image")
	bindFlag(config.KeyPageSize, "page-size")
	bindFlag(config.KeyFetchTimeout, "fetch-timeout")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.Version = version
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
