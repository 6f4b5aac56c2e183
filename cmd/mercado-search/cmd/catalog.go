package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/mercado-search/internal/screen"
)

func screenOptions(ctx context.Context, site string) []screen.Option {
	return []screen.Option{
		screen.WithContext(ctx),
		screen.WithSiteID(site),
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the top-level categories of a site",
		Example: `  mercado-search categories
  mercado-search categories --site MLB --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, repo, err := cliDeps()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			opts := append(screenOptions(ctx, cfg.Meli.SiteID), screen.WithLogger(log))
			c := screen.NewCategoriesController(repo, opts...)
			defer c.Close()

			if err := await(ctx, c.Ready()); err != nil {
				return err
			}
			state := c.Snapshot()
			if state.Err != nil {
				return state.Err
			}

			if jsonOutput() {
				return outputJSON(state.Categories)
			}
			if len(state.Categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}
			return printCategoriesTable(state.Categories)
		},
	}
}

func searchCmd() *cobra.Command {
	var (
		category string
		pages    int
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog",
		Long: "Search a site, optionally within a category. --pages loads further\n" +
			"result pages the same way scrolling to the last row does in browse.",
		Example: `  mercado-search search "iphone 15"
  mercado-search search --category MLA1051
  mercado-search search notebook --category MLA1648 --pages 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			if category == "" && strings.TrimSpace(query) == "" {
				return errors.New("a query or --category is required")
			}
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1 (got %d)", pages)
			}

			cfg, log, repo, err := cliDeps()
			if err != nil {
				return err
			}

			var categoryID *string
			if category != "" {
				categoryID = &category
			}

			ctx := cmd.Context()
			opts := append(screenOptions(ctx, cfg.Meli.SiteID),
				screen.WithLogger(log),
				screen.WithQuery(query),
			)
			c := screen.NewSearchController(repo, categoryID, opts...)
			defer c.Close()

			if err := await(ctx, c.Ready()); err != nil {
				return err
			}
			if categoryID == nil {
				c.Search(query)
			}

			state := c.Snapshot()
			if state.Err != nil {
				return state.Err
			}
			for loaded := 1; loaded < pages && state.HasMore(); loaded++ {
				c.LoadMore()
				next := c.Snapshot()
				if len(next.Results) == len(state.Results) && next.HasMore() {
					log.Warn("could not load more results", "offset", next.Offset)
					break
				}
				state = next
			}

			if jsonOutput() {
				return outputJSON(state.Results)
			}
			if len(state.Results) == 0 {
				fmt.Println("No results found.")
				return nil
			}
			if err := printProductsTable(state.Results); err != nil {
				return err
			}
			printSearchFooter(state)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "restrict the search to this category ID")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of result pages to load")

	return cmd
}

func itemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <id>",
		Short: "Show a product with its description",
		Example: `  mercado-search item MLA1234567890
  mercado-search item MLA1234567890 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, repo, err := cliDeps()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			opts := append(screenOptions(ctx, cfg.Meli.SiteID), screen.WithLogger(log))
			c := screen.NewDetailController(repo, &args[0], opts...)
			defer c.Close()

			if err := await(ctx, c.Ready()); err != nil {
				return err
			}
			state := c.Snapshot()
			if state.Err != nil {
				return state.Err
			}
			if state.Product == nil {
				return fmt.Errorf("item %s not loaded", args[0])
			}

			if jsonOutput() {
				return outputJSON(state.Product)
			}
			return printProductDetail(state.Product)
		},
	}
}
