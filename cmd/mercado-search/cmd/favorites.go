package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/mercado-search/internal/api/client"
)

func favoritesCmd() *cobra.Command {
	favRoot := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite products",
		Long: "Manage products saved on a mercado-search server. The server stores\n" +
			"favorites in PostgreSQL and refreshes their title and price on a schedule.",
	}

	favRoot.AddCommand(
		favoritesListCmd(),
		favoritesGetCmd(),
		favoritesAddCmd(),
		favoritesRemoveCmd(),
		favoritesRefreshCmd(),
	)

	return favRoot
}

func favoritesListCmd() *cobra.Command {
	var params apiclient.ListFavoritesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorites",
		Example: `  mercado-search favorites list
  mercado-search favorites list --currency ARS --max-price 500000 --order-by price
  mercado-search favorites list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListFavorites(cmd.Context(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Favorites) == 0 {
				fmt.Println("No favorites found.")
				return nil
			}
			if err := printFavoritesTable(resp.Favorites); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d favorites.\n", len(resp.Favorites), resp.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Currency, "currency", "", "filter by currency code")
	cmd.Flags().StringVar(&params.Title, "title", "", "filter by title substring")
	cmd.Flags().Float64Var(&params.MinPrice, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&params.MaxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "max results (server default when 0)")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")
	cmd.Flags().StringVar(&params.OrderBy, "order-by", "", "sort by price, title or created_at")

	return cmd
}

func favoritesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a favorite",
		Example: `  mercado-search favorites get MLA1234567890`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			f, err := c.GetFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(f)
			}
			return printFavoriteDetail(f)
		},
	}
}

func favoritesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <id>",
		Short: "Save a product as a favorite",
		Example: `  mercado-search favorites add MLA1234567890`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			f, err := c.AddFavorite(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(f)
			}
			fmt.Printf("Saved %s (%s).\n", f.ID, truncate(f.Title, 50))
			return nil
		},
	}
}

func favoritesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a favorite",
		Example: `  mercado-search favorites remove MLA1234567890`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			if err := c.RemoveFavorite(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s.\n", args[0])
			return nil
		},
	}
}

func favoritesRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch every favorite now",
		Example: `  mercado-search favorites refresh`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			res, err := c.RefreshFavorites(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printRefreshResult(res)
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's MercadoLibre API quota",
		Example: `  mercado-search quota --server http://localhost:8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(q)
		},
	}
}
