package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/sanitizer"
	"github.com/dmitrymomot/storefront/pkg/theme"
)

// cli carries the state shared by every command of one invocation.
type cli struct {
	cfg    Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer

	output string
	stats  bool
	app    *app
}

func (c *cli) printer() printer {
	return printer{w: c.stdout, format: c.output}
}

func newRootCmd(cfg Config, log *slog.Logger, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{cfg: cfg, log: log, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the game catalog, manage the cart and place orders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// help and completion need no stores
			if cmd.RunE == nil {
				return nil
			}
			if c.output != formatYAML && c.output != formatJSON {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, c.output)
			}
			a, err := newApp(cmd.Context(), c.cfg, c.log)
			if err != nil {
				return err
			}
			c.app = a
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.output, "output", "o", formatYAML, "output format: yaml or json")
	root.PersistentFlags().BoolVar(&c.stats, "stats", false, "print storage operation counts")

	root.AddCommand(
		c.catalogCmd(),
		c.productCmd(),
		c.cartCmd(),
		c.checkoutCmd(),
		c.loginCmd(),
		c.registerCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.reviewCmd(),
		c.themeCmd(),
		c.healthCmd(),
	)

	return withFinish(root, c)
}

// withFinish makes every command flush notifications and close the app,
// including when the command fails.
func withFinish(root *cobra.Command, c *cli) *cobra.Command {
	var wrap func(cmd *cobra.Command)
	wrap = func(cmd *cobra.Command) {
		if run := cmd.RunE; run != nil {
			cmd.RunE = func(cmd *cobra.Command, args []string) error {
				err := run(cmd, args)
				return errors.Join(err, c.finish())
			}
		}
		for _, sub := range cmd.Commands() {
			wrap(sub)
		}
	}
	wrap(root)
	return root
}

func (c *cli) finish() error {
	if c.app == nil {
		return nil
	}
	c.app.flush(c.stderr)
	if c.stats {
		if stats, err := c.app.storageStats(); err == nil {
			for key, n := range stats {
				fmt.Fprintf(c.stderr, "storage %s: %.0f\n", key, n)
			}
		}
	}
	err := c.app.close()
	c.app = nil
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func (c *cli) catalogCmd() *cobra.Command {
	var (
		search   string
		genre    int64
		platform int64
		minPrice float64
		maxPrice float64
		sortKey  string
	)
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := catalog.ParseSortKey(sortKey)
			if err != nil {
				return err
			}
			criteria := catalog.DefaultCriteria()
			criteria.Search = sanitizer.Search(search)
			criteria.Sort = key
			if genre > 0 {
				criteria.GenreID = catalog.ID(genre)
			}
			if platform > 0 {
				criteria.PlatformID = catalog.ID(platform)
			}
			criteria.SetPriceRange(minPrice, maxPrice)

			view := catalog.NewView(
				catalog.WithCriteria(criteria),
				catalog.WithViewLogger(c.log.With(logger.Component("catalog"))),
			)
			if err := view.Load(cmd.Context(), c.app.api); err != nil {
				c.app.notes.Error("Failed to load the catalog", "Catalog")
				return err
			}
			return c.printer().print(catalogListing{
				Criteria: view.Criteria(),
				Count:    view.Count(),
				Products: view.Results(),
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&search, "search", "s", "", "case-insensitive text in title, description or developer")
	f.Int64Var(&genre, "genre", 0, "genre id")
	f.Int64Var(&platform, "platform", 0, "platform id")
	f.Float64Var(&minPrice, "min", 0, "minimum price")
	f.Float64Var(&maxPrice, "max", catalog.MaxPriceCeiling, "maximum price")
	f.StringVar(&sortKey, "sort", string(catalog.SortNewest), "sort: newest, oldest, price-asc, price-desc, rating")
	return cmd
}

type catalogListing struct {
	Criteria catalog.Criteria  `json:"criteria" yaml:"criteria"`
	Count    int               `json:"count" yaml:"count"`
	Products []catalog.Product `json:"products" yaml:"products"`
}

func (c *cli) productCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "product <id>",
		Short: "Show a product with its reviews and similar products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := c.app.svc.ProductDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printer().print(detail)
		},
	}
}

type cartSummary struct {
	Items []cart.Entry `json:"items" yaml:"items"`
	Count int          `json:"count" yaml:"count"`
	Total float64      `json:"total" yaml:"total"`
}

func (c *cli) printCart() error {
	carts := c.app.carts
	return c.printer().print(cartSummary{
		Items: carts.Items(),
		Count: carts.ItemCount(),
		Total: carts.TotalPrice(),
	})
}

func (c *cli) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printCart()
		},
	}

	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.app.svc.AddToCart(cmd.Context(), id); err != nil {
				return err
			}
			return c.printCart()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a product from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.carts.Remove(cmd.Context(), id); err != nil {
				return err
			}
			return c.printCart()
		},
	}

	qty := &cobra.Command{
		Use:   "qty <product-id> <quantity>",
		Short: "Set the quantity of a product, zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: quantity %q", ErrInvalidArgument, args[1])
			}
			if err := c.app.carts.SetQuantity(cmd.Context(), id, n); err != nil {
				return err
			}
			return c.printCart()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.carts.Clear(cmd.Context()); err != nil {
				return err
			}
			return c.printCart()
		},
	}

	cmd.AddCommand(add, remove, qty, clearCmd)
	return cmd
}

func (c *cli) checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Buy the single product in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := c.app.svc.Checkout(cmd.Context())
			if err != nil {
				return err
			}
			return c.printer().print(receipt)
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.svc.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return c.printer().print(user)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (c *cli) registerCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := c.app.svc.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}
			return c.printer().print(user)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name, at least 4 characters")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.svc.Logout(cmd.Context())
		},
	}
}

func (c *cli) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := c.app.sessions.User()
			if user == nil {
				c.app.notes.Info("Not signed in")
				return nil
			}
			return c.printer().print(user)
		},
	}
}

func (c *cli) reviewCmd() *cobra.Command {
	var (
		rating  int
		comment string
	)
	cmd := &cobra.Command{
		Use:   "review <product-id>",
		Short: "Review a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := c.app.svc.SubmitReview(cmd.Context(), id, rating, comment); err != nil {
				return err
			}
			detail, err := c.app.svc.ProductDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printer().print(detail.Reviews)
		},
	}
	cmd.Flags().IntVar(&rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar(&comment, "comment", "", "review text")
	return cmd
}

type themeState struct {
	Theme theme.Theme `json:"theme" yaml:"theme"`
}

func (c *cli) themeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := c.app.themes
			if len(args) == 1 {
				var err error
				if args[0] == "toggle" {
					_, err = themes.Toggle(cmd.Context())
				} else {
					var t theme.Theme
					if t, err = theme.Parse(args[0]); err == nil {
						err = themes.Set(cmd.Context(), t)
					}
				}
				if err != nil {
					return err
				}
			}
			return c.printer().print(themeState{Theme: themes.Current()})
		},
	}
	return cmd
}

type healthReport struct {
	Driver  string `json:"driver" yaml:"driver"`
	Storage string `json:"storage" yaml:"storage"`
	API     string `json:"api" yaml:"api"`
}

func status(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the storage backend and the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			storageErr := c.app.probe(ctx)
			_, apiErr := c.app.api.ListGenres(ctx)

			if err := c.printer().print(healthReport{
				Driver:  c.cfg.StorageDriver,
				Storage: status(storageErr),
				API:     status(apiErr),
			}); err != nil {
				return err
			}
			if storageErr != nil || apiErr != nil {
				return ErrUnhealthy
			}
			return nil
		},
	}
}
