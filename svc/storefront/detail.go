package storefront

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/storefront/pkg/apiclient"
	"github.com/dmitrymomot/storefront/pkg/async"
	"github.com/dmitrymomot/storefront/pkg/catalog"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/session"
)

// SimilarLimit caps the similar products shown on a detail page.
const SimilarLimit = 4

// ReviewView is a review with its author's display name.
type ReviewView struct {
	apiclient.Review `yaml:",inline"`
	AuthorName       string `json:"author_name" yaml:"author_name"`
}

// ProductDetail is everything the product page shows.
type ProductDetail struct {
	Product  catalog.Product   `json:"product" yaml:"product"`
	Genre    string            `json:"genre" yaml:"genre"`
	Platform string            `json:"platform" yaml:"platform"`
	Reviews  []ReviewView      `json:"reviews" yaml:"reviews"`
	Similar  []catalog.Product `json:"similar" yaml:"similar"`
	InCart   bool              `json:"in_cart" yaml:"in_cart"`
}

// ProductDetail loads a product together with its lookups, reviews and
// similar products. The product itself is required; failures of the
// secondary lookups degrade to empty values and are logged.
func (s *Service) ProductDetail(ctx context.Context, id int64) (ProductDetail, error) {
	product := async.Run(ctx, func(ctx context.Context) (catalog.Product, error) {
		return s.api.GetProduct(ctx, id)
	})
	products := async.Run(ctx, s.api.ListProducts)
	genres := async.Run(ctx, s.api.ListGenres)
	platforms := async.Run(ctx, s.api.ListPlatforms)
	reviews := async.Run(ctx, func(ctx context.Context) ([]apiclient.Review, error) {
		return s.api.ListReviews(ctx, id)
	})
	users := async.Run(ctx, s.api.ListUsers)

	p, err := product.Await(ctx)
	if err != nil {
		return ProductDetail{}, s.fail(ctx, "get product", titleCatalog, err)
	}

	detail := ProductDetail{
		Product: p,
		InCart:  s.cart.Contains(p.ID),
		Reviews: []ReviewView{},
		Similar: []catalog.Product{},
	}

	if gs, err := genres.Await(ctx); err == nil {
		for _, g := range gs {
			if g.ID == p.GenreID {
				detail.Genre = g.Name
				break
			}
		}
	} else {
		s.degraded(ctx, "list genres", err)
	}

	if ps, err := platforms.Await(ctx); err == nil {
		for _, pl := range ps {
			if pl.ID == p.PlatformID {
				detail.Platform = pl.Name
				break
			}
		}
	} else {
		s.degraded(ctx, "list platforms", err)
	}

	if all, err := products.Await(ctx); err == nil {
		detail.Similar = catalog.Similar(all, p, SimilarLimit)
	} else {
		s.degraded(ctx, "list products", err)
	}

	rs, err := reviews.Await(ctx)
	if err != nil {
		s.degraded(ctx, "list reviews", err)
		return detail, nil
	}
	us, err := users.Await(ctx)
	if err != nil {
		s.degraded(ctx, "list users", err)
	}
	names := authorNames(us)
	for _, r := range rs {
		detail.Reviews = append(detail.Reviews, ReviewView{Review: r, AuthorName: authorName(names, r.UserID)})
	}
	return detail, nil
}

func (s *Service) degraded(ctx context.Context, op string, err error) {
	s.logger.LogAttrs(ctx, slog.LevelWarn, "product detail lookup failed",
		logger.Operation(op),
		logger.Error(err),
	)
}

func authorNames(users []session.User) map[int64]string {
	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func authorName(names map[int64]string, id int64) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("User #%d", id)
}
