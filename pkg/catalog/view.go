package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/pkg/async"
	"github.com/dmitrymomot/storefront/pkg/logger"
)

// Source provides the data a View needs.
type Source interface {
	ListProducts(ctx context.Context) ([]Product, error)
	ListGenres(ctx context.Context) ([]Genre, error)
	ListPlatforms(ctx context.Context) ([]Platform, error)
}

// View holds the full catalog and the active criteria. Every change
// recomputes the results from scratch.
type View struct {
	mu        sync.RWMutex
	products  []Product
	genres    []Genre
	platforms []Platform
	criteria  Criteria
	results   []Product
	logger    *slog.Logger
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithCriteria sets the initial criteria. Price bounds are clamped.
func WithCriteria(c Criteria) ViewOption {
	return func(v *View) {
		next := DefaultCriteria()
		next.Search = c.Search
		next.SetGenre(c.GenreID)
		next.SetPlatform(c.PlatformID)
		next.SetPriceRange(c.MinPrice, c.MaxPrice)
		if c.Sort != "" {
			next.Sort = c.Sort
		}
		v.criteria = next
	}
}

// WithSearch seeds the search text, e.g. from a ?search= link.
func WithSearch(query string) ViewOption {
	return func(v *View) {
		v.criteria.Search = query
	}
}

func WithViewLogger(l *slog.Logger) ViewOption {
	return func(v *View) {
		v.logger = l
	}
}

func NewView(opts ...ViewOption) *View {
	v := &View{
		criteria: DefaultCriteria(),
		results:  []Product{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches products, genres and platforms concurrently. On failure the
// previous state is kept. Concurrent loads are not cancelled; the last one
// to finish wins.
func (v *View) Load(ctx context.Context, src Source) error {
	start := time.Now()
	products := async.Run(ctx, src.ListProducts)
	genres := async.Run(ctx, src.ListGenres)
	platforms := async.Run(ctx, src.ListPlatforms)

	if err := async.All(ctx, products, genres, platforms); err != nil {
		v.logger.LogAttrs(ctx, slog.LevelError, "failed to load catalog",
			logger.Component("catalog"),
			logger.Error(err),
		)
		return errors.Join(ErrLoadCatalog, err)
	}

	p, _ := products.Await(ctx)
	g, _ := genres.Await(ctx)
	pl, _ := platforms.Await(ctx)

	v.mu.Lock()
	v.products = slices.Clone(p)
	v.genres = slices.Clone(g)
	v.platforms = slices.Clone(pl)
	v.recompute()
	count := len(v.results)
	v.mu.Unlock()

	v.logger.LogAttrs(ctx, slog.LevelDebug, "catalog loaded",
		logger.Component("catalog"),
		slog.Int("products", len(p)),
		logger.Count(count),
		logger.Duration(time.Since(start)),
	)
	return nil
}

// SetProducts replaces the product set.
func (v *View) SetProducts(products []Product) {
	v.update(func() { v.products = slices.Clone(products) })
}

func (v *View) SetSearch(query string) {
	v.update(func() { v.criteria.Search = query })
}

func (v *View) SetGenre(id *int64) {
	v.update(func() { v.criteria.SetGenre(id) })
}

func (v *View) SetPlatform(id *int64) {
	v.update(func() { v.criteria.SetPlatform(id) })
}

func (v *View) SetPriceRange(lo, hi float64) {
	v.update(func() { v.criteria.SetPriceRange(lo, hi) })
}

func (v *View) SetMinPrice(p float64) {
	v.update(func() { v.criteria.SetMinPrice(p) })
}

func (v *View) SetMaxPrice(p float64) {
	v.update(func() { v.criteria.SetMaxPrice(p) })
}

func (v *View) SetSort(key SortKey) {
	v.update(func() { v.criteria.Sort = key })
}

// Reset restores DefaultCriteria, search included.
func (v *View) Reset() {
	v.update(func() { v.criteria = DefaultCriteria() })
}

func (v *View) update(mutate func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	mutate()
	v.recompute()
}

// recompute must be called with v.mu held.
func (v *View) recompute() {
	v.results = Apply(v.products, v.criteria)
}

// Results returns a copy of the current result list.
func (v *View) Results() []Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.results)
}

func (v *View) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.results)
}

// Criteria returns a copy of the active criteria.
func (v *View) Criteria() Criteria {
	v.mu.RLock()
	defer v.mu.RUnlock()
	c := v.criteria
	c.GenreID = cloneID(c.GenreID)
	c.PlatformID = cloneID(c.PlatformID)
	return c
}

// Products returns the unfiltered product set.
func (v *View) Products() []Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.products)
}

func (v *View) Genres() []Genre {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.genres)
}

func (v *View) Platforms() []Platform {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.platforms)
}

// GenreName returns the name of genre id or "" when unknown.
func (v *View) GenreName(id int64) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i := slices.IndexFunc(v.genres, func(g Genre) bool { return g.ID == id }); i >= 0 {
		return v.genres[i].Name
	}
	return ""
}

// PlatformName returns the name of platform id or "" when unknown.
func (v *View) PlatformName(id int64) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if i := slices.IndexFunc(v.platforms, func(p Platform) bool { return p.ID == id }); i >= 0 {
		return v.platforms[i].Name
	}
	return ""
}
