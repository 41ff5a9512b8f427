package catalog

import (
	"fmt"
	"math"
)

// MaxPriceCeiling is the upper limit of the price filter.
const MaxPriceCeiling = 10000.0

// SortKey selects the result ordering.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// SortKeys lists the supported keys in display order.
var SortKeys = []SortKey{SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortRating}

func (k SortKey) Valid() bool {
	switch k {
	case SortNewest, SortOldest, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	}
	return false
}

func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return k, nil
}

// Criteria describes which products to show and in which order.
// Nil GenreID or PlatformID means any. Use DefaultCriteria for the
// unfiltered state; the zero value only matches free products.
type Criteria struct {
	Search     string  `json:"search" yaml:"search"`
	GenreID    *int64  `json:"genre_id,omitempty" yaml:"genre_id,omitempty"`
	PlatformID *int64  `json:"platform_id,omitempty" yaml:"platform_id,omitempty"`
	MinPrice   float64 `json:"min_price" yaml:"min_price"`
	MaxPrice   float64 `json:"max_price" yaml:"max_price"`
	Sort       SortKey `json:"sort" yaml:"sort"`
}

// DefaultCriteria passes every product and sorts newest first.
func DefaultCriteria() Criteria {
	return Criteria{MaxPrice: MaxPriceCeiling, Sort: SortNewest}
}

// SetGenre filters by genre; nil clears the filter.
func (c *Criteria) SetGenre(id *int64) {
	c.GenreID = cloneID(id)
}

// SetPlatform filters by platform; nil clears the filter.
func (c *Criteria) SetPlatform(id *int64) {
	c.PlatformID = cloneID(id)
}

// SetMinPrice moves the lower bound, clamped to [0, MaxPrice]. NaN keeps
// the current bound.
func (c *Criteria) SetMinPrice(v float64) {
	c.MinPrice = min(clampPrice(v, c.MinPrice), c.MaxPrice)
}

// SetMaxPrice moves the upper bound, clamped to [MinPrice, MaxPriceCeiling].
// NaN keeps the current bound.
func (c *Criteria) SetMaxPrice(v float64) {
	c.MaxPrice = max(clampPrice(v, c.MaxPrice), c.MinPrice)
}

// SetPriceRange sets both bounds. When they cross, the bound that moved is
// pinned to the other one; if both moved the upper bound yields. A NaN
// bound is left unchanged.
func (c *Criteria) SetPriceRange(lo, hi float64) {
	lo, hi = clampPrice(lo, c.MinPrice), clampPrice(hi, c.MaxPrice)
	if lo > hi {
		if hi == c.MaxPrice && lo != c.MinPrice {
			lo = hi
		} else {
			hi = lo
		}
	}
	c.MinPrice, c.MaxPrice = lo, hi
}

func clampPrice(v, current float64) float64 {
	if math.IsNaN(v) {
		return current
	}
	return min(max(v, 0), MaxPriceCeiling)
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

// ID returns a pointer to id, for building criteria literals.
func ID(id int64) *int64 {
	return &id
}
