package catalog

// Product is a catalog item as served by the API. Products are read-only
// on the client.
type Product struct {
	ID          int64   `json:"id" yaml:"id"`
	GenreID     int64   `json:"genre_id" yaml:"genre_id"`
	PlatformID  int64   `json:"platform_id" yaml:"platform_id"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price"`
	ReleaseDate Date    `json:"release_date" yaml:"release_date"`
	Developer   string  `json:"developer" yaml:"developer"`
	Rating      float64 `json:"rating" yaml:"rating"`
}

type Genre struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Platform struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Similar returns up to limit products sharing p's genre, excluding p,
// in catalog order. A non-positive limit means no limit.
func Similar(products []Product, p Product, limit int) []Product {
	out := make([]Product, 0, max(limit, 0))
	for _, candidate := range products {
		if candidate.ID == p.ID || candidate.GenreID != p.GenreID {
			continue
		}
		out = append(out, candidate)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
