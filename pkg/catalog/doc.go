// Package catalog filters, searches and sorts the product list.
//
// Apply is the query engine: a pure function from a product set and a
// Criteria to a fresh result slice. View wraps it with state, re-running
// Apply over the full product set after every criteria change.
//
//	view := catalog.NewView(catalog.WithSearch("witcher"))
//	if err := view.Load(ctx, api); err != nil {
//		return err
//	}
//	view.SetSort(catalog.SortPriceAsc)
//	for _, p := range view.Results() {
//		fmt.Println(p.Title, p.Price)
//	}
package catalog
