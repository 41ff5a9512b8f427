// Package sqlite stores storefront records in a single-file SQLite database
// using the pure Go modernc.org/sqlite driver, so no cgo toolchain is needed.
//
//	s, err := sqlite.Open(ctx, filepath.Join(dir, "storefront.db"))
//	if err != nil {
//		return err
//	}
//	defer s.Close()
package sqlite
