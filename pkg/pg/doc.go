// Package pg persists storefront records in PostgreSQL using pgx/v5.
//
// Connect opens a *pgxpool.Pool with retries, Migrate applies the embedded
// goose migrations (a single storefront_records table) and Storage adapts the
// pool to kv.Storage with upsert semantics.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		return err
//	}
//	storage := pg.NewStorage(pool)
package pg
