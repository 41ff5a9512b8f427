// Package async runs independent loads concurrently and joins their results.
//
//	products := async.Run(ctx, api.ListProducts)
//	genres := async.Run(ctx, api.ListGenres)
//	if err := async.All(ctx, products, genres); err != nil {
//		return err
//	}
//	list, _ := products.Await(ctx)
//
// Futures never cancel the work they wrap; cancelling the context passed to
// Await only stops the caller from waiting.
package async
