// Package mongo persists storefront records in MongoDB using the official
// v2 driver. Each record key is a document _id in a single collection.
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	storage := mongo.NewStorageFromClient(client, cfg)
package mongo
