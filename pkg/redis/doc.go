// Package redis persists storefront records in Redis.
//
// Connect dials the server with retries, Storage adapts a go-redis client to
// kv.Storage and Healthcheck returns a ping based probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	storage := redis.NewStorage(client, cfg.KeyPrefix)
//
// Configuration is read from REDIS_* environment variables through the env
// tags on Config.
package redis
