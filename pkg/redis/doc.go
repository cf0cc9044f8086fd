// Package redis connects to the Redis server backing the token revocation
// list when REVOCATION_BACKEND=redis.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Healthcheck plugs the client into the readiness probe.
package redis
