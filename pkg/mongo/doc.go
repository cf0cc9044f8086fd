// Package mongo opens the MongoDB connection used by the credential and
// revocation stores.
//
// New retries the initial connect-and-ping cycle, which covers the common
// case of the API container starting before the database is reachable.
// Healthcheck adapts a client to the readiness probe signature.
//
//	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo, mongo.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
package mongo
