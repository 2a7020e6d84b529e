// Package actor serializes database access through a single worker goroutine.
//
// A Client enqueues Requests on a bounded RequestChannel. One Worker owns the
// connection pool, dequeues requests strictly one at a time and answers each
// through that request's private reply slot, so correlation is structural and
// no result can reach the wrong caller. Per-request failures travel back
// through the slot; they never stop the worker.
//
//	client, err := actor.New(ctx, cfg.Database.DSN, actor.Options{Log: log})
//	if err != nil {
//	    return err
//	}
//	defer client.Close(ctx)
//
//	choices, err := client.Choices(ctx, "SELECT sku, description FROM products")
package actor
