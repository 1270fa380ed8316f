// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter, such as an HTTP server.
type Delivery interface {
	// Serve blocks until the adapter stops or fails.
	Serve(ctx context.Context) error
}
