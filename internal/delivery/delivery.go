// Package delivery defines the contract for transport adapters (HTTP, workers)
// that expose the application to the outside world.
package delivery

import "context"

// Delivery is implemented by every transport the application serves on.
// Implementations block in Serve until the transport shuts down.
type Delivery interface {
	Serve(ctx context.Context) error
}
