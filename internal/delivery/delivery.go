// Package delivery holds the transports that expose the usecases.
package delivery

import "context"

// Delivery is a long-running transport.
type Delivery interface {
	// Serve blocks until the transport stops. A graceful Shutdown is not an error.
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
