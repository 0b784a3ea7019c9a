// Package delivery holds the outer surfaces started by the fx app.
package delivery

import "context"

// Delivery is a long-running surface. Serve blocks until it stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
