// Package delivery defines the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long running server started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
