// Package delivery defines the contract every transport (HTTP, worker)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a running server surface. Serve blocks until the server
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
