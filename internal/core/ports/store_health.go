package ports

import "context"

// StoreHealth reports whether the backing store is reachable. Implemented
// by the store adapters; consumed by the health endpoint and the periodic
// liveness job.
type StoreHealth interface {
	Ping(ctx context.Context) error
}
