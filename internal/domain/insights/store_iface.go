package insights

import "context"

type StoreAPI interface {
	// Snapshot reads every aggregate from a single consistent view of the data.
	Snapshot(ctx context.Context) (Snapshot, error)
}
