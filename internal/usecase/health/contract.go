package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// DocumentCounter reports how many documents the store serves.
type DocumentCounter interface {
	Count(ctx context.Context) (int, error)
}
