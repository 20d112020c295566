// internal/store/backend.go
//
// Backend contract shared by the file and remote stores.

package store

import (
	"context"
	"errors"

	"github.com/skjuv/portfolio/internal/portfolio"
)

// ErrNotFound is returned by a backend whose physical store exists but
// holds no portfolio record yet.  The orchestrator treats it as first run
// and seeds the backend from the other one.
var ErrNotFound = errors.New("store: portfolio record not found")

// Backend loads and saves the whole portfolio record.  Save replaces the
// stored document atomically; there are no partial writes.
type Backend interface {
	Load(ctx context.Context) (*portfolio.Data, error)
	Save(ctx context.Context, data *portfolio.Data) error
}
