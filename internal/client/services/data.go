package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/hmarket/internal/client/storage"
	"github.com/dmitrijs2005/hmarket/internal/logging"
)

// DataService inspects and wipes everything the client has stored.
type DataService interface {
	// StoredKeys lists the keys held by the durable and ephemeral stores,
	// sorted and without duplicates.
	StoredKeys(ctx context.Context) ([]string, error)
	// Reset clears the ephemeral store first, so the session ends even when
	// the durable store then fails.
	Reset(ctx context.Context) error
}

type dataService struct {
	durable   storage.Store
	ephemeral storage.Store
	log       logging.Logger
}

func NewDataService(durable, ephemeral storage.Store, log logging.Logger) DataService {
	return &dataService{durable: durable, ephemeral: ephemeral, log: log.With("component", "data")}
}

func (d *dataService) StoredKeys(ctx context.Context) ([]string, error) {
	seen := map[string]struct{}{}
	for _, s := range []storage.Store{d.durable, d.ephemeral} {
		pairs, err := s.List(ctx)
		if err != nil {
			d.log.Error(ctx, "list stored keys failed", "error", err)
			return nil, err
		}
		for k := range pairs {
			seen[k] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (d *dataService) Reset(ctx context.Context) error {
	if err := d.ephemeral.Clear(ctx); err != nil {
		d.log.Error(ctx, "clear ephemeral store failed", "error", err)
		return fmt.Errorf("%w: %w", storage.ErrSaveFailed, err)
	}
	if err := d.durable.Clear(ctx); err != nil {
		d.log.Error(ctx, "clear durable store failed", "error", err)
		return fmt.Errorf("%w: %w", storage.ErrSaveFailed, err)
	}
	d.log.Info(ctx, "local data cleared")
	return nil
}
