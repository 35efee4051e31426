package storage

import (
	"context"
	"fmt"

	"github.com/bilgisen/headlines/internal/logger"
	"github.com/bilgisen/headlines/internal/sorting"
)

// SortByKey is the key the sort direction is persisted under
const SortByKey = "sort_by"

// LoadSortDirection reads the persisted direction. When nothing usable is
// stored, NewestFirst is written back and returned.
func LoadSortDirection(ctx context.Context, store Store) (sorting.Direction, error) {
	value, err := store.Get(ctx, SortByKey)
	if err != nil {
		return sorting.NewestFirst, fmt.Errorf("failed to read sort direction: %w", err)
	}

	if value != "" {
		d, parseErr := sorting.ParseDirection(value)
		if parseErr == nil {
			return d, nil
		}
		logger.Warn().Str("value", value).Msg("Ignoring invalid stored sort direction")
	}

	if err := SaveSortDirection(ctx, store, sorting.NewestFirst); err != nil {
		return sorting.NewestFirst, err
	}
	return sorting.NewestFirst, nil
}

// SaveSortDirection persists d under SortByKey
func SaveSortDirection(ctx context.Context, store Store, d sorting.Direction) error {
	if err := store.Set(ctx, SortByKey, d.String()); err != nil {
		return fmt.Errorf("failed to save sort direction: %w", err)
	}
	return nil
}
