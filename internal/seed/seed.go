// Package seed populates the document store with default data on startup.
package seed

import (
	"context"
	"fmt"
	"slices"

	"github.com/portls-labs/portls/pkg/catalog"
	"github.com/portls-labs/portls/pkg/docstore"
)

const planetCollection = "planet"

// Planets inserts the default planets when the planet collection is missing
// or empty, and reports how many records were written. It is idempotent: a
// non-empty collection is left untouched. Errors, including
// docstore.ErrUnavailable, are surfaced to the caller, who decides whether
// to log or ignore them - seeding must never crash startup.
func Planets(ctx context.Context, store docstore.Store) (int, error) {
	names, err := store.Collections(ctx)
	if err != nil {
		return 0, err
	}

	// A missing collection and an empty one both qualify for seeding.
	if slices.Contains(names, planetCollection) {
		n, err := store.CountDocuments(ctx, planetCollection)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, nil
		}
	}

	seeded := 0
	for _, p := range catalog.DefaultPlanets() {
		if _, err := store.CreateDocument(ctx, planetCollection, p); err != nil {
			return seeded, fmt.Errorf("failed to seed planet %q: %w", p.Name, err)
		}
		seeded++
	}
	return seeded, nil
}
