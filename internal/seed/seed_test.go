package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portls-labs/portls/pkg/docstore"
)

// fakeStore implements docstore.Store in memory for seeding tests.
type fakeStore struct {
	collections    []string
	collectionsErr error
	counts         map[string]int64
	countErr       error
	created        map[string][]any
	createErr      error
}

var _ docstore.Store = (*fakeStore)(nil)

func (f *fakeStore) CreateDocument(_ context.Context, collection string, record any) (docstore.Record, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.created == nil {
		f.created = make(map[string][]any)
	}
	f.created[collection] = append(f.created[collection], record)
	return docstore.Record{"_id": "fake-id"}, nil
}

func (f *fakeStore) GetDocuments(context.Context, string) ([]docstore.Record, error) {
	return nil, nil
}

func (f *fakeStore) FindDocument(context.Context, string, docstore.Record) (docstore.Record, error) {
	return nil, docstore.ErrNotFound
}

func (f *fakeStore) Collections(context.Context) ([]string, error) {
	return f.collections, f.collectionsErr
}

func (f *fakeStore) CountDocuments(_ context.Context, collection string) (int64, error) {
	return f.counts[collection], f.countErr
}

func (f *fakeStore) Ping(context.Context) error {
	return nil
}

func TestPlanets_SeedsMissingCollection(t *testing.T) {
	store := &fakeStore{collections: []string{"profile"}}

	n, err := Planets(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Len(t, store.created["planet"], 4)
}

func TestPlanets_SeedsEmptyCollection(t *testing.T) {
	store := &fakeStore{
		collections: []string{"planet"},
		counts:      map[string]int64{"planet": 0},
	}

	n, err := Planets(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestPlanets_SkipsPopulatedCollection(t *testing.T) {
	store := &fakeStore{
		collections: []string{"planet"},
		counts:      map[string]int64{"planet": 4},
	}

	n, err := Planets(context.Background(), store)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, store.created)
}

func TestPlanets_UnavailableStoreSurfaced(t *testing.T) {
	n, err := Planets(context.Background(), docstore.Unconfigured())

	assert.ErrorIs(t, err, docstore.ErrUnavailable)
	assert.Zero(t, n)
}

func TestPlanets_CreateFailureStopsSeeding(t *testing.T) {
	cause := errors.New("write refused")
	store := &fakeStore{createErr: cause}

	n, err := Planets(context.Background(), store)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, n)
}
