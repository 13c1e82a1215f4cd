package docstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portls-labs/portls/pkg/config"
)

func TestNew_UnconfiguredWhenSettingsMissing(t *testing.T) {
	tests := []struct {
		name string
		url  string
		db   string
	}{
		{name: "both missing"},
		{name: "url missing", db: "portls"},
		{name: "name missing", url: "mongodb://localhost:27017"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(&config.AppConfig{
				Database: config.DatabaseConfig{URL: tt.url, Name: tt.db},
			})
			require.NoError(t, err, "missing settings are a degraded mode, not an error")

			_, err = store.GetDocuments(context.Background(), "planet")
			assert.ErrorIs(t, err, ErrUnavailable)
		})
	}
}

func TestUnconfiguredStore_AllOperationsFail(t *testing.T) {
	ctx := context.Background()
	store := Unconfigured()

	_, err := store.CreateDocument(ctx, "planet", Record{"name": "Glubublub"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.GetDocuments(ctx, "planet")
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.FindDocument(ctx, "planet", Record{"name": "Glubublub"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.Collections(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = store.CountDocuments(ctx, "planet")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.ErrorIs(t, store.Ping(ctx), ErrUnavailable)
}

func TestOpError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &OpError{Op: "list", Collection: "planet", Err: cause}

	assert.Equal(t, `docstore: list "planet": connection reset`, err.Error())
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUnavailable)

	var opErr *OpError
	require.ErrorAs(t, error(err), &opErr)
	assert.Equal(t, "planet", opErr.Collection)
}

func TestOpError_NoCollection(t *testing.T) {
	err := &OpError{Op: "ping", Err: errors.New("timeout")}
	assert.Equal(t, "docstore: ping: timeout", err.Error())
}
