package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestNormalize(t *testing.T) {
	oid := bson.NewObjectID()

	tests := []struct {
		name string
		in   Record
		want Record
	}{
		{
			name: "nil record passes through",
			in:   nil,
			want: nil,
		},
		{
			name: "object id is stringified under id",
			in:   Record{"_id": oid, "name": "Glubublub", "distance_ly": 12.5},
			want: Record{"id": oid.Hex(), "name": "Glubublub", "distance_ly": 12.5},
		},
		{
			name: "string id is kept as is",
			in:   Record{"_id": "abc123", "name": "Whispris"},
			want: Record{"id": "abc123", "name": "Whispris"},
		},
		{
			name: "non-string non-oid id is formatted",
			in:   Record{"_id": int64(42)},
			want: Record{"id": "42"},
		},
		{
			name: "record without internal id is unchanged",
			in:   Record{"name": "Unicornucopia", "difficulty": "Easy"},
			want: Record{"name": "Unicornucopia", "difficulty": "Easy"},
		},
		{
			name: "empty record stays empty",
			in:   Record{},
			want: Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "_id")
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rec := Record{"_id": bson.NewObjectID(), "name": "Lavar Major"}

	once := Normalize(rec)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
	assert.NotContains(t, twice, "_id")
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	oid := bson.NewObjectID()
	rec := Record{"_id": oid, "name": "Glubublub"}

	out := Normalize(rec)

	require.NotNil(t, out)
	assert.Equal(t, oid, rec["_id"], "caller's record must keep its _id")
	assert.NotContains(t, rec, "id")
}

func TestNormalizeAll(t *testing.T) {
	t.Run("nil sequence returns nil", func(t *testing.T) {
		assert.Nil(t, NormalizeAll(nil))
	})

	t.Run("empty sequence returns empty", func(t *testing.T) {
		got := NormalizeAll([]Record{})
		require.NotNil(t, got)
		assert.Len(t, got, 0)
	})

	t.Run("length and order are preserved", func(t *testing.T) {
		in := []Record{
			{"_id": bson.NewObjectID(), "name": "Glubublub"},
			{"name": "Whispris"},
			{"_id": "raw-id", "name": "Lavar Major"},
		}

		got := NormalizeAll(in)

		require.Len(t, got, len(in))
		assert.Equal(t, "Glubublub", got[0]["name"])
		assert.Equal(t, "Whispris", got[1]["name"])
		assert.Equal(t, "Lavar Major", got[2]["name"])
		for _, rec := range got {
			assert.NotContains(t, rec, "_id")
		}
		assert.IsType(t, "", got[0]["id"])
		assert.NotContains(t, got[1], "id")
		assert.Equal(t, "raw-id", got[2]["id"])
	})
}
