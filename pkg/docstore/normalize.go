package docstore

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	internalIDField = "_id"
	publicIDField   = "id"
)

// Normalize returns a copy of the record safe to cross the API boundary:
// the store-assigned "_id" field is removed and reinserted as a
// string-typed "id". A record without "_id" passes through unchanged, so
// the transformation is idempotent. The caller's record is never mutated.
func Normalize(rec Record) Record {
	if rec == nil {
		return nil
	}

	out := make(Record, len(rec))
	for k, v := range rec {
		if k == internalIDField {
			continue
		}
		out[k] = v
	}
	if raw, ok := rec[internalIDField]; ok {
		out[publicIDField] = idString(raw)
	}
	return out
}

// NormalizeAll normalizes a sequence element-wise, preserving order.
func NormalizeAll(recs []Record) []Record {
	if recs == nil {
		return nil
	}

	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = Normalize(rec)
	}
	return out
}

// idString renders a store identifier as a string. ObjectIDs use their hex
// form; anything else falls back to its default formatting.
func idString(v any) string {
	switch id := v.(type) {
	case bson.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
