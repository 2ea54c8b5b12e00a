// Package docstore is an in-memory emulation of a minimal document-database
// API. Collections are insertion-ordered and schemaless; filters are
// field-equality maps with a not-equal operator. Update and delete affect at
// most the first matching document per call. That first-match-only contract
// is deliberate and callers depend on it.
package docstore

import (
	"context"
	"reflect"
	"sync"
	"time"

	ierr "github.com/adminboard/adminboard/internal/errors"
	"github.com/oklog/ulid/v2"
)

// Reserved field names managed by the store.
const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Document is a single schemaless record.
type Document map[string]any

// Filter holds field clauses that every matching document must satisfy.
// Values compare by equality; wrap a value in NotEqual for the inverse.
// Clauses the store does not understand never match, they do not error.
type Filter map[string]any

// UpdateResult reports the outcome of an UpdateOne call.
type UpdateResult struct {
	MatchedCount  int
	ModifiedCount int
}

// DeleteResult reports the outcome of a DeleteOne call.
type DeleteResult struct {
	DeletedCount int
}

type notEqual struct {
	value any
}

// NotEqual wraps a filter value so the clause matches documents whose field
// differs from v.
func NotEqual(v any) any {
	return notEqual{value: v}
}

// Store owns the named collections. The single RWMutex is what makes the
// first-match update/delete contract hold under concurrent requests.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func New() *Store {
	return &Store{
		collections: make(map[string][]Document),
	}
}

// Collection returns a handle for the named collection. The collection
// itself is created on first use; operating on an unknown name never fails.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

// Clear drops all collections. Intended for tests.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections = make(map[string][]Document)
}

// Collection is a named, insertion-ordered sequence of documents.
type Collection struct {
	store *Store
	name  string
}

// InsertOne stores a new document. The store assigns createdAt/updatedAt and,
// when the caller did not pre-assign one, a ULID _id (time-prefixed plus
// random suffix, collision-free within the process). Returns a copy of the
// stored document.
func (c *Collection) InsertOne(ctx context.Context, doc Document) (Document, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	stored := copyDocument(doc)
	id, _ := stored[FieldID].(string)
	if id == "" {
		id = ulid.Make().String()
	}

	for _, existing := range c.store.collections[c.name] {
		if existing[FieldID] == id {
			return nil, ierr.NewError("duplicate document id").
				WithHintf("A document with id %s already exists in %s", id, c.name).
				Mark(ierr.ErrAlreadyExists)
		}
	}

	now := time.Now().UTC()
	stored[FieldID] = id
	stored[FieldCreatedAt] = now
	stored[FieldUpdatedAt] = now

	c.store.collections[c.name] = append(c.store.collections[c.name], stored)
	return copyDocument(stored), nil
}

// FindOne returns a copy of the first document (insertion order) matching
// the filter, or (nil, nil) when nothing matches. A missing document is not
// an error.
func (c *Collection) FindOne(ctx context.Context, filter Filter) (Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	for _, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			return copyDocument(doc), nil
		}
	}
	return nil, nil
}

// Find returns copies of all matching documents in insertion order. A nil or
// empty filter returns the whole collection.
func (c *Collection) Find(ctx context.Context, filter Filter) ([]Document, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	data := c.store.collections[c.name]
	results := make([]Document, 0, len(data))
	for _, doc := range data {
		if matches(doc, filter) {
			results = append(results, copyDocument(doc))
		}
	}
	return results, nil
}

// FindPage returns the offset/limit slice of the matching documents.
// Out-of-range offsets yield an empty slice.
func (c *Collection) FindPage(ctx context.Context, filter Filter, offset, limit int) ([]Document, error) {
	results, err := c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if offset < 0 || offset >= len(results) {
		return []Document{}, nil
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end], nil
}

// UpdateOne merges set into the first matching document and refreshes
// updatedAt. _id and createdAt are immutable and silently dropped from the
// patch. Counts are 0/0 when nothing matches; the call never touches more
// than one document.
func (c *Collection) UpdateOne(ctx context.Context, filter Filter, set Document) (UpdateResult, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.collections[c.name]
	for i, doc := range data {
		if !matches(doc, filter) {
			continue
		}
		for k, v := range set {
			if k == FieldID || k == FieldCreatedAt {
				continue
			}
			doc[k] = v
		}
		doc[FieldUpdatedAt] = time.Now().UTC()
		data[i] = doc
		return UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return UpdateResult{}, nil
}

// DeleteOne removes the first matching document. DeletedCount is 0 or 1.
func (c *Collection) DeleteOne(ctx context.Context, filter Filter) (DeleteResult, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	data := c.store.collections[c.name]
	for i, doc := range data {
		if matches(doc, filter) {
			c.store.collections[c.name] = append(data[:i:i], data[i+1:]...)
			return DeleteResult{DeletedCount: 1}, nil
		}
	}
	return DeleteResult{}, nil
}

// CountDocuments counts matches; a nil or empty filter counts the whole
// collection.
func (c *Collection) CountDocuments(ctx context.Context, filter Filter) (int, error) {
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	count := 0
	for _, doc := range c.store.collections[c.name] {
		if matches(doc, filter) {
			count++
		}
	}
	return count, nil
}

func matches(doc Document, filter Filter) bool {
	for field, want := range filter {
		switch clause := want.(type) {
		case notEqual:
			if valuesEqual(doc[field], clause.value) {
				return false
			}
		case map[string]any:
			// Operator-object form, as the emulated wire API spells it.
			ne, ok := clause["$ne"]
			if !ok || valuesEqual(doc[field], ne) {
				return false
			}
		case Filter:
			ne, ok := clause["$ne"]
			if !ok || valuesEqual(doc[field], ne) {
				return false
			}
		default:
			if !valuesEqual(doc[field], want) {
				return false
			}
		}
	}
	return true
}

func valuesEqual(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Equal(bt)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func copyDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
