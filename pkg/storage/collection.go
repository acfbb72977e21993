package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Collection is a typed view over a document holding a json array
type Collection[T any] struct {
	docs DocumentStore
	name string
}

// NewCollection returns a collection stored in the document called name
func NewCollection[T any](docs DocumentStore, name string) Collection[T] {
	return Collection[T]{docs: docs, name: name}
}

// Name of the backing document
func (c Collection[T]) Name() string {
	return c.name
}

// List decodes every entry. A missing or empty document is an empty collection.
func (c Collection[T]) List(ctx context.Context) ([]T, error) {
	b, err := c.docs.Read(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}

	return decode[T](c.name, b)
}

// Update applies fn to the decoded entries and persists the result as one write
func (c Collection[T]) Update(ctx context.Context, fn func([]T) ([]T, error)) error {
	return c.docs.Modify(ctx, c.name, func(current []byte) ([]byte, error) {
		entries, err := decode[T](c.name, current)
		if err != nil {
			return nil, err
		}

		entries, err = fn(entries)
		if err != nil {
			return nil, err
		}

		if entries == nil {
			entries = []T{}
		}

		return json.MarshalIndent(entries, "", "  ")
	})
}

func decode[T any](name string, b []byte) ([]T, error) {
	entries := []T{}
	if len(bytes.TrimSpace(b)) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return entries, nil
}
