package storage

import (
	"context"
	"fmt"
	"path"
	"slices"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
)

var (
	_ InventoryStore = (*ItemStore)(nil)
	_ BinStore       = (*ItemStore)(nil)
)

// ItemStore keeps one collection of items per kind under a common prefix
type ItemStore struct {
	docs   DocumentStore
	prefix string
}

// NewInventory returns the live inventory backed by docs
func NewInventory(docs DocumentStore) *ItemStore {
	return &ItemStore{docs: docs, prefix: "inventory"}
}

// NewBin returns the bin backed by docs
func NewBin(docs DocumentStore) *ItemStore {
	return &ItemStore{docs: docs, prefix: "bin"}
}

func (s *ItemStore) collection(kind inventory.Kind) Collection[inventory.Item] {
	return NewCollection[inventory.Item](s.docs, path.Join(s.prefix, string(kind)))
}

func (s *ItemStore) ListItems(ctx context.Context, kind inventory.Kind) ([]inventory.Item, error) {
	return s.collection(kind).List(ctx)
}

func (s *ItemStore) GetItem(ctx context.Context, kind inventory.Kind, id uuid.UUID) (inventory.Item, error) {
	return s.FindItem(ctx, kind, func(i inventory.Item) bool { return i.ID == id })
}

// FindItem returns the first item of kind accepted by match
func (s *ItemStore) FindItem(ctx context.Context, kind inventory.Kind, match func(inventory.Item) bool) (inventory.Item, error) {
	items, err := s.ListItems(ctx, kind)
	if err != nil {
		return inventory.Item{}, err
	}

	idx := slices.IndexFunc(items, match)
	if idx < 0 {
		return inventory.Item{}, ErrNotFound
	}

	return items[idx], nil
}

// GetItemByTitle returns the item of kind with title. Anything but exactly one match is ErrNotFound.
func (s *ItemStore) GetItemByTitle(ctx context.Context, kind inventory.Kind, title string) (inventory.Item, error) {
	items, err := s.ListItems(ctx, kind)
	if err != nil {
		return inventory.Item{}, err
	}

	var found []inventory.Item
	for _, i := range items {
		if i.Title == title {
			found = append(found, i)
		}
	}

	if len(found) != 1 {
		return inventory.Item{}, ErrNotFound
	}

	return found[0], nil
}

// AddItem appends item to its kind's collection and fails with ErrAlreadyExists on a known id
func (s *ItemStore) AddItem(ctx context.Context, item inventory.Item) error {
	return s.collection(item.Kind).Update(ctx, func(items []inventory.Item) ([]inventory.Item, error) {
		if slices.ContainsFunc(items, func(i inventory.Item) bool { return i.ID == item.ID }) {
			return nil, fmt.Errorf("%w: %s %s", ErrAlreadyExists, item.Kind, item.ID)
		}
		return append(items, item), nil
	})
}

// UpdateByID replaces the item with the same id or appends it
func (s *ItemStore) UpdateByID(ctx context.Context, item inventory.Item) error {
	return s.collection(item.Kind).Update(ctx, func(items []inventory.Item) ([]inventory.Item, error) {
		idx := slices.IndexFunc(items, func(i inventory.Item) bool { return i.ID == item.ID })
		if idx < 0 {
			return append(items, item), nil
		}
		items[idx] = item
		return items, nil
	})
}

// RemoveByID drops the item with id. Removing an unknown id is not an error.
func (s *ItemStore) RemoveByID(ctx context.Context, kind inventory.Kind, id uuid.UUID) error {
	return s.collection(kind).Update(ctx, func(items []inventory.Item) ([]inventory.Item, error) {
		return slices.DeleteFunc(items, func(i inventory.Item) bool { return i.ID == id }), nil
	})
}

// Update runs fn over the whole collection of kind as a single read-modify-write
func (s *ItemStore) Update(ctx context.Context, kind inventory.Kind, fn func([]inventory.Item) ([]inventory.Item, error)) error {
	return s.collection(kind).Update(ctx, fn)
}
