// Package storage persists the inventory, the bin and collaborator records as named documents.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
)

var (
	ErrNotFound      = errors.New("not found in storage")
	ErrAlreadyExists = errors.New("item already exists")
)

//go:generate mockgen -package mocks -destination mocks/mock_storage.go github.com/openmediastation/mediaserver/pkg/storage InventoryStore,BinStore

// DocumentStore persists whole documents by name. A missing document reads as nil.
// Modify runs fn against the current contents and stores the result atomically;
// concurrent Modify calls on the same name are serialized.
type DocumentStore interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Modify(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error
	Close() error
}

// InventoryStore holds the live inventory partitioned by kind
type InventoryStore interface {
	ListItems(ctx context.Context, kind inventory.Kind) ([]inventory.Item, error)
	GetItem(ctx context.Context, kind inventory.Kind, id uuid.UUID) (inventory.Item, error)
	FindItem(ctx context.Context, kind inventory.Kind, match func(inventory.Item) bool) (inventory.Item, error)
	AddItem(ctx context.Context, item inventory.Item) error
	UpdateByID(ctx context.Context, item inventory.Item) error
	RemoveByID(ctx context.Context, kind inventory.Kind, id uuid.UUID) error
	Update(ctx context.Context, kind inventory.Kind, fn func([]inventory.Item) ([]inventory.Item, error)) error
}

// BinStore holds items whose last version disappeared so their ids can be reused
type BinStore interface {
	ListItems(ctx context.Context, kind inventory.Kind) ([]inventory.Item, error)
	GetItemByTitle(ctx context.Context, kind inventory.Kind, title string) (inventory.Item, error)
	AddItem(ctx context.Context, item inventory.Item) error
	RemoveByID(ctx context.Context, kind inventory.Kind, id uuid.UUID) error
}
