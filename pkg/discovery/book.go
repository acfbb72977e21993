package discovery

import (
	"context"

	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/library"
)

// CreateBook adds the book file at path to the inventory. It dedups the same
// way as CreateMovie; metadata is looked up by title only.
func (d *Discoverer) CreateBook(ctx context.Context, path string) error {
	c, err := classify(path, d.mediaRoot, inventory.KindBook)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	p, err := library.ParseBook(c)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	return d.upsertFileItem(ctx, p, MetadataRequest{
		Category: inventory.KindBook,
		Title:    p.Title,
	})
}
