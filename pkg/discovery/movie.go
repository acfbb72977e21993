package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
)

// CreateMovie adds the movie file at path to the inventory. A file in the
// folder of a known movie becomes another version of it. Calling it again
// for a known path writes nothing.
func (d *Discoverer) CreateMovie(ctx context.Context, path string) error {
	c, err := classify(path, d.mediaRoot, inventory.KindMovie)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	p, err := library.ParseMovie(c)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	return d.upsertFileItem(ctx, p, MetadataRequest{
		Category: inventory.KindMovie,
		Title:    p.Title,
		Year:     p.Year,
		Language: p.Language,
	})
}

// classify places path below the media root and checks it belongs to want
func classify(path, mediaRoot string, want inventory.Kind) (library.Classification, error) {
	c, err := library.Classify(path, mediaRoot)
	if err != nil {
		return c, err
	}
	if c.Category != want {
		return c, fmt.Errorf("%w: %s is not a %s path", library.ErrUnknownCategory, path, want)
	}
	return c, nil
}

// upsertFileItem stores a movie or book. Known version paths are a no-op, a
// known folder gets another version and anything else is a new item, reusing
// the id of a binned item with the same title.
func (d *Discoverer) upsertFileItem(ctx context.Context, p library.Parsed, req MetadataRequest) error {
	log := logger.FromCtx(ctx).With("path", p.Path, "category", p.Category)
	kind := p.Category

	if _, ok, err := d.findByVersionPath(ctx, kind, p.Path); err != nil {
		return err
	} else if ok {
		log.Debug("version already known")
		return nil
	}

	if p.FolderPath != "" {
		existing, ok, err := d.findByFolderPath(ctx, kind, p.FolderPath)
		if err != nil {
			return err
		}
		if ok {
			item := existing.Clone()
			item.Versions = append(item.Versions, d.newVersion(ctx, p.Path, p.Version, kind))
			item.MergeAddons(d.addons.DiscoverAddons(p.Path))

			if err := d.inventory.UpdateByID(ctx, item); err != nil {
				return fmt.Errorf("failed to add version to %s: %w", item.ID, err)
			}
			log.Infow("added version", "id", item.ID, "title", item.Title, "version", p.Version)
			return nil
		}
	}

	item := inventory.Item{
		ID:    uuid.New(),
		Title: p.Title,
		Kind:  kind,
	}
	if p.FolderPath != "" {
		item.FolderPath = inventory.Ptr(p.FolderPath)
	}

	binned, err := d.bin.GetItemByTitle(ctx, kind, p.Title)
	restored := err == nil
	switch {
	case restored:
		item.ID = binned.ID
		item.MetadataID = binned.MetadataID
		log.Infow("restoring binned item", "id", item.ID, "title", item.Title)
	case errors.Is(err, storage.ErrNotFound):
	default:
		return fmt.Errorf("failed to look up bin: %w", err)
	}

	item.Versions = []inventory.Version{d.newVersion(ctx, p.Path, p.Version, kind)}
	item.Addons = d.addons.DiscoverAddons(p.Path)

	if item.MetadataID == nil {
		req.ParentID = item.ID
		item.MetadataID = d.lookupMetadata(ctx, req)
	}

	if err := d.addItem(ctx, item); err != nil {
		return err
	}

	if restored {
		if err := d.bin.RemoveByID(ctx, kind, item.ID); err != nil {
			return fmt.Errorf("failed to remove %s from bin: %w", item.ID, err)
		}
	}

	log.Infow("created item", "id", item.ID, "title", item.Title)
	return nil
}
