package discovery

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/cache"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"go.uber.org/zap"
)

// reconciledKinds own versions. Shows and seasons only go to the bin through their episodes.
var reconciledKinds = []inventory.Kind{inventory.KindMovie, inventory.KindEpisode, inventory.KindBook}

// linkedKinds pairs each parent kind with the kind it lists, children first
var linkedKinds = []struct{ parent, child inventory.Kind }{
	{inventory.KindSeason, inventory.KindEpisode},
	{inventory.KindShow, inventory.KindSeason},
}

// MoveToBinIfDeleted drops addons and versions whose files are gone and moves
// items without versions to the bin. present is the current set of media files.
// Afterwards seasons and shows lose ids of children that no longer exist.
// A failing item is logged and skipped; cancelling ctx stops the pass between items.
func (d *Discoverer) MoveToBinIfDeleted(ctx context.Context, present library.MediaSet) error {
	log := logger.FromCtx(ctx)
	listings := cache.New[string, []string]()

	for _, kind := range reconciledKinds {
		items, err := d.inventory.ListItems(ctx, kind)
		if err != nil {
			return fmt.Errorf("failed to list %s items: %w", kind, err)
		}

		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := d.reconcileItem(ctx, item, present, listings); err != nil {
				log.Error("failed to reconcile item",
					zap.String("id", item.ID.String()),
					zap.String("category", string(kind)),
					zap.Error(err))
			}
		}
	}

	return d.pruneLinks(ctx)
}

// pruneLinks detaches child ids whose item is gone. They are left behind when a
// pass stops between removing a child and detaching it from its parent.
func (d *Discoverer) pruneLinks(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	for _, l := range linkedKinds {
		children, err := d.inventory.ListItems(ctx, l.child)
		if err != nil {
			return fmt.Errorf("failed to list %s items: %w", l.child, err)
		}
		known := make(map[uuid.UUID]struct{}, len(children))
		for _, c := range children {
			known[c.ID] = struct{}{}
		}

		parents, err := d.inventory.ListItems(ctx, l.parent)
		if err != nil {
			return fmt.Errorf("failed to list %s items: %w", l.parent, err)
		}

		for _, parent := range parents {
			for _, id := range parent.ChildIDs() {
				if _, ok := known[id]; ok {
					continue
				}
				if err := ctx.Err(); err != nil {
					return err
				}

				log.Warnw("dropping link to missing item", "parent", parent.ID, "child", id, "category", l.child)
				if err := d.detach(ctx, l.parent, parent.ID, id); err != nil {
					log.Error("failed to drop link",
						zap.String("id", parent.ID.String()),
						zap.String("category", string(l.parent)),
						zap.Error(err))
					break
				}
			}
		}
	}

	return nil
}

func (d *Discoverer) reconcileItem(ctx context.Context, item inventory.Item, present library.MediaSet, listings *cache.Cache[string, []string]) error {
	item = item.Clone()
	changed := false

	dir := d.addonDir(item)
	onDisk := listings.GetOrCreate(dir, func() []string {
		return d.addons.ListAddonFiles(dir)
	})
	before := len(item.Addons)
	item.Addons = slices.DeleteFunc(item.Addons, func(a inventory.Addon) bool {
		return !slices.Contains(onDisk, a.Path)
	})
	changed = len(item.Addons) != before

	var gone []inventory.Version
	item.Versions = slices.DeleteFunc(item.Versions, func(v inventory.Version) bool {
		if present.Contains(v.Path) {
			return false
		}
		gone = append(gone, v)
		return true
	})

	for _, v := range gone {
		if err := d.fileInfo.DeleteFileInfoByParentID(ctx, item.Kind, v.ID); err != nil {
			logger.FromCtx(ctx).Warn("failed to delete file info", zap.String("version", v.ID.String()), zap.Error(err))
		}
	}

	if len(item.Versions) == 0 {
		return d.moveToBin(ctx, item)
	}

	if !changed && len(gone) == 0 {
		return nil
	}

	return d.inventory.UpdateByID(ctx, item)
}

// addonDir is the item's own folder, or its category folder for loose files and episodes
func (d *Discoverer) addonDir(item inventory.Item) string {
	if item.FolderPath != nil {
		return *item.FolderPath
	}
	folder, _ := library.CategoryFolder(item.Kind)
	return filepath.Join(d.mediaRoot, folder)
}

// moveToBin stores item in the bin, removes it from the inventory and detaches
// it from its parent, binning parents that end up without children.
func (d *Discoverer) moveToBin(ctx context.Context, item inventory.Item) error {
	if err := d.bin.AddItem(ctx, item); err != nil {
		if !errors.Is(err, storage.ErrAlreadyExists) {
			return fmt.Errorf("failed to bin %s: %w", item.ID, err)
		}
		// left over from an interrupted pass
		logger.FromCtx(ctx).Warnw("item already in bin", "id", item.ID)
	}

	if err := d.inventory.RemoveByID(ctx, item.Kind, item.ID); err != nil {
		return fmt.Errorf("failed to remove %s from inventory: %w", item.ID, err)
	}

	logger.FromCtx(ctx).Infow("moved item to bin", "id", item.ID, "title", item.Title, "category", item.Kind)

	switch {
	case item.Kind == inventory.KindEpisode && item.Episode != nil:
		return d.detach(ctx, inventory.KindSeason, item.Episode.SeasonID, item.ID)
	case item.Kind == inventory.KindSeason && item.Season != nil:
		return d.detach(ctx, inventory.KindShow, item.Season.ShowID, item.ID)
	}

	return nil
}

// detach removes childID from the parent's id list
func (d *Discoverer) detach(ctx context.Context, parentKind inventory.Kind, parentID, childID uuid.UUID) error {
	parent, err := d.inventory.GetItem(ctx, parentKind, parentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	parent = parent.Clone()
	remaining := 0
	switch parentKind {
	case inventory.KindSeason:
		if parent.Season == nil {
			parent.Season = &inventory.SeasonFields{}
		}
		parent.Season.EpisodeIDs = inventory.RemoveID(parent.Season.EpisodeIDs, childID)
		remaining = len(parent.Season.EpisodeIDs)
	case inventory.KindShow:
		if parent.Show == nil {
			parent.Show = &inventory.ShowFields{}
		}
		parent.Show.SeasonIDs = inventory.RemoveID(parent.Show.SeasonIDs, childID)
		remaining = len(parent.Show.SeasonIDs)
	}

	if remaining == 0 {
		return d.moveToBin(ctx, parent)
	}

	return d.inventory.UpdateByID(ctx, parent)
}
