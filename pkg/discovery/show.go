package discovery

import (
	"context"
	"fmt"
	"slices"

	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
)

// CreateShow adds the episode file at path together with its show and season.
// Every level is looked up before it is created so a known path writes nothing.
func (d *Discoverer) CreateShow(ctx context.Context, path string) error {
	c, err := classify(path, d.mediaRoot, inventory.KindShow)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	p, err := library.ParseShow(c)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	show, err := d.upsertShow(ctx, p.Show)
	if err != nil {
		return err
	}

	season, err := d.upsertSeason(ctx, p.Show, show)
	if err != nil {
		return err
	}

	return d.upsertEpisode(ctx, p, show, season)
}

func (d *Discoverer) upsertShow(ctx context.Context, s *library.ParsedShow) (inventory.Item, error) {
	show, ok, err := d.findByFolderPath(ctx, inventory.KindShow, s.FolderPath)
	if err != nil || ok {
		return show, err
	}

	show = inventory.NewShow(s.Title, s.FolderPath)
	show.MetadataID = d.lookupMetadata(ctx, MetadataRequest{
		Category: inventory.KindShow,
		ParentID: show.ID,
		Title:    s.SearchTitle,
		Year:     s.Year,
	})

	if err := d.addItem(ctx, show); err != nil {
		return show, err
	}

	logger.FromCtx(ctx).Infow("created show", "id", show.ID, "title", show.Title)
	return show, nil
}

// upsertSeason keys the season by the directory holding the episode, so
// irregular season folder names still dedup. A known season is relinked when
// an interrupted scan left it out of the show.
func (d *Discoverer) upsertSeason(ctx context.Context, s *library.ParsedShow, show inventory.Item) (inventory.Item, error) {
	season, ok, err := d.findByFolderPath(ctx, inventory.KindSeason, s.SeasonFolder)
	if err != nil {
		return season, err
	}
	if ok {
		return season, d.link(ctx, show, season)
	}

	season = inventory.NewSeason(s.SeasonTitle, s.SeasonFolder, show.ID, s.Season)
	season.MetadataID = d.lookupMetadata(ctx, MetadataRequest{
		Category: inventory.KindSeason,
		ParentID: season.ID,
		Title:    s.SearchTitle,
		Year:     s.Year,
		Season:   s.Season,
	})

	if err := d.addItem(ctx, season); err != nil {
		return season, err
	}

	if err := d.link(ctx, show, season); err != nil {
		return season, err
	}

	logger.FromCtx(ctx).Infow("created season", "id", season.ID, "show", show.Title, "season", s.Season)
	return season, nil
}

// upsertEpisode identifies episodes by their file, never by folder
func (d *Discoverer) upsertEpisode(ctx context.Context, p library.Parsed, show, season inventory.Item) error {
	episode, ok, err := d.findByVersionPath(ctx, inventory.KindEpisode, p.Path)
	if err != nil {
		return err
	}
	if ok {
		return d.link(ctx, season, episode)
	}

	s := p.Show
	episode = inventory.NewEpisode(p.Title, season.ID, s.Season, s.Episode)
	episode.Versions = []inventory.Version{d.newVersion(ctx, p.Path, "", inventory.KindEpisode)}
	episode.Addons = d.addons.DiscoverAddons(p.Path)
	episode.MetadataID = d.lookupMetadata(ctx, MetadataRequest{
		Category: inventory.KindEpisode,
		ParentID: episode.ID,
		Title:    s.SearchTitle,
		Year:     s.Year,
		Season:   s.Season,
		Episode:  s.Episode,
	})

	if err := d.addItem(ctx, episode); err != nil {
		return err
	}

	if err := d.link(ctx, season, episode); err != nil {
		return err
	}

	logger.FromCtx(ctx).Infow("created episode", "id", episode.ID, "title", episode.Title, "path", p.Path)
	return nil
}

// link adds child to the id list of parent as one read-modify-write.
// Children parent already lists cost no write.
func (d *Discoverer) link(ctx context.Context, parent, child inventory.Item) error {
	if slices.Contains(parent.ChildIDs(), child.ID) {
		return nil
	}

	err := d.inventory.Update(ctx, parent.Kind, func(items []inventory.Item) ([]inventory.Item, error) {
		idx := slices.IndexFunc(items, func(i inventory.Item) bool { return i.ID == parent.ID })
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s %s", storage.ErrNotFound, parent.Kind, parent.ID)
		}
		items[idx].LinkChild(child.ID)
		return items, nil
	})
	if err != nil {
		return fmt.Errorf("failed to link %s %s to %s %s: %w", child.Kind, child.ID, parent.Kind, parent.ID, err)
	}

	logger.FromCtx(ctx).Debugw("linked item", "parent", parent.ID, "child", child.ID, "category", child.Kind)
	return nil
}
