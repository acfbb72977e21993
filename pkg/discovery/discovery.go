// Package discovery turns media file paths into inventory mutations and
// cleans up items whose files disappeared.
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
	"go.uber.org/zap"
)

// ErrSkipped marks a path that discovery ignores because it cannot be classified or parsed
var ErrSkipped = errors.New("path skipped")

//go:generate mockgen -package mocks -destination mocks/mock_collaborators.go github.com/openmediastation/mediaserver/pkg/discovery MetadataLookup,FileInfoProbe,AddonDiscovery

// MetadataRequest describes what a parsed path tells us about an item
type MetadataRequest struct {
	Category inventory.Kind
	ParentID uuid.UUID
	Title    string
	Year     int
	Season   int
	Episode  int
	Language string
}

// MetadataLookup creates a metadata record for an item and returns its id
type MetadataLookup interface {
	CreateNewMetadata(ctx context.Context, req MetadataRequest) (*uuid.UUID, error)
}

// FileInfoProbe records technical details of the file behind a version
type FileInfoProbe interface {
	CreateFileInfo(ctx context.Context, path string, versionID uuid.UUID, kind inventory.Kind) (*uuid.UUID, error)
	DeleteFileInfoByParentID(ctx context.Context, kind inventory.Kind, versionID uuid.UUID) error
}

// AddonDiscovery lists sidecar files. It never fails; unreadable locations have no addons.
type AddonDiscovery interface {
	DiscoverAddons(path string) []inventory.Addon
	ListAddonFiles(dir string) []string
}

// Discoverer creates and reconciles inventory items for paths below the media root
type Discoverer struct {
	mediaRoot string
	inventory storage.InventoryStore
	bin       storage.BinStore
	metadata  MetadataLookup
	fileInfo  FileInfoProbe
	addons    AddonDiscovery
}

func New(mediaRoot string, inventory storage.InventoryStore, bin storage.BinStore, metadata MetadataLookup, fileInfo FileInfoProbe, addons AddonDiscovery) *Discoverer {
	return &Discoverer{
		mediaRoot: mediaRoot,
		inventory: inventory,
		bin:       bin,
		metadata:  metadata,
		fileInfo:  fileInfo,
		addons:    addons,
	}
}

// MediaRoot is the directory discovery classifies paths against
func (d *Discoverer) MediaRoot() string {
	return d.mediaRoot
}

// Create dispatches path to the discovery of its category. Paths that cannot be
// classified or parsed write nothing and return an error wrapping ErrSkipped.
func (d *Discoverer) Create(ctx context.Context, path string) error {
	c, err := library.Classify(path, d.mediaRoot)
	if err != nil {
		return skipUnparseable(ctx, path, err)
	}

	switch c.Category {
	case inventory.KindMovie:
		return d.CreateMovie(ctx, path)
	case inventory.KindShow:
		return d.CreateShow(ctx, path)
	case inventory.KindBook:
		return d.CreateBook(ctx, path)
	}

	return fmt.Errorf("%w: no discovery for %s", ErrSkipped, c.Category)
}

// skipUnparseable turns a parse failure into ErrSkipped
func skipUnparseable(ctx context.Context, path string, err error) error {
	if errors.Is(err, library.ErrUnparseable) || errors.Is(err, library.ErrUnknownCategory) || errors.Is(err, library.ErrOutsideRoot) {
		logger.FromCtx(ctx).Warnw("skipping unparseable path", "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrSkipped, err)
	}
	return err
}

func (d *Discoverer) lookupMetadata(ctx context.Context, req MetadataRequest) *uuid.UUID {
	id, err := d.metadata.CreateNewMetadata(ctx, req)
	if err != nil {
		logger.FromCtx(ctx).Warn("metadata lookup failed",
			zap.String("title", req.Title),
			zap.String("category", string(req.Category)),
			zap.Error(err))
		return nil
	}
	return id
}

func (d *Discoverer) newVersion(ctx context.Context, path, name string, kind inventory.Kind) inventory.Version {
	v := inventory.Version{
		ID:   uuid.New(),
		Path: path,
		Name: name,
	}

	id, err := d.fileInfo.CreateFileInfo(ctx, path, v.ID, kind)
	if err != nil {
		logger.FromCtx(ctx).Warn("file info could not be created", zap.String("path", path), zap.Error(err))
	}
	v.FileInfoID = id

	return v
}

// findByVersionPath returns the item of kind that already has a version at path
func (d *Discoverer) findByVersionPath(ctx context.Context, kind inventory.Kind, path string) (inventory.Item, bool, error) {
	return d.find(ctx, kind, func(i inventory.Item) bool { return i.HasVersionPath(path) })
}

// findByFolderPath returns the item of kind grouped under folder
func (d *Discoverer) findByFolderPath(ctx context.Context, kind inventory.Kind, folder string) (inventory.Item, bool, error) {
	return d.find(ctx, kind, func(i inventory.Item) bool { return i.HasFolderPath(folder) })
}

func (d *Discoverer) find(ctx context.Context, kind inventory.Kind, match func(inventory.Item) bool) (inventory.Item, bool, error) {
	item, err := d.inventory.FindItem(ctx, kind, match)
	if errors.Is(err, storage.ErrNotFound) {
		return inventory.Item{}, false, nil
	}
	if err != nil {
		return inventory.Item{}, false, err
	}
	return item, true, nil
}

// addItem stores a new item. A duplicate id means the existence checks were bypassed.
func (d *Discoverer) addItem(ctx context.Context, item inventory.Item) error {
	err := d.inventory.AddItem(ctx, item)
	if errors.Is(err, storage.ErrAlreadyExists) {
		logger.FromCtx(ctx).Error("item added twice", zap.String("id", item.ID.String()), zap.String("category", string(item.Kind)), zap.Error(err))
	}
	return err
}
