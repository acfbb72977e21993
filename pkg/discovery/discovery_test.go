package discovery_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/discovery"
	"github.com/openmediastation/mediaserver/pkg/discovery/mocks"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"github.com/openmediastation/mediaserver/pkg/storage/jsonfile"
	storageMocks "github.com/openmediastation/mediaserver/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const mediaRoot = "/media"

type fixture struct {
	discoverer *discovery.Discoverer
	docs       *jsonfile.Store
	root       string
	inventory  *storage.ItemStore
	bin        *storage.ItemStore
	metadata   *mocks.MockMetadataLookup
	fileInfo   *mocks.MockFileInfoProbe
	addons     *mocks.MockAddonDiscovery
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	docs := jsonfile.New(root, &io.MediaFileSystem{})
	f := fixture{
		docs:      docs,
		root:      root,
		inventory: storage.NewInventory(docs),
		bin:       storage.NewBin(docs),
		metadata:  mocks.NewMockMetadataLookup(ctrl),
		fileInfo:  mocks.NewMockFileInfoProbe(ctrl),
		addons:    mocks.NewMockAddonDiscovery(ctrl),
	}
	f.discoverer = discovery.New(mediaRoot, f.inventory, f.bin, f.metadata, f.fileInfo, f.addons)
	return f
}

// allowCollaborators lets every collaborator succeed any number of times
func (f fixture) allowCollaborators() {
	f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, discovery.MetadataRequest) (*uuid.UUID, error) {
			return inventory.Ptr(uuid.New()), nil
		}).AnyTimes()
	f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, string, uuid.UUID, inventory.Kind) (*uuid.UUID, error) {
			return inventory.Ptr(uuid.New()), nil
		}).AnyTimes()
	f.fileInfo.EXPECT().DeleteFileInfoByParentID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil).AnyTimes()
	f.addons.EXPECT().ListAddonFiles(gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) items(t *testing.T, kind inventory.Kind) []inventory.Item {
	t.Helper()
	items, err := f.inventory.ListItems(context.Background(), kind)
	require.NoError(t, err)
	return items
}

func (f fixture) binned(t *testing.T, kind inventory.Kind) []inventory.Item {
	t.Helper()
	items, err := f.bin.ListItems(context.Background(), kind)
	require.NoError(t, err)
	return items
}

// document is the stored bytes and modification time of one inventory collection
type document struct {
	contents []byte
	modTime  time.Time
}

func (f fixture) documents(t *testing.T) map[inventory.Kind]document {
	t.Helper()
	docs := make(map[inventory.Kind]document, len(inventory.Kinds))
	for _, kind := range inventory.Kinds {
		name := "inventory/" + string(kind)
		b, err := f.docs.Read(context.Background(), name)
		require.NoError(t, err)

		var modTime time.Time
		if info, err := os.Stat(filepath.Join(f.root, name+".json")); err == nil {
			modTime = info.ModTime()
		}
		docs[kind] = document{contents: b, modTime: modTime}
	}
	return docs
}

// cancelAfterAdd cancels the caller's context once an item of kind is stored,
// stopping discovery between writing a child and linking it.
type cancelAfterAdd struct {
	*storage.ItemStore
	kind   inventory.Kind
	cancel context.CancelFunc
}

func (s cancelAfterAdd) AddItem(ctx context.Context, item inventory.Item) error {
	err := s.ItemStore.AddItem(ctx, item)
	if item.Kind == s.kind {
		s.cancel()
	}
	return err
}

func versionPaths(item inventory.Item) []string {
	paths := make([]string, 0, len(item.Versions))
	for _, v := range item.Versions {
		paths = append(paths, v.Path)
	}
	return paths
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches by category", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.Create(ctx, "/media/Movies/Heat (1995).mkv"))
		require.NoError(t, f.discoverer.Create(ctx, "/media/Shows/Lost/Season 1/01.mkv"))
		require.NoError(t, f.discoverer.Create(ctx, "/media/Books/Dune (1965).epub"))

		assert.Len(t, f.items(t, inventory.KindMovie), 1)
		assert.Len(t, f.items(t, inventory.KindEpisode), 1)
		assert.Len(t, f.items(t, inventory.KindBook), 1)
	})

	t.Run("skips unknown categories", func(t *testing.T) {
		f := newFixture(t)

		for _, path := range []string{"/media/Music/song.mp3", "/srv/Movies/Heat.mkv", "/media/Heat.mkv", "/media/Movies/[Group].mkv"} {
			assert.ErrorIs(t, f.discoverer.Create(ctx, path), discovery.ErrSkipped, path)
		}

		for _, kind := range inventory.Kinds {
			assert.Empty(t, f.items(t, kind))
		}
	})

	t.Run("media root", func(t *testing.T) {
		f := newFixture(t)
		assert.Equal(t, mediaRoot, f.discoverer.MediaRoot())
	})
}

func TestCreateMovie(t *testing.T) {
	ctx := context.Background()

	t.Run("loose file is created once", func(t *testing.T) {
		f := newFixture(t)
		metadataID, fileInfoID := uuid.New(), uuid.New()

		var req discovery.MetadataRequest
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r discovery.MetadataRequest) (*uuid.UUID, error) {
				req = r
				return &metadataID, nil
			}).Times(1)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), "/media/Movies/Ex Machina.mkv", gomock.Any(), inventory.KindMovie).Return(&fileInfoID, nil).Times(1)
		f.addons.EXPECT().DiscoverAddons("/media/Movies/Ex Machina.mkv").Return(nil).Times(1)

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Ex Machina.mkv"))
		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Ex Machina.mkv"))

		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		movie := items[0]

		assert.Equal(t, "Ex Machina", movie.Title)
		assert.Equal(t, inventory.KindMovie, movie.Kind)
		assert.Nil(t, movie.FolderPath)
		assert.Equal(t, &metadataID, movie.MetadataID)
		require.Len(t, movie.Versions, 1)
		assert.Equal(t, "/media/Movies/Ex Machina.mkv", movie.Versions[0].Path)
		assert.Equal(t, &fileInfoID, movie.Versions[0].FileInfoID)

		assert.Equal(t, discovery.MetadataRequest{
			Category: inventory.KindMovie,
			ParentID: movie.ID,
			Title:    "Ex Machina",
		}, req)
	})

	t.Run("folder groups versions", func(t *testing.T) {
		f := newFixture(t)
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).Return(inventory.Ptr(uuid.New()), nil).Times(1)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), inventory.KindMovie).Return(nil, nil).Times(2)
		gomock.InOrder(
			f.addons.EXPECT().DiscoverAddons("/media/Movies/Foo/Foo.mkv").Return([]inventory.Addon{
				{ID: uuid.New(), Path: "/media/Movies/Foo/Foo.en.srt", Category: inventory.AddonSubtitle, Language: "en"},
			}),
			f.addons.EXPECT().DiscoverAddons("/media/Movies/Foo/Foo-Directors Cut.mkv").Return([]inventory.Addon{
				{ID: uuid.New(), Path: "/media/Movies/Foo/Foo.en.srt", Category: inventory.AddonSubtitle, Language: "en"},
				{ID: uuid.New(), Path: "/media/Movies/Foo/Foo-Directors Cut.de.srt", Category: inventory.AddonSubtitle, Language: "de"},
			}),
		)

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Foo/Foo.mkv"))
		first := f.items(t, inventory.KindMovie)
		require.Len(t, first, 1)

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Foo/Foo-Directors Cut.mkv"))

		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		movie := items[0]

		assert.Equal(t, first[0].ID, movie.ID)
		assert.Equal(t, "Foo", movie.Title)
		assert.Equal(t, inventory.Ptr("/media/Movies/Foo"), movie.FolderPath)
		assert.Equal(t, []string{"/media/Movies/Foo/Foo.mkv", "/media/Movies/Foo/Foo-Directors Cut.mkv"}, versionPaths(movie))
		assert.Equal(t, "", movie.Versions[0].Name)
		assert.Equal(t, "Directors Cut", movie.Versions[1].Name)
		assert.Len(t, movie.Addons, 2)
	})

	t.Run("noise is stripped from the title", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Crouching.Tiger.Hidden.Dragon.4K.UltraHD.HDR.BDrip-HDC.mkv"))

		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		assert.Equal(t, "Crouching Tiger Hidden Dragon", items[0].Title)
	})

	t.Run("metadata request carries year and language", func(t *testing.T) {
		f := newFixture(t)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r discovery.MetadataRequest) (*uuid.UUID, error) {
				assert.Equal(t, "Heat", r.Title)
				assert.Equal(t, 1995, r.Year)
				return nil, nil
			})

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Heat (1995)/Heat (1995).mkv"))
	})

	t.Run("collaborator failures leave ids unset", func(t *testing.T) {
		f := newFixture(t)
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).Return(nil, errors.New("expected testing error"))
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("expected testing error"))
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Heat (1995).mkv"))

		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].MetadataID)
		require.Len(t, items[0].Versions, 1)
		assert.Nil(t, items[0].Versions[0].FileInfoID)
	})

	t.Run("unparseable path writes nothing", func(t *testing.T) {
		f := newFixture(t)

		assert.ErrorIs(t, f.discoverer.CreateMovie(ctx, "/media/Movies/[Group].mkv"), discovery.ErrSkipped)
		assert.ErrorIs(t, f.discoverer.CreateMovie(ctx, "/media/Books/Dune.epub"), discovery.ErrSkipped)

		assert.Empty(t, f.items(t, inventory.KindMovie))
	})

	t.Run("restores a binned movie", func(t *testing.T) {
		f := newFixture(t)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)

		binned := inventory.NewMovie("Heat")
		binned.MetadataID = inventory.Ptr(uuid.New())
		require.NoError(t, f.bin.AddItem(ctx, binned))

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Heat (1995).mkv"))

		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		assert.Equal(t, binned.ID, items[0].ID)
		assert.Equal(t, binned.MetadataID, items[0].MetadataID)
		assert.Empty(t, f.binned(t, inventory.KindMovie))
	})

	t.Run("ambiguous bin titles are not reused", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.bin.AddItem(ctx, inventory.NewMovie("Heat")))
		require.NoError(t, f.bin.AddItem(ctx, inventory.NewMovie("Heat")))

		require.NoError(t, f.discoverer.CreateMovie(ctx, "/media/Movies/Heat (1995).mkv"))

		assert.Len(t, f.binned(t, inventory.KindMovie), 2)
		items := f.items(t, inventory.KindMovie)
		require.Len(t, items, 1)
		for _, b := range f.binned(t, inventory.KindMovie) {
			assert.NotEqual(t, b.ID, items[0].ID)
		}
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := storageMocks.NewMockInventoryStore(ctrl)
		inv.EXPECT().FindItem(gomock.Any(), inventory.KindMovie, gomock.Any()).Return(inventory.Item{}, errors.New("expected testing error"))

		d := discovery.New(mediaRoot, inv, storageMocks.NewMockBinStore(ctrl),
			mocks.NewMockMetadataLookup(ctrl), mocks.NewMockFileInfoProbe(ctrl), mocks.NewMockAddonDiscovery(ctrl))

		err := d.CreateMovie(ctx, "/media/Movies/Heat (1995).mkv")
		assert.ErrorContains(t, err, "expected testing error")
	})

	t.Run("duplicate add is reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		inv := storageMocks.NewMockInventoryStore(ctrl)
		bin := storageMocks.NewMockBinStore(ctrl)
		metadata := mocks.NewMockMetadataLookup(ctrl)
		fileInfo := mocks.NewMockFileInfoProbe(ctrl)
		addons := mocks.NewMockAddonDiscovery(ctrl)

		inv.EXPECT().FindItem(gomock.Any(), inventory.KindMovie, gomock.Any()).Return(inventory.Item{}, storage.ErrNotFound)
		bin.EXPECT().GetItemByTitle(gomock.Any(), inventory.KindMovie, "Heat").Return(inventory.Item{}, storage.ErrNotFound)
		metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).Return(nil, nil)
		fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)
		inv.EXPECT().AddItem(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)

		d := discovery.New(mediaRoot, inv, bin, metadata, fileInfo, addons)
		err := d.CreateMovie(ctx, "/media/Movies/Heat (1995).mkv")
		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})
}

func TestCreateShow(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the show hierarchy", func(t *testing.T) {
		f := newFixture(t)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), inventory.KindEpisode).Return(nil, nil).Times(1)
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil).Times(1)

		var requests []discovery.MetadataRequest
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r discovery.MetadataRequest) (*uuid.UUID, error) {
				requests = append(requests, r)
				return inventory.Ptr(uuid.New()), nil
			}).Times(3)

		path := "/media/Shows/Mr Robot/Season 1/Mr Robot S01E01.mp4"
		require.NoError(t, f.discoverer.CreateShow(ctx, path))
		require.NoError(t, f.discoverer.CreateShow(ctx, path))

		shows := f.items(t, inventory.KindShow)
		seasons := f.items(t, inventory.KindSeason)
		episodes := f.items(t, inventory.KindEpisode)
		require.Len(t, shows, 1)
		require.Len(t, seasons, 1)
		require.Len(t, episodes, 1)
		show, season, episode := shows[0], seasons[0], episodes[0]

		assert.Equal(t, "Mr Robot", show.Title)
		assert.Equal(t, inventory.Ptr("/media/Shows/Mr Robot"), show.FolderPath)
		assert.Equal(t, []uuid.UUID{season.ID}, show.Show.SeasonIDs)

		assert.Equal(t, "Season 1", season.Title)
		assert.Equal(t, inventory.Ptr("/media/Shows/Mr Robot/Season 1"), season.FolderPath)
		assert.Equal(t, 1, season.Season.SeasonNr)
		assert.Equal(t, show.ID, season.Season.ShowID)
		assert.Equal(t, []uuid.UUID{episode.ID}, season.Season.EpisodeIDs)

		assert.Equal(t, "Mr Robot S1E1", episode.Title)
		assert.Equal(t, season.ID, episode.Episode.SeasonID)
		assert.Equal(t, 1, episode.Episode.SeasonNr)
		assert.Equal(t, 1, episode.Episode.EpisodeNr)
		assert.Equal(t, []string{path}, versionPaths(episode))

		require.Len(t, requests, 3)
		assert.Equal(t, discovery.MetadataRequest{Category: inventory.KindShow, ParentID: show.ID, Title: "Mr Robot"}, requests[0])
		assert.Equal(t, discovery.MetadataRequest{Category: inventory.KindSeason, ParentID: season.ID, Title: "Mr Robot", Season: 1}, requests[1])
		assert.Equal(t, discovery.MetadataRequest{Category: inventory.KindEpisode, ParentID: episode.ID, Title: "Mr Robot", Season: 1, Episode: 1}, requests[2])
	})

	t.Run("episodes share show and season", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Dark (2017)/Staffel 02/Dark S02E03.mkv"))
		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Dark (2017)/Staffel 02/Dark S02E04.mkv"))
		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Dark (2017)/Staffel 03/Dark S03E01.mkv"))

		shows := f.items(t, inventory.KindShow)
		require.Len(t, shows, 1)
		assert.Equal(t, "Dark (2017)", shows[0].Title)
		assert.Len(t, shows[0].Show.SeasonIDs, 2)

		seasons := f.items(t, inventory.KindSeason)
		require.Len(t, seasons, 2)
		assert.Equal(t, "Staffel 02", seasons[0].Title)
		assert.Len(t, seasons[0].Season.EpisodeIDs, 2)
		assert.Len(t, seasons[1].Season.EpisodeIDs, 1)

		episodes := f.items(t, inventory.KindEpisode)
		require.Len(t, episodes, 3)
		assert.Equal(t, "Dark (2017) S2E3", episodes[0].Title)
	})

	t.Run("metadata is looked up without the folder year", func(t *testing.T) {
		f := newFixture(t)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)

		var requests []discovery.MetadataRequest
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r discovery.MetadataRequest) (*uuid.UUID, error) {
				requests = append(requests, r)
				return nil, nil
			}).Times(3)

		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Dark (2017)/Staffel 02/Dark S02E03.mkv"))

		require.Len(t, requests, 3)
		for _, r := range requests {
			assert.Equal(t, "Dark", r.Title, r.Category)
			assert.Equal(t, 2017, r.Year, r.Category)
		}
	})

	t.Run("loose episodes form a season keyed by the show folder", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Bluey/03 - Hammerbarn.mkv"))
		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Bluey/04 - Hospital.mkv"))

		seasons := f.items(t, inventory.KindSeason)
		require.Len(t, seasons, 1)
		assert.Equal(t, "Season 1", seasons[0].Title)
		assert.Equal(t, inventory.Ptr("/media/Shows/Bluey"), seasons[0].FolderPath)
		assert.Len(t, seasons[0].Season.EpisodeIDs, 2)
	})

	t.Run("rescanning leaves documents untouched", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		paths := []string{
			"/media/Shows/Mr Robot/Season 1/Mr Robot S01E01.mp4",
			"/media/Shows/Mr Robot/Season 1/Mr Robot S01E02.mp4",
			"/media/Movies/Heat (1995).mkv",
			"/media/Movies/Foo/Foo.mkv",
		}
		for _, p := range paths {
			require.NoError(t, f.discoverer.Create(ctx, p))
		}
		before := f.documents(t)

		for _, p := range paths {
			require.NoError(t, f.discoverer.Create(ctx, p))
		}
		assert.Equal(t, before, f.documents(t))
	})

	t.Run("cancelled before the show writes nothing", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := f.discoverer.CreateShow(cancelled, "/media/Shows/Mr Robot/Season 1/Mr Robot S01E01.mp4")
		assert.ErrorIs(t, err, context.Canceled)
		for _, kind := range []inventory.Kind{inventory.KindShow, inventory.KindSeason, inventory.KindEpisode} {
			assert.Empty(t, f.items(t, kind), kind)
		}
	})

	for _, kind := range []inventory.Kind{inventory.KindSeason, inventory.KindEpisode} {
		t.Run("rescan links a "+string(kind)+" stored by a cancelled scan", func(t *testing.T) {
			f := newFixture(t)
			f.allowCollaborators()
			path := "/media/Shows/Mr Robot/Season 1/Mr Robot S01E01.mp4"

			cancelled, cancel := context.WithCancel(ctx)
			defer cancel()
			interrupted := discovery.New(mediaRoot, cancelAfterAdd{ItemStore: f.inventory, kind: kind, cancel: cancel},
				f.bin, f.metadata, f.fileInfo, f.addons)

			err := interrupted.CreateShow(cancelled, path)
			require.ErrorIs(t, err, context.Canceled)
			require.Len(t, f.items(t, kind), 1)

			require.NoError(t, f.discoverer.CreateShow(ctx, path))

			shows := f.items(t, inventory.KindShow)
			seasons := f.items(t, inventory.KindSeason)
			episodes := f.items(t, inventory.KindEpisode)
			require.Len(t, shows, 1)
			require.Len(t, seasons, 1)
			require.Len(t, episodes, 1)
			assert.Equal(t, []uuid.UUID{seasons[0].ID}, shows[0].Show.SeasonIDs)
			assert.Equal(t, []uuid.UUID{episodes[0].ID}, seasons[0].Season.EpisodeIDs)
		})
	}

	t.Run("leading digit fallback", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.CreateShow(ctx, "/media/Shows/Mr Robot/Season 1/01.mp4"))

		episodes := f.items(t, inventory.KindEpisode)
		require.Len(t, episodes, 1)
		assert.Equal(t, 1, episodes[0].Episode.SeasonNr)
		assert.Equal(t, 1, episodes[0].Episode.EpisodeNr)
		assert.Equal(t, "Mr Robot S1E1", episodes[0].Title)
	})

	t.Run("unparseable paths write nothing", func(t *testing.T) {
		f := newFixture(t)

		assert.ErrorIs(t, f.discoverer.CreateShow(ctx, "/media/Shows/Pilot.mkv"), discovery.ErrSkipped)
		assert.ErrorIs(t, f.discoverer.CreateShow(ctx, "/media/Shows/Lost/Extras/Making of.mkv"), discovery.ErrSkipped)

		assert.Empty(t, f.items(t, inventory.KindShow))
		assert.Empty(t, f.items(t, inventory.KindSeason))
		assert.Empty(t, f.items(t, inventory.KindEpisode))
	})
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("metadata by title only", func(t *testing.T) {
		f := newFixture(t)
		f.fileInfo.EXPECT().CreateFileInfo(gomock.Any(), gomock.Any(), gomock.Any(), inventory.KindBook).Return(nil, nil)
		f.addons.EXPECT().DiscoverAddons(gomock.Any()).Return(nil)

		var req discovery.MetadataRequest
		f.metadata.EXPECT().CreateNewMetadata(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r discovery.MetadataRequest) (*uuid.UUID, error) {
				req = r
				return nil, nil
			})

		require.NoError(t, f.discoverer.CreateBook(ctx, "/media/Books/Dune (1965).epub"))
		require.NoError(t, f.discoverer.CreateBook(ctx, "/media/Books/Dune (1965).epub"))

		items := f.items(t, inventory.KindBook)
		require.Len(t, items, 1)
		assert.Equal(t, "Dune", items[0].Title)
		assert.Nil(t, items[0].FolderPath)
		assert.Equal(t, discovery.MetadataRequest{Category: inventory.KindBook, ParentID: items[0].ID, Title: "Dune"}, req)
	})

	t.Run("formats in a book folder are versions", func(t *testing.T) {
		f := newFixture(t)
		f.allowCollaborators()

		require.NoError(t, f.discoverer.CreateBook(ctx, "/media/Books/Dune/Dune.epub"))
		require.NoError(t, f.discoverer.CreateBook(ctx, "/media/Books/Dune/Dune.pdf"))

		items := f.items(t, inventory.KindBook)
		require.Len(t, items, 1)
		assert.Equal(t, inventory.Ptr("/media/Books/Dune"), items[0].FolderPath)
		assert.Equal(t, []string{"/media/Books/Dune/Dune.epub", "/media/Books/Dune/Dune.pdf"}, versionPaths(items[0]))
	})
}
