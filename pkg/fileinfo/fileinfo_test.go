package fileinfo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/io/mocks"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"github.com/openmediastation/mediaserver/pkg/storage/jsonfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	fileIO := &io.MediaFileSystem{}
	return New(jsonfile.New(t.TempDir(), fileIO), fileIO), t.TempDir()
}

func TestCreateFileInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("records size and mime type", func(t *testing.T) {
		svc, dir := newService(t)
		p := filepath.Join(dir, "Dune.pdf")
		content := append([]byte("%PDF-1.4\n"), make([]byte, 2039)...)
		require.NoError(t, os.WriteFile(p, content, 0o644))

		versionID := uuid.New()
		id, err := svc.CreateFileInfo(ctx, p, versionID, inventory.KindBook)
		require.NoError(t, err)
		require.NotNil(t, id)

		info, err := svc.GetFileInfo(ctx, inventory.KindBook, *id)
		require.NoError(t, err)
		assert.Equal(t, versionID, info.ParentID)
		assert.Equal(t, inventory.KindBook, info.ParentCategory)
		assert.Equal(t, p, info.Path)
		assert.Equal(t, int64(2048), info.Size)
		assert.Equal(t, "2.0 KiB", info.HumanSize)
		assert.Equal(t, "application/pdf", info.MimeType)
	})

	t.Run("replaces the record of the same version", func(t *testing.T) {
		svc, dir := newService(t)
		p := filepath.Join(dir, "Heat.mkv")
		require.NoError(t, os.WriteFile(p, []byte("video"), 0o644))

		versionID := uuid.New()
		_, err := svc.CreateFileInfo(ctx, p, versionID, inventory.KindMovie)
		require.NoError(t, err)
		second, err := svc.CreateFileInfo(ctx, p, versionID, inventory.KindMovie)
		require.NoError(t, err)

		infos, err := svc.ListFileInfo(ctx, inventory.KindMovie)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, *second, infos[0].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		svc, dir := newService(t)
		id, err := svc.CreateFileInfo(ctx, filepath.Join(dir, "missing.mkv"), uuid.New(), inventory.KindMovie)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, id)
	})

	t.Run("directory", func(t *testing.T) {
		svc, dir := newService(t)
		id, err := svc.CreateFileInfo(ctx, dir, uuid.New(), inventory.KindMovie)
		assert.Error(t, err)
		assert.Nil(t, id)
	})

	t.Run("stat failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileIO := mocks.NewMockFileIO(ctrl)
		fileIO.EXPECT().Stat("/media/Movies/Heat.mkv").Return(nil, errors.New("expected testing error"))

		svc := New(jsonfile.New(t.TempDir(), &io.MediaFileSystem{}), fileIO)
		id, err := svc.CreateFileInfo(ctx, "/media/Movies/Heat.mkv", uuid.New(), inventory.KindMovie)
		assert.Error(t, err)
		assert.Nil(t, id)
	})
}

func TestDeleteFileInfoByParentID(t *testing.T) {
	ctx := context.Background()
	svc, dir := newService(t)

	keep, drop := uuid.New(), uuid.New()
	for i, versionID := range []uuid.UUID{keep, drop} {
		p := filepath.Join(dir, []string{"a.mkv", "b.mkv"}[i])
		require.NoError(t, os.WriteFile(p, []byte("video"), 0o644))
		_, err := svc.CreateFileInfo(ctx, p, versionID, inventory.KindEpisode)
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteFileInfoByParentID(ctx, inventory.KindEpisode, drop))

	infos, err := svc.ListFileInfo(ctx, inventory.KindEpisode)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, keep, infos[0].ParentID)

	// deleting an unknown version is a no-op
	require.NoError(t, svc.DeleteFileInfoByParentID(ctx, inventory.KindEpisode, uuid.New()))
}

func TestGetFileInfoNotFound(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.GetFileInfo(context.Background(), inventory.KindMovie, uuid.New())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
