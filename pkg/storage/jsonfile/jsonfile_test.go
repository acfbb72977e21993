package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	mio "github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/io/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("missing document is nil", func(t *testing.T) {
		s := New(t.TempDir(), &mio.MediaFileSystem{})

		b, err := s.Read(ctx, "inventory/Movie")
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("reads existing file", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "bin"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "bin", "Book.json"), []byte(`[{"title":"Dune"}]`), 0o644))

		s := New(root, &mio.MediaFileSystem{})
		b, err := s.Read(ctx, "bin/Book")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"title":"Dune"}]`, string(b))
	})

	t.Run("rejects names escaping the root", func(t *testing.T) {
		s := New(t.TempDir(), &mio.MediaFileSystem{})

		_, err := s.Read(ctx, "../outside")
		assert.ErrorIs(t, err, ErrInvalidName)

		_, err = s.Read(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidName)
	})
}

func TestStore_Modify(t *testing.T) {
	ctx := context.Background()

	t.Run("creates directories and file", func(t *testing.T) {
		root := t.TempDir()
		s := New(root, &mio.MediaFileSystem{})

		err := s.Modify(ctx, "inventory/Movie", func(current []byte) ([]byte, error) {
			assert.Nil(t, current)
			return []byte(`[]`), nil
		})
		require.NoError(t, err)

		b, err := os.ReadFile(filepath.Join(root, "inventory", "Movie.json"))
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(b))
	})

	t.Run("fn error leaves document untouched", func(t *testing.T) {
		s := New(t.TempDir(), &mio.MediaFileSystem{})
		require.NoError(t, s.Modify(ctx, "inventory/Show", func([]byte) ([]byte, error) { return []byte(`["a"]`), nil }))

		wantErr := errors.New("boom")
		err := s.Modify(ctx, "inventory/Show", func([]byte) ([]byte, error) { return []byte(`["b"]`), wantErr })
		assert.ErrorIs(t, err, wantErr)

		b, err := s.Read(ctx, "inventory/Show")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(b))
	})

	t.Run("cancelled context does not write", func(t *testing.T) {
		s := New(t.TempDir(), &mio.MediaFileSystem{})
		cctx, cancel := context.WithCancel(ctx)

		err := s.Modify(cctx, "inventory/Book", func([]byte) ([]byte, error) {
			cancel()
			return []byte(`["late"]`), nil
		})
		assert.ErrorIs(t, err, context.Canceled)

		b, err := s.Read(ctx, "inventory/Book")
		require.NoError(t, err)
		assert.Nil(t, b)
	})

	t.Run("write failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fileIO := mocks.NewMockFileIO(ctrl)
		s := New("/config", fileIO)

		fileIO.EXPECT().ReadFile("/config/inventory/Movie.json").Return(nil, os.ErrNotExist)
		fileIO.EXPECT().MkdirAll("/config/inventory", os.FileMode(dirPerm)).Return(nil)
		fileIO.EXPECT().WriteFileAtomic("/config/inventory/Movie.json", []byte(`[]`), os.FileMode(filePerm)).Return(os.ErrPermission)

		err := s.Modify(ctx, "inventory/Movie", func([]byte) ([]byte, error) { return []byte(`[]`), nil })
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("concurrent modifications are serialized", func(t *testing.T) {
		s := New(t.TempDir(), &mio.MediaFileSystem{})

		var wg sync.WaitGroup
		for range 25 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.Modify(ctx, "counter", func(current []byte) ([]byte, error) {
					n := 0
					if len(current) > 0 {
						var err error
						n, err = strconv.Atoi(string(current))
						if err != nil {
							return nil, err
						}
					}
					return []byte(strconv.Itoa(n + 1)), nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		b, err := s.Read(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, "25", string(b))
	})
}
