package library

import (
	"testing"

	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("dedicated folder", func(t *testing.T) {
		c, err := Classify("/media/Movies/Ex Machina (2014)/Ex Machina (2014).mkv", "/media")
		require.NoError(t, err)

		assert.Equal(t, inventory.KindMovie, c.Category)
		assert.Equal(t, "Ex Machina (2014).mkv", c.File)
		assert.Equal(t, "Ex Machina (2014)", c.Stem())
		assert.True(t, c.HasFolder)
		assert.Equal(t, "Ex Machina (2014)", c.Folder)
		assert.Equal(t, "/media/Movies", c.CategoryDir())
		assert.Equal(t, "/media/Movies/Ex Machina (2014)", c.Dir())
		assert.Equal(t, "/media/Movies/Ex Machina (2014)/Ex Machina (2014).mkv", c.Path())

		top, ok := c.TopFolder()
		assert.True(t, ok)
		assert.Equal(t, "Ex Machina (2014)", top)
	})

	t.Run("loose file", func(t *testing.T) {
		c, err := Classify("/media/Movies/Heat.mkv", "/media/")
		require.NoError(t, err)

		assert.Equal(t, inventory.KindMovie, c.Category)
		assert.False(t, c.HasFolder)
		assert.Empty(t, c.Folder)
		assert.Equal(t, "/media/Movies", c.Dir())

		_, ok := c.TopFolder()
		assert.False(t, ok)
	})

	t.Run("category folder is case insensitive", func(t *testing.T) {
		c, err := Classify("/media/shows/Lost/Season 1/01.mkv", "/media")
		require.NoError(t, err)
		assert.Equal(t, inventory.KindShow, c.Category)
		assert.Equal(t, "Season 1", c.Folder)
	})

	t.Run("books", func(t *testing.T) {
		c, err := Classify("/media/Books/Dune.epub", "/media")
		require.NoError(t, err)
		assert.Equal(t, inventory.KindBook, c.Category)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := Classify("/media/Music/song.mp3", "/media")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("file directly under the root", func(t *testing.T) {
		_, err := Classify("/media/Heat.mkv", "/media")
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("outside the root", func(t *testing.T) {
		_, err := Classify("/srv/Movies/Heat.mkv", "/media")
		assert.ErrorIs(t, err, ErrOutsideRoot)
	})

	t.Run("the root itself", func(t *testing.T) {
		_, err := Classify("/media", "/media")
		assert.ErrorIs(t, err, ErrOutsideRoot)
	})
}

func TestCategoryFolder(t *testing.T) {
	tests := map[inventory.Kind]string{
		inventory.KindMovie:   "Movies",
		inventory.KindShow:    "Shows",
		inventory.KindSeason:  "Shows",
		inventory.KindEpisode: "Shows",
		inventory.KindBook:    "Books",
	}
	for kind, want := range tests {
		got, ok := CategoryFolder(kind)
		assert.True(t, ok, kind)
		assert.Equal(t, want, got, kind)
	}

	_, ok := CategoryFolder(inventory.Kind("Music"))
	assert.False(t, ok)
}
