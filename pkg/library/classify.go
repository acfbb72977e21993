package library

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openmediastation/mediaserver/pkg/inventory"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrOutsideRoot     = errors.New("path is outside the media root")
	ErrUnparseable     = errors.New("unparseable path")
)

// CategoryFolders maps the top level folder under the media root to its kind
var CategoryFolders = map[string]inventory.Kind{
	"Movies": inventory.KindMovie,
	"Shows":  inventory.KindShow,
	"Books":  inventory.KindBook,
}

// Classification is a path split relative to the media root
type Classification struct {
	Category inventory.Kind
	Root     string
	// Segments below the root, starting with the category folder
	Segments []string
	// File is the last segment including its extension
	File string
	// Folder is the segment enclosing File when the item has its own subfolder
	Folder    string
	HasFolder bool
}

// Classify splits path into category, file and folder components relative to mediaRoot
func Classify(path, mediaRoot string) (Classification, error) {
	root := filepath.Clean(mediaRoot)
	rel, err := filepath.Rel(root, filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return Classification{}, fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}

	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) < 2 {
		return Classification{}, fmt.Errorf("%w: %s is not inside a category folder", ErrUnknownCategory, path)
	}

	category, ok := categoryOf(segments[0])
	if !ok {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnknownCategory, segments[0])
	}

	c := Classification{
		Category: category,
		Root:     root,
		Segments: segments,
		File:     segments[len(segments)-1],
	}

	if len(segments) > 2 {
		c.Folder = segments[len(segments)-2]
		c.HasFolder = true
	}

	return c, nil
}

// CategoryFolder returns the folder below the media root that holds items of kind.
// Seasons and episodes live in the show folder.
func CategoryFolder(kind inventory.Kind) (string, bool) {
	if kind == inventory.KindSeason || kind == inventory.KindEpisode {
		kind = inventory.KindShow
	}
	for name, k := range CategoryFolders {
		if k == kind {
			return name, true
		}
	}
	return "", false
}

func categoryOf(folder string) (inventory.Kind, bool) {
	for name, kind := range CategoryFolders {
		if strings.EqualFold(name, folder) {
			return kind, true
		}
	}
	return "", false
}

// CategoryDir is the absolute category folder, e.g. /media/Movies
func (c Classification) CategoryDir() string {
	return filepath.Join(c.Root, c.Segments[0])
}

// Dir is the absolute directory holding the file
func (c Classification) Dir() string {
	return filepath.Join(append([]string{c.Root}, c.Segments[:len(c.Segments)-1]...)...)
}

// Path is the absolute path of the file
func (c Classification) Path() string {
	return filepath.Join(append([]string{c.Root}, c.Segments...)...)
}

// Stem is the file name without its extension
func (c Classification) Stem() string {
	return strings.TrimSuffix(c.File, filepath.Ext(c.File))
}

// TopFolder returns the segment directly below the category folder when the file is nested
func (c Classification) TopFolder() (string, bool) {
	if len(c.Segments) < 3 {
		return "", false
	}
	return c.Segments[1], true
}
