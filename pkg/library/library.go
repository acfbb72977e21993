// Package library reads a media tree: it enumerates media files and parses
// file and folder names into titles, years, seasons and episodes.
package library

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/openmediastation/mediaserver/pkg/logger"
)

var (
	VideoExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".ts", ".m2ts"}
	AudioExtensions = []string{".mp3", ".aac", ".wav", ".flac", ".m4b"}
	BookExtensions  = []string{".epub", ".pdf", ".mobi", ".azw3", ".cbz", ".cbr"}
)

// FileSystem pairs an fs.FS with the absolute path it is rooted at
type FileSystem struct {
	Path string
	FS   fs.FS
}

type Library struct {
	media FileSystem
}

func New(media FileSystem) Library {
	return Library{media: media}
}

// Root is the absolute media root
func (l Library) Root() string {
	return l.media.Path
}

// MediaSet is the set of media file paths found by one enumeration, in walk order
type MediaSet struct {
	paths []string
	index map[string]struct{}
}

// NewMediaSet builds a set from absolute paths
func NewMediaSet(paths ...string) MediaSet {
	s := MediaSet{index: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.add(p)
	}
	return s
}

func (s *MediaSet) add(p string) {
	p = filepath.Clean(p)
	if _, ok := s.index[p]; ok {
		return
	}
	s.index[p] = struct{}{}
	s.paths = append(s.paths, p)
}

// Contains reports whether path was enumerated
func (s MediaSet) Contains(path string) bool {
	_, ok := s.index[filepath.Clean(path)]
	return ok
}

// Paths returns the enumerated paths
func (s MediaSet) Paths() []string {
	return slices.Clone(s.paths)
}

func (s MediaSet) Len() int {
	return len(s.paths)
}

// FindMedia walks the media root and returns every media file below it.
// Hidden files and directories are skipped; unreadable directories are logged and skipped.
func (l Library) FindMedia(ctx context.Context) (MediaSet, error) {
	log := logger.FromCtx(ctx)

	set := NewMediaSet()
	err := fs.WalkDir(l.media.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			if p == "." {
				return err
			}
			log.Warnw("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() || !IsMediaFile(p) {
			return nil
		}

		set.add(filepath.Join(l.media.Path, filepath.FromSlash(p)))
		return nil
	})

	if err != nil && !errors.Is(err, fs.SkipAll) {
		return MediaSet{}, err
	}

	log.Debugw("media enumerated", "root", l.media.Path, "count", set.Len())
	return set, nil
}

// IsMediaFile reports whether name carries a supported video, audio or book extension
func IsMediaFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return slices.Contains(VideoExtensions, ext) ||
		slices.Contains(AudioExtensions, ext) ||
		slices.Contains(BookExtensions, ext)
}
