// Package addon finds sidecar files such as subtitles next to media files.
package addon

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/logger"
)

var (
	SubtitleExtensions = []string{".ass", ".mks", ".sami", ".smi", ".srt", ".ssa", ".sub", ".sup", ".vtt"}
	InfoExtensions     = []string{".nfo"}
)

// Discoverer lists addon files with the file system it was given
type Discoverer struct {
	fileIO io.FileIO
}

func New(fileIO io.FileIO) *Discoverer {
	return &Discoverer{fileIO: fileIO}
}

// IsAddonFile reports whether name has a subtitle or info extension
func IsAddonFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return slices.Contains(SubtitleExtensions, ext) || slices.Contains(InfoExtensions, ext)
}

// ListAddonFiles returns every addon file below dir. A missing or unreadable dir has no addons.
func (d *Discoverer) ListAddonFiles(dir string) []string {
	log := logger.Get()

	files := []string{}
	err := d.fileIO.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.Debugw("skipping unreadable addon path", "path", path, "error", err)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() || !IsAddonFile(path) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnw("failed to list addon files", "dir", dir, "error", err)
	}

	return files
}

// DiscoverAddons returns the addons sharing the base name of the media file at path
func (d *Discoverer) DiscoverAddons(path string) []inventory.Addon {
	return Match(path, d.ListAddonFiles(filepath.Dir(path)))
}

// Match builds addons for the files in candidates named after the media file at path,
// e.g. Heat.en.srt for Heat.mkv
func Match(path string, candidates []string) []inventory.Addon {
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	addons := []inventory.Addon{}
	for _, candidate := range candidates {
		base := filepath.Base(candidate)
		if !strings.HasPrefix(base, stem+".") || !IsAddonFile(base) {
			continue
		}

		ext := filepath.Ext(base)
		addon := inventory.Addon{
			ID:       uuid.New(),
			Path:     candidate,
			Category: Category(ext),
		}
		if addon.Category == inventory.AddonSubtitle {
			addon.Language = language(strings.TrimSuffix(strings.TrimPrefix(base, stem), ext))
		}

		addons = append(addons, addon)
	}

	return addons
}

// Category maps an addon extension to its category
func Category(ext string) string {
	ext = strings.ToLower(ext)
	switch {
	case slices.Contains(SubtitleExtensions, ext):
		return inventory.AddonSubtitle
	case slices.Contains(InfoExtensions, ext):
		return inventory.AddonInfo
	}
	return inventory.AddonUnknown
}

// language is the last dotted part between the media stem and the extension
func language(infix string) string {
	parts := strings.Split(infix, ".")
	for i := len(parts) - 1; i >= 0; i-- {
		if p := strings.TrimSpace(parts[i]); p != "" {
			return p
		}
	}
	return ""
}
