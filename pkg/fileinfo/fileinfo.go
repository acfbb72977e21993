// Package fileinfo probes media files and keeps one record per version.
package fileinfo

import (
	"context"
	"fmt"
	"path"
	"slices"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
)

// FileInfo describes the file behind one version. ParentID is the version id.
type FileInfo struct {
	ID             uuid.UUID      `json:"id"`
	ParentID       uuid.UUID      `json:"parentId"`
	ParentCategory inventory.Kind `json:"parentCategory"`
	Path           string         `json:"path"`
	Size           int64          `json:"size"`
	HumanSize      string         `json:"humanSize"`
	MimeType       string         `json:"mimeType"`
	ModTime        time.Time      `json:"modTime"`
}

type Service struct {
	docs   storage.DocumentStore
	fileIO io.FileIO
}

func New(docs storage.DocumentStore, fileIO io.FileIO) *Service {
	return &Service{docs: docs, fileIO: fileIO}
}

func (s *Service) collection(kind inventory.Kind) storage.Collection[FileInfo] {
	return storage.NewCollection[FileInfo](s.docs, path.Join("fileInfo", string(kind)))
}

// CreateFileInfo probes the file at p and stores a record for the version. An existing
// record for the same version is replaced.
func (s *Service) CreateFileInfo(ctx context.Context, p string, versionID uuid.UUID, kind inventory.Kind) (*uuid.UUID, error) {
	log := logger.FromCtx(ctx)

	info, err := s.probe(p)
	if err != nil {
		log.Warnw("file info could not be generated", "path", p, "error", err)
		return nil, err
	}

	info.ID = uuid.New()
	info.ParentID = versionID
	info.ParentCategory = kind

	err = s.collection(kind).Update(ctx, func(infos []FileInfo) ([]FileInfo, error) {
		infos = slices.DeleteFunc(infos, func(i FileInfo) bool { return i.ParentID == versionID })
		return append(infos, info), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store file info: %w", err)
	}

	log.Debugw("file info created", "path", p, "size", info.HumanSize, "mimeType", info.MimeType)
	return &info.ID, nil
}

func (s *Service) probe(p string) (FileInfo, error) {
	stat, err := s.fileIO.Stat(p)
	if err != nil {
		return FileInfo{}, err
	}
	if stat.IsDir() {
		return FileInfo{}, fmt.Errorf("%s is a directory", p)
	}

	f, err := s.fileIO.Open(p)
	if err != nil {
		return FileInfo{}, err
	}
	defer f.Close()

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to detect mime type: %w", err)
	}

	return FileInfo{
		Path:      p,
		Size:      stat.Size(),
		HumanSize: humanize.IBytes(uint64(stat.Size())),
		MimeType:  mime.String(),
		ModTime:   stat.ModTime().UTC(),
	}, nil
}

func (s *Service) ListFileInfo(ctx context.Context, kind inventory.Kind) ([]FileInfo, error) {
	return s.collection(kind).List(ctx)
}

// GetFileInfo returns the record with id
func (s *Service) GetFileInfo(ctx context.Context, kind inventory.Kind, id uuid.UUID) (FileInfo, error) {
	infos, err := s.ListFileInfo(ctx, kind)
	if err != nil {
		return FileInfo{}, err
	}

	idx := slices.IndexFunc(infos, func(i FileInfo) bool { return i.ID == id })
	if idx < 0 {
		return FileInfo{}, storage.ErrNotFound
	}

	return infos[idx], nil
}

// DeleteFileInfoByParentID drops every record of the version
func (s *Service) DeleteFileInfoByParentID(ctx context.Context, kind inventory.Kind, versionID uuid.UUID) error {
	return s.collection(kind).Update(ctx, func(infos []FileInfo) ([]FileInfo, error) {
		return slices.DeleteFunc(infos, func(i FileInfo) bool { return i.ParentID == versionID }), nil
	})
}
