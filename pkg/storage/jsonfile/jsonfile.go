// Package jsonfile stores documents as json files below a config directory.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"github.com/openmediastation/mediaserver/pkg/cache"
	mio "github.com/openmediastation/mediaserver/pkg/io"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/storage"
)

var _ storage.DocumentStore = (*Store)(nil)

var ErrInvalidName = errors.New("invalid document name")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store maps a document name such as inventory/Movie to <root>/inventory/Movie.json.
// Writes to one document are serialized by a per document mutex.
type Store struct {
	root   string
	fileIO mio.FileIO
	locks  *cache.Cache[string, *sync.Mutex]
}

// New creates a store rooted at root
func New(root string, fileIO mio.FileIO) *Store {
	return &Store{
		root:   root,
		fileIO: fileIO,
		locks:  cache.New[string, *sync.Mutex](),
	}
}

func (s *Store) path(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if name == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, clean+".json"), nil
}

func (s *Store) lock(name string) *sync.Mutex {
	return s.locks.GetOrCreate(name, func() *sync.Mutex { return &sync.Mutex{} })
}

// Read returns the document contents or nil when it has never been written
func (s *Store) Read(ctx context.Context, name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	b, err := s.fileIO.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromCtx(ctx).Debugw("document does not exist yet", "name", name)
		return nil, nil
	}

	return b, err
}

// Modify runs fn with the current document and replaces it with the result
func (s *Store) Modify(ctx context.Context, name string, fn func(current []byte) ([]byte, error)) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}

	mu := s.lock(name)
	mu.Lock()
	defer mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	current, err := s.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	// a cancelled caller must not leave a write behind
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.fileIO.MkdirAll(filepath.Dir(p), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", name, err)
	}

	if err := s.fileIO.WriteFileAtomic(p, next, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}

func (s *Store) Close() error {
	return nil
}
