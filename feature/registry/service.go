package registry

import (
	"errors"
	"io/fs"
	"sync"

	"emoji-sync/core/index"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Service serves lookups from the list artifact of a directory.
type Service struct {
	fs     afero.Fs
	dir    string
	logger *zap.Logger

	mu       sync.RWMutex
	registry *index.Registry
}

// NewService creates a registry service over dir. The registry starts empty
// until Reload is called.
func NewService(fsys afero.Fs, dir string, logger *zap.Logger) *Service {
	return &Service{
		fs:       fsys,
		dir:      dir,
		logger:   logger,
		registry: index.NewRegistry(nil),
	}
}

// Reload re-reads the list artifact and swaps it in. A missing artifact
// yields an empty registry.
func (s *Service) Reload() (int, error) {
	reg, err := index.LoadRegistry(s.fs, s.dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return 0, err
		}
		s.logger.Warn("No index found; run sync to generate it", zap.String("dir", s.dir))
		reg = index.NewRegistry(nil)
	}

	s.mu.Lock()
	s.registry = reg
	s.mu.Unlock()

	s.logger.Info("Registry loaded", zap.Int("entries", reg.Len()))
	return reg.Len(), nil
}

// List returns all entries.
func (s *Service) List() []index.Entry {
	return s.current().List()
}

// Get returns the entry for name.
func (s *Service) Get(name string) (index.Entry, bool) {
	return s.current().Get(name)
}

func (s *Service) current() *index.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}
