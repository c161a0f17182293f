package inventory

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// DefaultIgnore matches the artifacts written by the index generator.
var DefaultIgnore = []string{"*.json", "*.ts"}

// Asset is one local image file.
type Asset struct {
	Name      string
	Path      string
	Extension string
}

// Scanner lists assets in a directory.
type Scanner struct {
	fs     afero.Fs
	ignore []string
}

// NewScanner creates a scanner over fs. A nil ignore list uses DefaultIgnore.
func NewScanner(fs afero.Fs, ignore []string) *Scanner {
	if ignore == nil {
		ignore = DefaultIgnore
	}
	return &Scanner{fs: fs, ignore: normalizePatterns(ignore)}
}

// Scan returns the assets in dir sorted by name.
func (s *Scanner) Scan(dir string) ([]Asset, error) {
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Asset{}, nil
		}
		return nil, &LocalIOError{Path: dir, Err: err}
	}

	byName := make(map[string]Asset, len(infos))
	for _, info := range infos {
		if !info.Mode().IsRegular() {
			continue
		}
		fileName := info.Name()
		if s.ignored(fileName) {
			continue
		}

		ext := filepath.Ext(fileName)
		name := strings.TrimSuffix(fileName, ext)
		if name == "" {
			continue
		}

		asset := Asset{Name: name, Path: filepath.Join(dir, fileName), Extension: ext}
		if prev, ok := byName[name]; ok && prev.Extension <= ext {
			continue
		}
		byName[name] = asset
	}

	assets := make([]Asset, 0, len(byName))
	for _, asset := range byName {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].Name < assets[j].Name
	})
	return assets, nil
}

// ScanNames returns the distinct asset names in dir in ascending order.
func (s *Scanner) ScanNames(dir string) ([]string, error) {
	assets, err := s.Scan(dir)
	if err != nil {
		return nil, err
	}
	return Names(assets), nil
}

// ReadFile returns the contents of an asset.
func (s *Scanner) ReadFile(asset Asset) ([]byte, error) {
	data, err := afero.ReadFile(s.fs, asset.Path)
	if err != nil {
		return nil, &LocalIOError{Path: asset.Path, Err: err}
	}
	return data, nil
}

// ignored matches case-insensitively; patterns are lowered on construction.
func (s *Scanner) ignored(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, pattern := range s.ignore {
		if ok, err := doublestar.Match(pattern, lower); err == nil && ok {
			return true
		}
	}
	return false
}

// Names returns the names of assets in the order given.
func Names(assets []Asset) []string {
	names := make([]string, 0, len(assets))
	for _, a := range assets {
		names = append(names, a.Name)
	}
	return names
}

func normalizePatterns(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
