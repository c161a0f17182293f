package index

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"emoji-sync/core/discord"

	"github.com/spf13/afero"
)

// Staged and backup names keep the generated extensions so a leftover from a
// crash is still skipped by the inventory's default ignore patterns.
const (
	stagePrefix  = ".tmp-"
	backupPrefix = ".bak-"
)

// Artifacts describes one generated index pair.
type Artifacts struct {
	Entries         []Entry
	ListPath        string
	DeclarationPath string
	List            []byte
	Declaration     []byte
}

// Writer regenerates the index pair in a directory.
type Writer struct {
	fs afero.Fs
}

// NewWriter creates a writer over fs.
func NewWriter(fs afero.Fs) *Writer {
	return &Writer{fs: fs}
}

// Render builds the artifact contents for dir without touching the filesystem.
func Render(dir string, emojis []discord.Emoji) (*Artifacts, error) {
	entries := BuildEntries(emojis)

	var list bytes.Buffer
	enc := json.NewEncoder(&list)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return nil, fmt.Errorf("encode %s: %w", ListFile, err)
	}

	return &Artifacts{
		Entries:         entries,
		ListPath:        filepath.Join(dir, ListFile),
		DeclarationPath: filepath.Join(dir, DeclarationFile),
		List:            list.Bytes(),
		Declaration:     RenderDeclaration(entries),
	}, nil
}

// Write replaces the index pair in dir with one generated from emojis.
// On failure the previous pair, if any, is left in place.
func (w *Writer) Write(dir string, emojis []discord.Emoji) (*Artifacts, error) {
	artifacts, err := Render(dir, emojis)
	if err != nil {
		return nil, err
	}

	if err := w.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, &WriteError{Path: dir, Err: err}
	}

	listStage := stagePath(artifacts.ListPath)
	declStage := stagePath(artifacts.DeclarationPath)
	cleanup := func() {
		_ = w.fs.Remove(listStage)
		_ = w.fs.Remove(declStage)
	}

	if err := afero.WriteFile(w.fs, listStage, artifacts.List, 0o644); err != nil {
		cleanup()
		return nil, &WriteError{Path: listStage, Err: err}
	}
	if err := afero.WriteFile(w.fs, declStage, artifacts.Declaration, 0o644); err != nil {
		cleanup()
		return nil, &WriteError{Path: declStage, Err: err}
	}

	backups, err := w.backup(artifacts.DeclarationPath, artifacts.ListPath)
	if err != nil {
		cleanup()
		return nil, err
	}

	if err := w.fs.Rename(declStage, artifacts.DeclarationPath); err != nil {
		cleanup()
		w.restore(backups)
		return nil, &WriteError{Path: artifacts.DeclarationPath, Err: err}
	}
	if err := w.fs.Rename(listStage, artifacts.ListPath); err != nil {
		cleanup()
		_ = w.fs.Remove(artifacts.DeclarationPath)
		w.restore(backups)
		return nil, &WriteError{Path: artifacts.ListPath, Err: err}
	}

	for _, b := range backups {
		_ = w.fs.Remove(backupPath(b))
	}
	return artifacts, nil
}

// backup moves the existing artifacts aside and returns the paths moved.
func (w *Writer) backup(paths ...string) ([]string, error) {
	var moved []string
	for _, p := range paths {
		exists, err := afero.Exists(w.fs, p)
		if err != nil {
			w.restore(moved)
			return nil, &WriteError{Path: p, Err: err}
		}
		if !exists {
			continue
		}
		_ = w.fs.Remove(backupPath(p))
		if err := w.fs.Rename(p, backupPath(p)); err != nil {
			w.restore(moved)
			return nil, &WriteError{Path: p, Err: err}
		}
		moved = append(moved, p)
	}
	return moved, nil
}

func (w *Writer) restore(paths []string) {
	for _, p := range paths {
		_ = w.fs.Rename(backupPath(p), p)
	}
}

func stagePath(path string) string {
	return filepath.Join(filepath.Dir(path), stagePrefix+filepath.Base(path))
}

func backupPath(path string) string {
	return filepath.Join(filepath.Dir(path), backupPrefix+filepath.Base(path))
}
