package workspace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"emoji-sync/core/config"
	"emoji-sync/core/index"

	"github.com/spf13/afero"
)

const (
	gitignoreFile = ".gitignore"
	tsconfigFile  = "tsconfig.json"
)

// Change is the result of one setup step.
type Change string

const (
	Created   Change = "created"
	Updated   Change = "updated"
	Unchanged Change = "unchanged"
	Skipped   Change = "skipped"
)

// Step reports what a setup step did to a file.
type Step struct {
	Path   string
	Change Change
}

// Workspace is a project root on a filesystem.
type Workspace struct {
	fs   afero.Fs
	root string
}

// New returns a workspace rooted at root.
func New(fs afero.Fs, root string) *Workspace {
	return &Workspace{fs: fs, root: root}
}

// EnsureDir creates the emoji directory when missing.
func (w *Workspace) EnsureDir(dir string) (Step, error) {
	p := w.path(dir)
	exists, err := afero.DirExists(w.fs, p)
	if err != nil {
		return Step{}, fmt.Errorf("stat %s: %w", p, err)
	}
	if exists {
		return Step{Path: p, Change: Unchanged}, nil
	}
	if err := w.fs.MkdirAll(p, 0o755); err != nil {
		return Step{}, fmt.Errorf("create %s: %w", p, err)
	}
	return Step{Path: p, Change: Created}, nil
}

// EnsureGitignore appends the list artifact of dir to an existing .gitignore.
// A project without .gitignore is left alone.
func (w *Workspace) EnsureGitignore(dir string) (Step, error) {
	p := w.path(gitignoreFile)
	data, err := afero.ReadFile(w.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return Step{Path: p, Change: Skipped}, nil
		}
		return Step{}, fmt.Errorf("read %s: %w", p, err)
	}

	entry := projectPath(dir, index.ListFile)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return Step{Path: p, Change: Unchanged}, nil
		}
	}

	f, err := w.fs.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Step{}, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n# emoji-sync\n%s\n", entry); err != nil {
		return Step{}, fmt.Errorf("append %s: %w", p, err)
	}
	return Step{Path: p, Change: Updated}, nil
}

// EnsureTsconfigInclude adds the declaration artifact of dir to the include
// list of an existing tsconfig.json.
func (w *Workspace) EnsureTsconfigInclude(dir string) (Step, error) {
	p := w.path(tsconfigFile)
	data, err := afero.ReadFile(w.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return Step{Path: p, Change: Skipped}, nil
		}
		return Step{}, fmt.Errorf("read %s: %w", p, err)
	}

	var tsconfig map[string]any
	if err := json.Unmarshal(data, &tsconfig); err != nil {
		return Step{}, fmt.Errorf("decode %s: %w", p, err)
	}

	entry := projectPath(dir, index.DeclarationFile)
	include, _ := tsconfig["include"].([]any)
	for _, item := range include {
		if s, ok := item.(string); ok && s == entry {
			return Step{Path: p, Change: Unchanged}, nil
		}
	}
	tsconfig["include"] = append(include, entry)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(tsconfig); err != nil {
		return Step{}, fmt.Errorf("encode %s: %w", p, err)
	}
	if err := afero.WriteFile(w.fs, p, buf.Bytes(), 0o644); err != nil {
		return Step{}, fmt.Errorf("write %s: %w", p, err)
	}
	return Step{Path: p, Change: Updated}, nil
}

// WriteConfig writes a starter emoji-sync.yaml. An existing file is only
// replaced when overwrite is set.
func (w *Workspace) WriteConfig(dir string, overwrite bool) (Step, error) {
	p := w.path(config.FileName)
	exists, err := afero.Exists(w.fs, p)
	if err != nil {
		return Step{}, fmt.Errorf("stat %s: %w", p, err)
	}
	if exists && !overwrite {
		return Step{Path: p, Change: Unchanged}, nil
	}

	if err := afero.WriteFile(w.fs, p, []byte(configTemplate(dir)), 0o644); err != nil {
		return Step{}, fmt.Errorf("write %s: %w", p, err)
	}
	if exists {
		return Step{Path: p, Change: Updated}, nil
	}
	return Step{Path: p, Change: Created}, nil
}

func (w *Workspace) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.root, name)
}

// projectPath returns the slash separated project-relative path of file in dir.
func projectPath(dir, file string) string {
	return path.Join(filepath.ToSlash(filepath.Clean(dir)), file)
}

func configTemplate(dir string) string {
	return fmt.Sprintf(`# emoji-sync configuration. Environment variables override these values.
sync:
  dir: %q
  generate_index: true
  # The bot token is read from SYNC_TOKEN (or TOKEN); keep it out of this file.
  ignore:
    - "*.json"
    - "*.ts"
log:
  level: info
  format: console
`, dir)
}
