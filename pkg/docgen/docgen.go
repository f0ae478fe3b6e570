// Package docgen generates the file-tree documentation for a module.
// Files may carry a "oneliner:" comment near their top; the generator
// extracts it and renders an indented tree with the one-line summary
// beside each file.
package docgen

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Alb-O/openmodules/pkg/errors"
	"github.com/Alb-O/openmodules/pkg/logging"
)

// onelinerMarker introduces a file's one-line summary inside a
// comment, e.g. "# oneliner: Main extraction script".
const onelinerMarker = "oneliner:"

// headLines is how far into a file the oneliner may appear
const headLines = 12

// commentLeaders are the comment syntaxes the extractor understands
var commentLeaders = []string{"#", "//", "--", ";"}

// Entry is one file or directory in a module tree
type Entry struct {
	// Path is relative to the module directory, slash-separated
	Path     string
	IsDir    bool
	Oneliner string
}

// Scan walks a module directory and collects entries with their
// oneliners. Hidden files, the manifest itself, and unreadable files
// are skipped.
func Scan(moduleDir string) ([]Entry, error) {
	logger := logging.GetLogger("docgen")

	if _, err := os.Stat(moduleDir); err != nil {
		return nil, errors.Wrap(err, errors.ErrModuleAccess, "cannot access module directory").
			WithDetail("path", moduleDir)
	}

	var entries []Entry
	err := filepath.WalkDir(moduleDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable entry")
			return nil
		}
		if path == moduleDir {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if name == "module.toml" {
			return nil
		}

		rel, err := filepath.Rel(moduleDir, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		entry := Entry{Path: rel, IsDir: d.IsDir()}
		if !d.IsDir() {
			entry.Oneliner = extractOneliner(path)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrModuleAccess, "failed to walk module directory").
			WithDetail("path", moduleDir)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries, nil
}

// extractOneliner reads the head of a file looking for a oneliner
// comment. Missing or binary-looking content yields an empty string.
func extractOneliner(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for i := 0; i < headLines && scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		for _, leader := range commentLeaders {
			if !strings.HasPrefix(line, leader) {
				continue
			}
			rest := strings.TrimSpace(strings.TrimPrefix(line, leader))
			if strings.HasPrefix(rest, onelinerMarker) {
				return strings.TrimSpace(strings.TrimPrefix(rest, onelinerMarker))
			}
		}
	}
	return ""
}

// RenderTree renders entries as an indented tree, one line per entry,
// with the oneliner beside each documented file.
func RenderTree(moduleName string, entries []Entry) string {
	var b strings.Builder
	b.WriteString(moduleName)
	b.WriteString("/\n")

	for _, entry := range entries {
		depth := strings.Count(entry.Path, "/")
		b.WriteString(strings.Repeat("  ", depth+1))
		b.WriteString(filepath.Base(entry.Path))
		if entry.IsDir {
			b.WriteString("/")
		} else if entry.Oneliner != "" {
			b.WriteString(" - ")
			b.WriteString(entry.Oneliner)
		}
		b.WriteString("\n")
	}
	return b.String()
}
