package service

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/slang-lang/slangflow/internal/constants"
)

// FixtureLoader resolves CLI path arguments (single files or directories)
// to a flat, sorted list of HLIR fixture files (*.json). A directory is
// walked recursively and filtered through constants.IgnoreFileName
// (.slangflowignore), the same shape as filtering a source tree through
// .gitignore, but against this module's own ignore dotfile rather than git's.
type FixtureLoader struct{}

// NewFixtureLoader returns a FixtureLoader.
func NewFixtureLoader() *FixtureLoader {
	return &FixtureLoader{}
}

// Resolve expands paths (files or directories) into a sorted, deduplicated
// list of fixture file paths. A path that is already a file is taken
// as-is, regardless of extension, so callers can point directly at a
// single fixture without naming it *.json.
func (l *FixtureLoader) Resolve(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
			continue
		}

		gi := loadFixtureIgnore(p)
		err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if gi != nil {
				rel, relErr := filepath.Rel(p, path)
				if relErr == nil && gi.MatchesPath(rel) {
					if info.IsDir() {
						return filepath.SkipDir
					}
					return nil
				}
			}
			if info.IsDir() {
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ".json") && !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

// loadFixtureIgnore loads constants.IgnoreFileName (.slangflowignore) from
// root, returning nil when it does not exist or cannot be parsed (the
// absence of an ignore file is not an error; everything is included).
func loadFixtureIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, constants.IgnoreFileName))
	if err != nil {
		return nil
	}
	return gi
}
