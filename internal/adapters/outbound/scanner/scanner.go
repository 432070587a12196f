package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/karrick/godirwalk"

	"github.com/terravet/terravet/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".terraform":   true,
	".terravet":    true,
	"node_modules": true,
	"vendor":       true,
}

// TreeScanner implements domain.SourceScanner by walking the filesystem.
type TreeScanner struct{}

func New() *TreeScanner {
	return &TreeScanner{}
}

// Scan discovers every .tf file under rootPath in deterministic
// lexical order and loads its content, along with the root-level
// entries and README content the tree-wide checks read. Unreadable
// files are collected into one aggregated error.
func (s *TreeScanner) Scan(rootPath string, excludePaths ...string) (*domain.SourceSet, error) {
	absPath, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, err
	}

	// Merge extra excludes with built-in skip dirs.
	extraSkip := make(map[string]bool, len(excludePaths))
	for _, p := range excludePaths {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	var tfPaths []string
	err = godirwalk.Walk(absPath, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				// The root itself is never skipped, whatever its name.
				if path != absPath && (skipDirs[de.Name()] || extraSkip[de.Name()]) {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasSuffix(de.Name(), ".tf") {
				rel, relErr := filepath.Rel(absPath, path)
				if relErr != nil {
					return relErr
				}
				tfPaths = append(tfPaths, filepath.ToSlash(rel))
			}
			return nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootPath, err)
	}

	set := &domain.SourceSet{
		Root:        absPath,
		RootEntries: make(map[string]bool),
	}

	var merr *multierror.Error
	for _, rel := range tfPaths {
		data, readErr := os.ReadFile(filepath.Join(absPath, filepath.FromSlash(rel)))
		if readErr != nil {
			merr = multierror.Append(merr, fmt.Errorf("reading %s: %w", rel, readErr))
			continue
		}
		set.Files = append(set.Files, domain.NewSourceFile(rel, string(data)))
		set.TotalSize += int64(len(data))
	}

	entries, readErr := os.ReadDir(absPath)
	if readErr != nil {
		merr = multierror.Append(merr, fmt.Errorf("listing %s: %w", rootPath, readErr))
	}
	for _, e := range entries {
		set.RootEntries[e.Name()] = true
	}

	if set.HasRootEntry("README.md") {
		data, readErr := os.ReadFile(filepath.Join(absPath, "README.md"))
		if readErr != nil {
			merr = multierror.Append(merr, fmt.Errorf("reading README.md: %w", readErr))
		} else {
			set.Readme = string(data)
		}
	}

	return set, merr.ErrorOrNil()
}
