package adapter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "github.com/mouse-blink/hierwrap/internal/model"
)

const designFileSuffix = ".fir.json"

// DesignFSAdapter locates design files on disk.
type DesignFSAdapter interface {
	// Scan resolves the given paths to design files. A direct file path is
	// taken as-is; a directory is searched one level deep; the Go-style
	// "dir/..." form searches recursively. Duplicates are removed and the
	// result is sorted.
	Scan(roots ...m.Path) ([]m.Path, error)
}

type localDesignFSAdapter struct{}

// NewDesignFSAdapter constructs a DesignFSAdapter backed by the local file system.
func NewDesignFSAdapter() DesignFSAdapter {
	return &localDesignFSAdapter{}
}

func (a *localDesignFSAdapter) Scan(roots ...m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var files []m.Path

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}

		seen[path] = struct{}{}
		files = append(files, m.Path(path))
	}

	for _, root := range roots {
		path := string(root)

		recursive := false
		if strings.HasSuffix(path, "...") {
			recursive = true
			path = filepath.Dir(strings.TrimSuffix(path, "..."))
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", root, err)
		}

		if !info.IsDir() {
			add(path)
			continue
		}

		if err := a.scanDir(path, recursive, add); err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func (a *localDesignFSAdapter) scanDir(dir string, recursive bool, add func(string)) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}

			return nil
		}

		if strings.HasSuffix(d.Name(), designFileSuffix) {
			add(path)
		}

		return nil
	})
}
