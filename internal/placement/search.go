package placement

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediathek/internal/groupid"
	"mediathek/internal/pipeline"
)

// findGroupDirs walks the library root breadth-first and returns every
// directory containing a file that belongs to the group identified by id.
// Directories are explored level by level and matches collected as they are
// found, which bounds memory on large trees. The walk checks ctx between
// directories so a slow search stays cancellable.
func findGroupDirs(ctx context.Context, root, id string) ([]string, error) {
	queue := []string{root}
	var dirs []string
	matched := map[string]struct{}{}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, pipeline.Wrap(pipeline.ErrIO, "placing", "search library",
				"Group search cancelled", err)
		}
		dir := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, pipeline.Wrap(pipeline.ErrIO, "placing", "search library",
				fmt.Sprintf("Cannot enumerate %q", dir), err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if entry.IsDir() {
				queue = append(queue, filepath.Join(dir, name))
				continue
			}
			// Prefix check first; it is cheap and rules out almost everything.
			if !strings.HasPrefix(name, id) {
				continue
			}
			if !groupid.Matches(name, id) {
				continue
			}
			if _, ok := matched[dir]; !ok {
				matched[dir] = struct{}{}
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs, nil
}
