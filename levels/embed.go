package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory checked before the embedded levels, so a level
// being authored can be edited without rebuilding.
const Dir = "levels"

// Read returns the raw YAML for name, preferring a file on disk.
func Read(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(DiskPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// DiskPath is where the on-disk copy of name would live.
func DiskPath(name string) string {
	return filepath.Join(Dir, filepath.FromSlash(cleanLevelPath(name)))
}

// Names lists the embedded levels in file order.
func Names() ([]string, error) {
	matches, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	sort.Strings(matches)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(m, ".yaml"))
	}
	return names, nil
}

func cleanLevelPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		s = after
	}
	if !strings.HasSuffix(s, ".yaml") {
		s += ".yaml"
	}
	return s
}
