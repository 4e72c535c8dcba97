package maps

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is the on-disk directory checked before the embedded copies.
const Dir = "maps"

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

//go:embed *.yaml
var MapsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanMapPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return MapsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// Names lists the embedded maps.
func Names() []string {
	names, err := fs.Glob(MapsFS, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(names)
	return names
}

func cleanMapPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	if !isSpecFile(s) {
		s += ".yaml"
	}
	return s
}

// cleanScriptPath accepts bare, scripts/ and maps/scripts/ names.
func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
