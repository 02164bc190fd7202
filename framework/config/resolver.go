package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// FileName is the name of the properties file the resolver looks for at
	// each directory level.
	FileName = "test.properties"

	// SubdirName is the fixed-name subdirectory also searched at each level.
	// A file at <dir>/tck/test.properties overrides <dir>/test.properties.
	SubdirName = "tck"
)

var resolveCache = struct {
	sync.Mutex
	byDir map[string]*Settings
}{byDir: map[string]*Settings{}} //nolint:gochecknoglobals

// Resolve builds the Settings for a test run.
//
// The map is seeded from the process environment (variable names are
// normalized to the properties key space: lowercased, with underscores
// becoming dots, so TCK_WRAPPER supplies tck.wrapper). Then, walking from
// startDir through every ancestor directory to the filesystem root, the
// resolver merges test.properties found directly in the directory and then
// in the directory's tck/ subdirectory. Each merge overrides earlier layers,
// which gives the documented precedence:
//
//   - any file overrides the environment;
//   - a file nearer the filesystem root overrides one nearer startDir;
//   - at the same level, the file in the tck/ subdirectory overrides the
//     file directly in the directory.
//
// Candidate files that are missing or unreadable are silently skipped; most
// candidate locations are expected not to exist. This lets test binaries be
// invoked from any subdirectory of a source tree and still pick up the same
// parameters.
//
// The result is memoized per absolute start directory, so repeated calls
// from any goroutine return the identical instance.
func Resolve(startDir string) (*Settings, error) {
	start, err := filepath.Abs(startDir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving settings start directory %q", startDir)
	}

	resolveCache.Lock()
	defer resolveCache.Unlock()
	if s, ok := resolveCache.byDir[start]; ok {
		return s, nil
	}

	values := environmentValues()
	dir := start
	for {
		mergeFile(values, filepath.Join(dir, FileName))
		mergeFile(values, filepath.Join(dir, SubdirName, FileName))
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	s := NewSettings(values)
	resolveCache.byDir[start] = s
	return s, nil
}

func environmentValues() map[string]string {
	values := make(map[string]string)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[normalizeEnvKey(name)] = value
	}
	return values
}

func normalizeEnvKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "."))
}

// mergeFile overlays the key=value entries of path onto values. Absence or
// unreadability of the file is not an error.
func mergeFile(values map[string]string, path string) {
	loaded, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for k, v := range loaded {
		values[k] = v
	}
}
