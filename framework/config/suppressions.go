package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Suppressions is an exclude list of TCK test names that are expected to fail
// for particular backend flavors, keyed by flavor name. A pattern is either
// an exact test name or a prefix ending in "*".
//
// The file is YAML:
//
//	flavors:
//	  mysql:
//	    - "metadata/schemas"
//	    - "cellset/*"
type Suppressions struct {
	Flavors map[string][]string `yaml:"flavors"`
}

// LoadSuppressions reads and parses a suppressions file. Unlike the layered
// properties search, the path here was named explicitly by configuration, so
// a missing or malformed file is an error.
func LoadSuppressions(path string) (*Suppressions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suppressions file %q", path)
	}
	var s Suppressions
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "parsing suppressions file %q", path)
	}
	return &s, nil
}

// Suppressed reports whether testName is excluded for the given flavor.
// A nil receiver suppresses nothing.
func (s *Suppressions) Suppressed(flavor, testName string) bool {
	if s == nil {
		return false
	}
	for _, pattern := range s.Flavors[flavor] {
		if trimmed, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(testName, trimmed) {
				return true
			}
		} else if testName == pattern {
			return true
		}
	}
	return false
}
