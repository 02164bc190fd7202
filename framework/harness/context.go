package harness

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
)

// TestContext owns exactly one Settings instance and exactly one Tester,
// created together and immutable thereafter. Each logical worker constructs
// its own context (there is no hidden process-wide instance) and tears it
// down with Close when its suite completes; contexts are not shared between
// workers, so no locking is needed to read one.
type TestContext struct {
	settings *config.Settings
	defaults map[string]string
	suppress *config.Suppressions
	tester   Tester
}

// New builds a TestContext using settings resolved from the current working
// directory. Misconfiguration (an unregistered tester name, a bad wrapper
// value, a failing tester constructor) is returned as a fatal error; there is
// nothing to retry.
func New() (*TestContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "determining working directory")
	}
	settings, err := config.Resolve(wd)
	if err != nil {
		return nil, err
	}
	return NewWithSettings(settings)
}

// NewWithSettings builds a TestContext from explicit settings. Most callers
// want New; this entry point exists for suites that construct settings
// programmatically.
func NewWithSettings(settings *config.Settings) (*TestContext, error) {
	tc := &TestContext{
		settings: settings,
		defaults: make(map[string]string),
	}
	if path, ok := settings.Get(config.KeySuppressions); ok {
		s, err := config.LoadSuppressions(path)
		if err != nil {
			return nil, err
		}
		tc.suppress = s
	}
	tester, err := createTester(tc)
	if err != nil {
		return nil, err
	}
	tc.tester = tester
	return tc, nil
}

// Settings returns the resolved configuration.
func (c *TestContext) Settings() *config.Settings { return c.settings }

// Setting returns the value for key, consulting the resolved settings first
// and then any defaults the factory injected (such as the placeholder catalog
// URL for the default tester). The Settings map itself is never mutated.
func (c *TestContext) Setting(key string) (string, bool) {
	if v, ok := c.settings.Get(key); ok {
		return v, true
	}
	v, ok := c.defaults[key]
	return v, ok
}

// SettingDefault is Setting with a fallback value.
func (c *TestContext) SettingDefault(key, fallback string) string {
	if v, ok := c.Setting(key); ok {
		return v
	}
	return fallback
}

// Tester returns this context's tester.
func (c *TestContext) Tester() Tester { return c.tester }

// Suppressed reports whether the named test is on the exclude list for this
// context's backend flavor.
func (c *TestContext) Suppressed(testName string) bool {
	return c.suppress.Suppressed(c.tester.Flavor().String(), testName)
}

// Close releases the backend resources held by the tester chain: every tester
// in the decorator chain that implements io.Closer is closed, outermost
// first, so a pooling decorator drains its pool before the backend client
// below it goes away.
func (c *TestContext) Close() error {
	var result *multierror.Error
	for t := c.tester; t != nil; {
		if closer, ok := t.(io.Closer); ok {
			result = multierror.Append(result, closer.Close())
		}
		d, ok := t.(interface{ unwrapTester() Tester })
		if !ok {
			break
		}
		t = d.unwrapTester()
	}
	return result.ErrorOrNil()
}
