package harness

import (
	"context"

	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
)

// DefaultTesterName is used when tck.tester is not set.
const DefaultTesterName = "remote"

// placeholderCatalogURL lets the default remote tester construct even when no
// catalog has been configured; connections made through it will fail, but
// construction and capability inspection still work.
const placeholderCatalogURL = "dummy_catalog_url"

// createTester selects, constructs and optionally decorates the Tester for a
// context. Every failure here is a fatal configuration error: the name is not
// registered, the constructor rejected its configuration, or the wrapper
// value is unrecognized. None of these are retried.
func createTester(tc *TestContext) (Tester, error) {
	name, _ := tc.Setting(config.KeyTester)
	if name == "" {
		name = DefaultTesterName
		if _, ok := tc.Setting(config.KeyCatalogURL); !ok {
			tc.defaults[config.KeyCatalogURL] = placeholderCatalogURL
		}
	}

	ctor, ok := lookupTester(name)
	if !ok {
		return nil, errors.Errorf("tester %q is not registered (missing import of its package?)", name)
	}
	tester, err := ctor(tc)
	if err != nil {
		return nil, errors.Wrapf(err, "constructing tester %q", name)
	}

	wrapperValue, _ := tc.Setting(config.KeyWrapper)
	wrapper, err := ParseWrapper(wrapperValue)
	if err != nil {
		return nil, err
	}
	switch wrapper {
	case WrapperNone:
	case WrapperPooling:
		tester = NewPoolingTester(tester)
	}
	return tester, nil
}

// NewPoolingTester decorates a tester so that CreateConnection draws from a
// connection pool. The pool's provider is configured from the wrapped
// tester's driver name and connect URL; every other capability forwards to
// the wrapped tester unchanged, and Wrapper reports WrapperPooling so that
// Unwrap knows how to reach the native connection underneath a pooled handle.
func NewPoolingTester(inner Tester) Tester {
	pool := NewConnectionPool(PoolConfig{
		DriverName: inner.DriverName(),
		URL:        inner.URL(),
		Dial:       inner.CreateConnection,
	})
	return &poolingTester{
		DelegatingTester: DelegatingTester{Inner: inner},
		pool:             pool,
	}
}

type poolingTester struct {
	DelegatingTester
	pool *ConnectionPool
}

func (t *poolingTester) CreateConnection(ctx context.Context) (Connection, error) {
	return t.pool.Get(ctx)
}

func (t *poolingTester) Wrapper() Wrapper { return WrapperPooling }

// Close drains the pool. The wrapped tester is closed separately by
// TestContext.Close as it walks the chain.
func (t *poolingTester) Close() error {
	t.pool.Close()
	return nil
}
