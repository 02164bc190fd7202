package harness

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olapgo/driver-test-harness/framework/config"
)

// fakeBackend is a Tester used throughout the package tests: it counts dials
// and hands out connections whose native object is recognizable.
type fakeBackend struct {
	tc     *TestContext
	dials  atomic.Int32
	closed atomic.Bool
}

type fakeNative struct{ id int32 }

type fakeConn struct {
	native *fakeNative
	closed atomic.Bool
}

func (c *fakeConn) Ping(ctx context.Context) error { return nil }
func (c *fakeConn) Close() error                   { c.closed.Store(true); return nil }
func (c *fakeConn) NativeConnection() any          { return c.native }

func (f *fakeBackend) TestContext() *TestContext { return f.tc }

func (f *fakeBackend) CreateConnection(ctx context.Context) (Connection, error) {
	id := f.dials.Add(1)
	return &fakeConn{native: &fakeNative{id: id}}, nil
}

func (f *fakeBackend) CreateConnectionWithUserPassword(ctx context.Context) (Connection, error) {
	return f.CreateConnection(ctx)
}

func (f *fakeBackend) DriverURLPrefix() string { return "fake://" }
func (f *fakeBackend) DriverName() string      { return "fake" }
func (f *fakeBackend) URL() string             { return "fake://backend" }
func (f *fakeBackend) Flavor() Flavor          { return FlavorMySQL }
func (f *fakeBackend) Wrapper() Wrapper        { return WrapperNone }
func (f *fakeBackend) Close() error            { f.closed.Store(true); return nil }

func init() {
	Register("fake", func(tc *TestContext) (Tester, error) {
		return &fakeBackend{tc: tc}, nil
	})
}

func newContext(t *testing.T, values map[string]string) *TestContext {
	t.Helper()
	tc, err := NewWithSettings(config.NewSettings(values))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tc.Close() })
	return tc
}

func TestFactoryDefaultsToRemoteTester(t *testing.T) {
	tc := newContext(t, nil)

	tester := tc.Tester()
	assert.Equal(t, FlavorRemote, tester.Flavor())
	assert.Equal(t, WrapperNone, tester.Wrapper())

	// The placeholder catalog URL lets the default tester construct with no
	// configuration at all, without mutating the Settings map.
	withCatalog, ok := tester.(interface{ CatalogURL() string })
	require.True(t, ok)
	assert.Equal(t, "dummy_catalog_url", withCatalog.CatalogURL())
	_, inSettings := tc.Settings().Get(config.KeyCatalogURL)
	assert.False(t, inSettings)
}

func TestFactoryDefaultKeepsConfiguredCatalogURL(t *testing.T) {
	tc := newContext(t, map[string]string{config.KeyCatalogURL: "http://catalogs/foodmart"})

	withCatalog, ok := tc.Tester().(interface{ CatalogURL() string })
	require.True(t, ok)
	assert.Equal(t, "http://catalogs/foodmart", withCatalog.CatalogURL())
}

func TestFactoryUsesConfiguredTester(t *testing.T) {
	tc := newContext(t, map[string]string{config.KeyTester: "fake"})

	tester := tc.Tester()
	assert.Equal(t, FlavorMySQL, tester.Flavor())
	assert.Equal(t, "fake://backend", tester.URL())
	assert.Same(t, tc, tester.TestContext())
}

func TestFactoryUnregisteredTesterIsFatal(t *testing.T) {
	_, err := NewWithSettings(config.NewSettings(map[string]string{
		config.KeyTester: "no-such-backend",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"no-such-backend"`)
}

func TestFactoryUnknownWrapperIsFatal(t *testing.T) {
	_, err := NewWithSettings(config.NewSettings(map[string]string{
		config.KeyTester:  "fake",
		config.KeyWrapper: "bogus",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown wrapper value 'bogus'")
}

func TestFactoryAppliesPoolingWrapper(t *testing.T) {
	tc := newContext(t, map[string]string{
		config.KeyTester:  "fake",
		config.KeyWrapper: "pooling",
	})

	tester := tc.Tester()
	assert.Equal(t, WrapperPooling, tester.Wrapper())

	// Capability methods still forward to the wrapped tester.
	assert.Equal(t, "fake", tester.DriverName())
	assert.Equal(t, "fake://backend", tester.URL())
	assert.Equal(t, FlavorMySQL, tester.Flavor())

	conn, err := tester.CreateConnection(context.Background())
	require.NoError(t, err)

	native, err := Unwrap(WrapperPooling, conn)
	require.NoError(t, err)
	first, ok := native.(*fakeNative)
	require.True(t, ok)

	// Returning the handle and drawing again reuses the pooled connection.
	require.NoError(t, conn.Close())
	conn2, err := tester.CreateConnection(context.Background())
	require.NoError(t, err)
	native2, err := Unwrap(WrapperPooling, conn2)
	require.NoError(t, err)
	assert.Same(t, first, native2)
	require.NoError(t, conn2.Close())
}

func TestContextCloseClosesChain(t *testing.T) {
	tc, err := NewWithSettings(config.NewSettings(map[string]string{
		config.KeyTester:  "fake",
		config.KeyWrapper: "pooling",
	}))
	require.NoError(t, err)

	conn, err := tc.Tester().CreateConnection(context.Background())
	require.NoError(t, err)
	require.NoError(t, conn.Close()) // now idle in the pool

	require.NoError(t, tc.Close())

	pt, ok := tc.Tester().(*poolingTester)
	require.True(t, ok)
	_, err = pt.pool.Get(context.Background())
	assert.ErrorIs(t, err, ErrPoolClosed)

	backend, ok := pt.Inner.(*fakeBackend)
	require.True(t, ok)
	assert.True(t, backend.closed.Load(), "Close walks past the decorator to the backend tester")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-tester", func(tc *TestContext) (Tester, error) { return &fakeBackend{tc: tc}, nil })
	assert.Panics(t, func() {
		Register("dup-tester", func(tc *TestContext) (Tester, error) { return &fakeBackend{tc: tc}, nil })
	})
}

func TestRegisterNilConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { Register("nil-tester", nil) })
}
