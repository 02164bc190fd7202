package redistester

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
)

func newContext(t *testing.T, values map[string]string) *harness.TestContext {
	t.Helper()
	if values == nil {
		values = map[string]string{}
	}
	values[config.KeyTester] = Name
	tc, err := harness.NewWithSettings(config.NewSettings(values))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tc.Close() })
	return tc
}

func TestRegisteredCapabilities(t *testing.T) {
	tc := newContext(t, nil)

	tester := tc.Tester()
	assert.Equal(t, "redis", tester.DriverName())
	assert.Equal(t, "redis://", tester.DriverURLPrefix())
	assert.Equal(t, harness.FlavorRedis, tester.Flavor())
	assert.Equal(t, harness.WrapperNone, tester.Wrapper())
	assert.Equal(t, "redis://localhost:6379/0", tester.URL())
}

func TestRejectsMalformedURL(t *testing.T) {
	_, err := harness.NewWithSettings(config.NewSettings(map[string]string{
		config.KeyTester:     Name,
		config.KeyConnectURL: "mysql://localhost:6379",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid connect URL")
}

func TestNativeConnectionIsRedisClient(t *testing.T) {
	tc := newContext(t, map[string]string{
		config.KeyConnectURL: "redis://127.0.0.1:1/0",
	})

	conn, err := tc.Tester().CreateConnection(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	native, err := harness.Unwrap(harness.WrapperNone, conn)
	require.NoError(t, err)
	assert.IsType(t, (*redis.Client)(nil), native)
}

func TestPingReportsUnreachableServer(t *testing.T) {
	// Port 1 is never a Redis server; the dial must fail rather than hang.
	tc := newContext(t, map[string]string{
		config.KeyConnectURL: "redis://127.0.0.1:1/0",
	})

	conn, err := tc.Tester().CreateConnection(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.Error(t, conn.Ping(ctx))
}

func TestUserPasswordConnectionCarriesCredentials(t *testing.T) {
	tc := newContext(t, map[string]string{
		config.KeyConnectURL: "redis://127.0.0.1:1/0",
		config.KeyUsername:   "tck",
		config.KeyPassword:   "secret",
	})

	conn, err := tc.Tester().CreateConnectionWithUserPassword(context.Background())
	require.NoError(t, err)
	defer conn.Close()

	native, err := harness.Unwrap(harness.WrapperNone, conn)
	require.NoError(t, err)
	opts := native.(*redis.Client).Options()
	assert.Equal(t, "tck", opts.Username)
	assert.Equal(t, "secret", opts.Password)
}
