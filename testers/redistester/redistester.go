// Package redistester registers the Redis backend tester. Importing it (for
// side effects) makes tck.tester=redis available.
package redistester

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
)

// Name is the tck.tester value selecting this backend.
const Name = "redis"

const defaultURL = "redis://localhost:6379/0"

func init() { //nolint:gochecknoinits
	harness.Register(Name, New)
}

type tester struct {
	tc   *harness.TestContext
	raw  string
	opts *redis.Options
}

// New builds the Redis tester from tck.connect.url (a redis:// URL).
func New(tc *harness.TestContext) (harness.Tester, error) {
	raw := tc.SettingDefault(config.KeyConnectURL, defaultURL)
	opts, err := redis.ParseURL(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid connect URL %q", raw)
	}
	return &tester{tc: tc, raw: raw, opts: opts}, nil
}

func (t *tester) TestContext() *harness.TestContext { return t.tc }

func (t *tester) CreateConnection(ctx context.Context) (harness.Connection, error) {
	opts := *t.opts
	return &redisConn{client: redis.NewClient(&opts)}, nil
}

func (t *tester) CreateConnectionWithUserPassword(ctx context.Context) (harness.Connection, error) {
	opts := *t.opts
	opts.Username, _ = t.tc.Setting(config.KeyUsername)
	opts.Password, _ = t.tc.Setting(config.KeyPassword)
	return &redisConn{client: redis.NewClient(&opts)}, nil
}

func (t *tester) DriverURLPrefix() string { return "redis://" }

func (t *tester) DriverName() string { return "redis" }

func (t *tester) URL() string { return t.raw }

func (t *tester) Flavor() harness.Flavor { return harness.FlavorRedis }

func (t *tester) Wrapper() harness.Wrapper { return harness.WrapperNone }

type redisConn struct {
	client *redis.Client
}

func (c *redisConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisConn) Close() error { return c.client.Close() }

func (c *redisConn) NativeConnection() any { return c.client }
