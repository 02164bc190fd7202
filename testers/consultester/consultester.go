// Package consultester registers the Consul backend tester. Importing it (for
// side effects) makes tck.tester=consul available.
package consultester

import (
	"context"

	consul "github.com/hashicorp/consul/api"
	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
)

// Name is the tck.tester value selecting this backend.
const Name = "consul"

const defaultURL = "http://localhost:8500"

func init() { //nolint:gochecknoinits
	harness.Register(Name, New)
}

type tester struct {
	tc  *harness.TestContext
	url string
}

// New builds the Consul tester. The connect URL is the agent HTTP address.
func New(tc *harness.TestContext) (harness.Tester, error) {
	return &tester{
		tc:  tc,
		url: tc.SettingDefault(config.KeyConnectURL, defaultURL),
	}, nil
}

func (t *tester) TestContext() *harness.TestContext { return t.tc }

func (t *tester) CreateConnection(ctx context.Context) (harness.Connection, error) {
	return t.connect(nil)
}

func (t *tester) CreateConnectionWithUserPassword(ctx context.Context) (harness.Connection, error) {
	user, _ := t.tc.Setting(config.KeyUsername)
	password, _ := t.tc.Setting(config.KeyPassword)
	return t.connect(&consul.HttpBasicAuth{Username: user, Password: password})
}

func (t *tester) connect(auth *consul.HttpBasicAuth) (harness.Connection, error) {
	cfg := consul.DefaultConfig()
	cfg.Address = t.url
	cfg.HttpAuth = auth
	client, err := consul.NewClient(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating Consul client")
	}
	return &consulConn{client: client}, nil
}

func (t *tester) DriverURLPrefix() string { return "http://" }

func (t *tester) DriverName() string { return "consul" }

func (t *tester) URL() string { return t.url }

func (t *tester) Flavor() harness.Flavor { return harness.FlavorConsul }

func (t *tester) Wrapper() harness.Wrapper { return harness.WrapperNone }

type consulConn struct {
	client *consul.Client
}

// Ping asks the agent who the cluster leader is; any answer proves the agent
// is reachable.
func (c *consulConn) Ping(ctx context.Context) error {
	_, err := c.client.Status().Leader()
	return err
}

// Close is a no-op; the Consul client holds no resources of its own.
func (c *consulConn) Close() error { return nil }

func (c *consulConn) NativeConnection() any { return c.client }
