package harness

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/olapgo/driver-test-harness/framework/config"
)

// The remote tester reaches a backend through an HTTP gateway instead of a
// local driver. It is the default when tck.tester is not set, which is why it
// must construct successfully from an empty configuration: the factory
// injects a placeholder catalog URL, and connections simply fail to ping
// until a real gateway is configured.

func init() { //nolint:gochecknoinits
	Register(DefaultTesterName, NewRemoteTester)
}

const defaultRemoteURL = "http://localhost:0/"

type remoteTester struct {
	tc         *TestContext
	base       *url.URL
	catalogURL string
	username   string
	password   string
	client     *http.Client
}

// NewRemoteTester builds the HTTP gateway tester. The gateway address comes
// from tck.remote.url, falling back to tck.connect.url; credentials for the
// user/password connection path come from tck.remote.username and
// tck.remote.password.
func NewRemoteTester(tc *TestContext) (Tester, error) {
	rawURL, ok := tc.Setting(config.KeyRemoteURL)
	if !ok {
		rawURL = tc.SettingDefault(config.KeyConnectURL, defaultRemoteURL)
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid remote URL %q", rawURL)
	}
	catalogURL, _ := tc.Setting(config.KeyCatalogURL)
	return &remoteTester{
		tc:         tc,
		base:       base,
		catalogURL: catalogURL,
		username:   tc.SettingDefault(config.KeyRemoteUsername, ""),
		password:   tc.SettingDefault(config.KeyRemotePassword, ""),
		client:     &http.Client{},
	}, nil
}

func (t *remoteTester) TestContext() *TestContext { return t.tc }

func (t *remoteTester) CreateConnection(ctx context.Context) (Connection, error) {
	return &remoteConn{client: t.client, base: t.base, catalogURL: t.catalogURL}, nil
}

func (t *remoteTester) CreateConnectionWithUserPassword(ctx context.Context) (Connection, error) {
	return &remoteConn{
		client:     t.client,
		base:       t.base,
		catalogURL: t.catalogURL,
		username:   t.username,
		password:   t.password,
	}, nil
}

func (t *remoteTester) DriverURLPrefix() string { return "http://" }

func (t *remoteTester) DriverName() string { return "remote" }

func (t *remoteTester) URL() string { return t.base.String() }

func (t *remoteTester) Flavor() Flavor { return FlavorRemote }

func (t *remoteTester) Wrapper() Wrapper { return WrapperNone }

// CatalogURL returns the catalog location the gateway serves, which may be
// the factory's placeholder when the tester was selected by default.
func (t *remoteTester) CatalogURL() string { return t.catalogURL }

type remoteConn struct {
	client     *http.Client
	base       *url.URL
	catalogURL string
	username   string
	password   string
}

func (c *remoteConn) Ping(ctx context.Context) error {
	pingURL := c.base.JoinPath("ping")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pingURL.String(), nil)
	if err != nil {
		return err
	}
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "pinging remote gateway %q", c.base)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("remote gateway %q answered ping with status %d", c.base, resp.StatusCode)
	}
	return nil
}

func (c *remoteConn) Close() error { return nil }

// NativeConnection exposes the HTTP client as the backend-native handle;
// capability probes issue their own requests through it.
func (c *remoteConn) NativeConnection() any { return c.client }
