// Package sqltester implements the Tester contract over database/sql. The
// mysqltester and mssqltester packages instantiate it for their drivers; any
// other database/sql driver can be plugged in the same way.
package sqltester

import (
	"context"
	"database/sql"
	"net/url"
	"sync"

	"github.com/pkg/errors"
	"github.com/xo/dburl"
	"golang.org/x/exp/slices"

	"github.com/olapgo/driver-test-harness/framework/config"
	"github.com/olapgo/driver-test-harness/framework/harness"
)

// Options fixes the driver-specific parts of a SQL backend tester.
type Options struct {
	// DriverNames are the database/sql registration names this backend
	// answers to (go-mssqldb registers both "sqlserver" and "mssql"). The
	// connect URL must resolve to one of them; the resolved name is what the
	// tester reports and opens.
	DriverNames []string

	// URLPrefix is the scheme prefix of connect URLs this driver accepts.
	URLPrefix string

	// DefaultURL is used when tck.connect.url is not set, so the tester can
	// construct (though not connect) with no configuration.
	DefaultURL string

	// Flavor is the backend family to report.
	Flavor harness.Flavor
}

// NewConstructor returns the registry constructor for a SQL backend with the
// given options.
func NewConstructor(opts Options) harness.Constructor {
	return func(tc *harness.TestContext) (harness.Tester, error) {
		raw := tc.SettingDefault(config.KeyConnectURL, opts.DefaultURL)
		u, err := dburl.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid connect URL %q", raw)
		}
		if !slices.Contains(opts.DriverNames, u.Driver) {
			return nil, errors.Errorf("connect URL %q resolves to driver %q, want one of %v",
				raw, u.Driver, opts.DriverNames)
		}
		return &tester{tc: tc, opts: opts, url: u}, nil
	}
}

type tester struct {
	tc   *harness.TestContext
	opts Options
	url  *dburl.URL

	mu sync.Mutex
	db *sql.DB // lazily opened, shared by plain connections
}

func (t *tester) TestContext() *harness.TestContext { return t.tc }

func (t *tester) database() (*sql.DB, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.db == nil {
		db, err := sql.Open(t.url.Driver, t.url.DSN)
		if err != nil {
			return nil, errors.Wrapf(err, "opening %s database", t.url.Driver)
		}
		t.db = db
	}
	return t.db, nil
}

func (t *tester) CreateConnection(ctx context.Context) (harness.Connection, error) {
	db, err := t.database()
	if err != nil {
		return nil, err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to %q", t.url.String())
	}
	return &sqlConn{conn: conn}, nil
}

// CreateConnectionWithUserPassword rebuilds the connect URL with the
// credentials from tck.username and tck.password, the same way the plain
// path would have used credentials embedded in the URL.
func (t *tester) CreateConnectionWithUserPassword(ctx context.Context) (harness.Connection, error) {
	username, _ := t.tc.Setting(config.KeyUsername)
	password, _ := t.tc.Setting(config.KeyPassword)

	withUser := t.url.URL
	withUser.User = url.UserPassword(username, password)
	u, err := dburl.Parse(withUser.String())
	if err != nil {
		return nil, errors.Wrapf(err, "rebuilding connect URL with credentials")
	}

	db, err := sql.Open(u.Driver, u.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s database", t.url.Driver)
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "connecting to %q as %q", t.url.String(), username)
	}
	return &sqlConn{conn: conn, owned: db}, nil
}

func (t *tester) DriverURLPrefix() string { return t.opts.URLPrefix }

func (t *tester) DriverName() string { return t.url.Driver }

func (t *tester) URL() string { return t.url.String() }

func (t *tester) Flavor() harness.Flavor { return t.opts.Flavor }

func (t *tester) Wrapper() harness.Wrapper { return harness.WrapperNone }

// Close releases the shared database handle, if one was opened.
func (t *tester) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.db == nil {
		return nil
	}
	err := t.db.Close()
	t.db = nil
	return err
}

type sqlConn struct {
	conn *sql.Conn

	// owned is set on the user/password path, where each connection has its
	// own database handle to tear down.
	owned *sql.DB
}

func (c *sqlConn) Ping(ctx context.Context) error { return c.conn.PingContext(ctx) }

func (c *sqlConn) Close() error {
	err := c.conn.Close()
	if c.owned != nil {
		if dbErr := c.owned.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

// NativeConnection exposes the *sql.Conn; capability probes can reach the
// driver-level connection through its Raw method.
func (c *sqlConn) NativeConnection() any { return c.conn }
