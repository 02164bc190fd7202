package harness

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrPoolClosed is returned when acquiring from a pool that has been closed.
var ErrPoolClosed = errors.New("connection pool is closed")

const defaultMaxIdle = 8

// PoolConfig configures a ConnectionPool. DriverName and URL record where the
// pool's connections come from; Dial actually opens them.
type PoolConfig struct {
	DriverName string
	URL        string

	// Dial opens a new backend connection when the pool has no idle one.
	Dial func(ctx context.Context) (Connection, error)

	// MaxIdle caps how many returned connections are kept for reuse.
	// Connections returned beyond the cap are closed. Zero means a small
	// default.
	MaxIdle int
}

// ConnectionPool multiplexes Connection handles. It is safe for concurrent
// use: Get and the release path triggered by closing a pooled handle may be
// called from any goroutine.
type ConnectionPool struct {
	cfg PoolConfig

	mu   sync.Mutex
	idle chan *pooledConn
}

// NewConnectionPool creates an open pool. No connections are dialed until the
// first Get.
func NewConnectionPool(cfg PoolConfig) *ConnectionPool {
	if cfg.MaxIdle <= 0 {
		cfg.MaxIdle = defaultMaxIdle
	}
	return &ConnectionPool{
		cfg:  cfg,
		idle: make(chan *pooledConn, cfg.MaxIdle),
	}
}

// Get returns an idle connection if one is available, or dials a new one.
// Closing the returned handle gives the connection back to the pool.
func (p *ConnectionPool) Get(ctx context.Context) (Connection, error) {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	if idle == nil {
		return nil, errors.Wrapf(ErrPoolClosed, "pool for %s %q", p.cfg.DriverName, p.cfg.URL)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case c := <-idle:
		if c == nil {
			return nil, ErrPoolClosed
		}
		return c, nil
	default:
		inner, err := p.cfg.Dial(ctx)
		if err != nil {
			return nil, err
		}
		return &pooledConn{Connection: inner, pool: p}, nil
	}
}

func (p *ConnectionPool) release(c *pooledConn) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.idle == nil {
		return c.Connection.Close()
	}
	select {
	case p.idle <- c:
		return nil
	default:
		// pool is full
		return c.Connection.Close()
	}
}

// Close makes the pool unusable and closes every idle connection. It is
// idempotent. Connections currently checked out are closed for real when
// their holders close them.
func (p *ConnectionPool) Close() {
	p.mu.Lock()
	idle := p.idle
	p.idle = nil
	p.mu.Unlock()

	if idle == nil {
		return
	}
	close(idle)
	for c := range idle {
		_ = c.Connection.Close()
	}
}

// pooledConn decorates a Connection so that Close returns it to the pool. It
// deliberately does not implement NativeConnector; the way back to the native
// connection is Unwrap(WrapperPooling, conn), which takes the innermost
// delegate.
type pooledConn struct {
	Connection
	pool *ConnectionPool
}

func (c *pooledConn) Close() error {
	return c.pool.release(c)
}

// innermost walks out of any nested pool decoration to the original,
// undecorated connection.
func (c *pooledConn) innermost() Connection {
	inner := c.Connection
	for {
		pc, ok := inner.(*pooledConn)
		if !ok {
			return inner
		}
		inner = pc.Connection
	}
}
