package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWrapper(t *testing.T) {
	w, err := ParseWrapper("")
	require.NoError(t, err)
	assert.Equal(t, WrapperNone, w)

	w, err = ParseWrapper("pooling")
	require.NoError(t, err)
	assert.Equal(t, WrapperPooling, w)

	w, err = ParseWrapper("POOLING")
	require.NoError(t, err)
	assert.Equal(t, WrapperPooling, w)

	_, err = ParseWrapper("dbcp2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown wrapper value 'dbcp2'")
}

func TestWrapperString(t *testing.T) {
	assert.Equal(t, "none", WrapperNone.String())
	assert.Equal(t, "pooling", WrapperPooling.String())
}

func TestUnwrapNoneIsIdentityPath(t *testing.T) {
	native := &fakeNative{id: 1}
	conn := &fakeConn{native: native}

	got, err := Unwrap(WrapperNone, conn)
	require.NoError(t, err)
	assert.Same(t, native, got)
}

func TestUnwrapPooledReachesInnermostDelegate(t *testing.T) {
	native := &fakeNative{id: 2}
	pool := NewConnectionPool(PoolConfig{Dial: dialFixed(&fakeConn{native: native})})
	defer pool.Close()

	conn, err := pool.Get(ctxb())
	require.NoError(t, err)

	got, err := Unwrap(WrapperPooling, conn)
	require.NoError(t, err)
	assert.Same(t, native, got)
}

func TestUnwrapMismatchedKindFails(t *testing.T) {
	direct := &fakeConn{native: &fakeNative{}}
	_, err := Unwrap(WrapperPooling, direct)
	assert.Error(t, err)

	pool := NewConnectionPool(PoolConfig{Dial: dialFixed(&fakeConn{native: &fakeNative{}})})
	defer pool.Close()
	pooled, err := pool.Get(ctxb())
	require.NoError(t, err)

	// Pooled handles carry no public native-connection marker, so the
	// identity path must not work on them.
	_, err = Unwrap(WrapperNone, pooled)
	assert.Error(t, err)
}
