package mockbackend

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayPing(t *testing.T) {
	g := NewGateway()
	server := httptest.NewServer(g.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, g.Pings())
}

func TestGatewayCatalog(t *testing.T) {
	g := NewGateway(WithCatalog("foodmart", "<catalog/>"))
	server := httptest.NewServer(g.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/catalog/foodmart")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<catalog/>", string(body))

	resp, err = http.Get(server.URL + "/catalog/unknown")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGatewayBasicAuth(t *testing.T) {
	g := NewGateway(WithBasicAuth("user", "secret"))
	server := httptest.NewServer(g.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + "/ping")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/ping", nil)
	req.SetBasicAuth("user", "secret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}
