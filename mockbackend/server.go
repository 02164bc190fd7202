// Package mockbackend provides an in-process imitation of the remote backend
// gateway, for exercising the remote tester without a real deployment.
package mockbackend

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
)

// Gateway is a mock remote backend gateway. Mount its Handler on any HTTP
// server (tests typically use httptest).
type Gateway struct {
	catalogs map[string]string
	username string
	password string
	pings    atomic.Int32
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithCatalog adds a catalog document served at /catalog/{name}.
func WithCatalog(name, content string) Option {
	return func(g *Gateway) { g.catalogs[name] = content }
}

// WithBasicAuth makes the gateway reject requests that do not carry the given
// credentials.
func WithBasicAuth(username, password string) Option {
	return func(g *Gateway) {
		g.username = username
		g.password = password
	}
}

// NewGateway builds a mock gateway.
func NewGateway(options ...Option) *Gateway {
	g := &Gateway{catalogs: make(map[string]string)}
	for _, o := range options {
		o(g)
	}
	return g
}

// Handler returns the gateway's route table.
func (g *Gateway) Handler() http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/ping", g.handlePing).Methods(http.MethodGet)
	router.HandleFunc("/catalog/{name}", g.handleCatalog).Methods(http.MethodGet)
	return router
}

// Pings reports how many ping requests were accepted.
func (g *Gateway) Pings() int { return int(g.pings.Load()) }

func (g *Gateway) authorized(r *http.Request) bool {
	if g.username == "" {
		return true
	}
	user, pass, ok := r.BasicAuth()
	return ok && user == g.username && pass == g.password
}

func (g *Gateway) handlePing(w http.ResponseWriter, r *http.Request) {
	if !g.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	g.pings.Add(1)
	w.WriteHeader(http.StatusNoContent)
}

func (g *Gateway) handleCatalog(w http.ResponseWriter, r *http.Request) {
	if !g.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	content, ok := g.catalogs[mux.Vars(r)["name"]]
	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(content))
}
