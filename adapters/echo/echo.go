// Package livedomecho serves a livedom Host from an Echo application.
//
// Mount the host on an Echo instance or group:
//
//	e := echo.New()
//	host := livedomecho.Mount(e, livedomecho.WithPath("/live/"))
//	livedom.RenderSingle(counter())
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	host := livedomecho.MountGroup(g)
package livedomecho

import (
	"crypto/rand"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/livedom"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key  []byte
	path string
	host []livedom.HostOption
}

// WithKey sets the key that signs event tokens.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the URL path prefix the host is served under.
// Defaults to "/".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithHostOptions passes options through to livedom.NewHost.
func WithHostOptions(opts ...livedom.HostOption) Option {
	return func(o *options) {
		o.host = append(o.host, opts...)
	}
}

// Mount creates a host for the current document and serves it on an
// Echo instance.
//
//	e := echo.New()
//	host := livedomecho.Mount(e)
//
//	// With options:
//	host := livedomecho.Mount(e, livedomecho.WithKey(key))
func Mount(e *echo.Echo, opts ...Option) *livedom.Host {
	host, path := newHost(opts)
	e.Any(path+"*", Handler(host))
	return host
}

// MountGroup creates a host and serves it on an Echo group, so event
// posts pass through the group's middleware (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	host := livedomecho.MountGroup(g)
func MountGroup(g *echo.Group, opts ...Option) *livedom.Host {
	host, path := newHost(opts)
	g.Any(path+"*", Handler(host))
	return host
}

func newHost(opts []Option) (*livedom.Host, string) {
	o := &options{path: "/"}
	for _, opt := range opts {
		opt(o)
	}
	if o.path == "" || o.path[len(o.path)-1] != '/' {
		o.path += "/"
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("livedomecho: failed to generate random key: %v", err))
		}
	}

	return livedom.NewHost(key, o.host...), o.path
}

// Handler adapts a host to an Echo route ending in "*". The wildcard
// becomes the path the host sees.
func Handler(host *livedom.Host) echo.HandlerFunc {
	h := host.Handler()
	return func(c echo.Context) error {
		r := c.Request()
		u := *r.URL
		u.Path = "/" + c.Param("*")
		u.RawPath = ""

		req := new(http.Request)
		*req = *r
		req.URL = &u
		h.ServeHTTP(c.Response(), req)
		return nil
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return livedomecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
