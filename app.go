package livedom

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pthm/livedom/lib/dom"
)

// Page builds the root component for a route.
type Page func() Component

type route struct {
	path string
	page Page
}

// App maps routes to pages and mounts one at a time into the document
// body.
//
//	app := livedom.NewApp()
//	app.Push("home", homePage).Push("about", aboutPage).Start("home")
//	if err := app.Render(); err != nil {
//	    log.Fatal(err)
//	}
type App struct {
	mu      sync.Mutex
	routes  []route
	start   string
	current string
}

// NewApp creates an App with no routes.
func NewApp() *App {
	return &App{}
}

// Push registers a page. The most recently pushed route becomes the
// start route unless Start is called. Panics if route is already taken.
func (a *App) Push(path string, page Page) *App {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.routes {
		if r.path == path {
			panic(fmt.Sprintf("livedom: duplicate route %q", path))
		}
	}
	a.routes = append(a.routes, route{path: path, page: page})
	a.start = path
	return a
}

// Start selects the route Render mounts.
func (a *App) Start(path string) *App {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.start = path
	return a
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.routes))
	for i, r := range a.routes {
		out[i] = r.path
	}
	return out
}

// Current returns the route mounted by the last successful Render.
func (a *App) Current() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Render builds the start route's page and mounts it, replacing and
// disposing whatever was mounted before.
func (a *App) Render() error {
	a.mu.Lock()
	var page Page
	path := a.start
	for _, r := range a.routes {
		if r.path == path {
			page = r.page
			break
		}
	}
	a.mu.Unlock()

	if page == nil {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}
	if err := mount(page()); err != nil {
		return err
	}

	a.mu.Lock()
	a.current = path
	a.mu.Unlock()
	return nil
}

// Navigate makes path the start route and renders it.
func (a *App) Navigate(path string) error {
	a.mu.Lock()
	prev := a.start
	a.start = path
	a.mu.Unlock()

	if err := a.Render(); err != nil {
		a.mu.Lock()
		a.start = prev
		a.mu.Unlock()
		return err
	}
	return nil
}

// RenderSingle mounts c without routing.
func RenderSingle(c Component) error {
	return mount(c)
}

var (
	mountMu sync.Mutex
	mounted *Node
)

// mount puts c where the previously mounted root was and disposes that
// root. Body content the package did not mount is left in place; a new
// root goes in front of it.
func mount(c Component) error {
	var n *Node
	if c != nil {
		n = c.AsNode()
	}
	if n == nil {
		return ErrNilComponent
	}

	mountMu.Lock()
	defer mountMu.Unlock()

	body := Document().Body()
	err := dom.ErrNotChild
	if mounted != nil && mounted != n {
		err = body.ReplaceChild(n.dom, mounted.dom)
	}
	if errors.Is(err, dom.ErrNotChild) {
		err = body.InsertBefore(n.dom, body.FirstChild())
	}
	if err != nil {
		n.Dispose()
		return fmt.Errorf("livedom: mount: %w", err)
	}

	if prev := mounted; prev != nil && prev != n {
		prev.Dispose()
	}
	mounted = n
	return nil
}

// Mounted returns the node currently mounted in the body, if any.
func Mounted() *Node {
	mountMu.Lock()
	defer mountMu.Unlock()
	return mounted
}
