package livedom

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/dom/memdom"
	"github.com/pthm/livedom/lib/report"
)

// Host serves an in-memory document over HTTP. It is the headless
// counterpart of running in the browser: the page is rendered on the
// server and events are posted back.
//
// Routes, relative to wherever the host is mounted:
//
//	GET  /            the document as HTML
//	GET  /_snapshot   the document tree as msgpack
//	POST /_event?t=   dispatch the event named by a token
//
// Every element with listeners is rendered with a data-lv-<event>
// attribute holding its token. Event posts must carry the LV-Request
// header.
type Host struct {
	doc       *memdom.Document
	encoder   *Encoder
	mux       *http.ServeMux
	title     string
	head      templ.Component
	sensitive bool

	// OnError is called when a request fails.
	// Customize this to handle errors appropriately for your application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithTitle sets the page title.
func WithTitle(title string) HostOption {
	return func(h *Host) { h.title = title }
}

// WithHead adds markup to the page head, such as the client script.
func WithHead(c templ.Component) HostOption {
	return func(h *Host) { h.head = c }
}

// WithHostDocument serves d instead of the current document.
func WithHostDocument(d *memdom.Document) HostOption {
	return func(h *Host) { h.doc = d }
}

// WithSensitiveTokens encrypts event tokens instead of signing them.
func WithSensitiveTokens() HostOption {
	return func(h *Host) { h.sensitive = true }
}

// NewHost creates a host for the current in-memory document. key signs
// event tokens. Panics if the document is not in-memory or the key is
// unusable.
func NewHost(key []byte, opts ...HostOption) *Host {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("livedom: failed to create encoder: %v", err))
	}

	h := &Host{
		encoder: enc,
		mux:     http.NewServeMux(),
		title:   "livedom",
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.doc == nil {
		d, ok := MemDocument()
		if !ok {
			panic("livedom: Host needs an in-memory document")
		}
		h.doc = d
	}

	// Default error handler
	h.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if IsNotFound(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		if IsTokenError(err) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		report.Report(&report.Error{Op: "host " + r.URL.Path, Kind: report.KindDOM, Err: err})
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}

	h.mux.HandleFunc("GET /{$}", h.handlePage)
	h.mux.HandleFunc("GET /_snapshot", h.handleSnapshot)
	h.mux.HandleFunc("POST /_event", h.handleEvent)
	return h
}

// Document returns the served document.
func (h *Host) Document() *memdom.Document { return h.doc }

// Encoder returns the token encoder.
func (h *Host) Encoder() *Encoder { return h.encoder }

// Token returns the event token rendered for event on c.
func (h *Host) Token(c Component, event string) (string, error) {
	n, ok := c.AsNode().dom.(*memdom.Node)
	if !ok {
		return "", fmt.Errorf("%w: node is not in an in-memory document", ErrInvalidToken)
	}
	return h.encoder.Encode(eventToken{Node: n.ID(), Event: event}, h.sensitive)
}

// Page returns the full HTML page as a templ component.
func (h *Host) Page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html><head><meta charset="utf-8"><title>`+templ.EscapeString(h.title)+`</title>`); err != nil {
			return err
		}
		if h.head != nil {
			if err := h.head.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</head>`); err != nil {
			return err
		}
		if err := h.doc.Component(h.decorate).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</html>`)
		return err
	})
}

// decorate stamps event tokens on elements with listeners.
func (h *Host) decorate(id uint64, events []string) templ.Attributes {
	if len(events) == 0 {
		return nil
	}
	attrs := make(templ.Attributes, len(events))
	for _, ev := range events {
		token, err := h.encoder.Encode(eventToken{Node: id, Event: ev}, h.sensitive)
		if err != nil {
			report.Report(&report.Error{Op: "host.token", Kind: report.KindDOM, Err: err})
			continue
		}
		attrs["data-lv-"+ev] = token
	}
	return attrs
}

// Handler returns the HTTP handler. Mount it with http.StripPrefix when
// serving below the root.
func (h *Host) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require the LV-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsLive(r) {
				http.Error(w, "Forbidden: livedom request required", http.StatusForbidden)
				return
			}
		}

		h.mux.ServeHTTP(w, r)
	})
}

// ServeHTTP implements http.Handler.
func (h *Host) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Handler().ServeHTTP(w, r)
}

func (h *Host) handlePage(w http.ResponseWriter, r *http.Request) {
	if err := Render(w, r, h.Page()); err != nil {
		h.OnError(w, r, err)
	}
}

func (h *Host) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	data, err := memdom.MarshalSnapshot(h.doc.Body().(*memdom.Node))
	if err != nil {
		h.OnError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/msgpack")
	w.Write(data)
}

func (h *Host) handleEvent(w http.ResponseWriter, r *http.Request) {
	var tok eventToken
	if err := h.encoder.Decode(r.URL.Query().Get("t"), h.sensitive, &tok); err != nil {
		h.OnError(w, r, wrapTokenError(err))
		return
	}

	n, ok := h.doc.Lookup(tok.Node)
	if !ok {
		h.OnError(w, r, fmt.Errorf("%w: node %d", ErrNotFound, tok.Node))
		return
	}

	if err := r.ParseForm(); err != nil {
		h.OnError(w, r, wrapTokenError(err))
		return
	}
	memdom.Dispatch(n, dom.Event{Type: tok.Event, Value: r.PostForm.Get("value")})
	w.WriteHeader(http.StatusNoContent)
}
