package livedom

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/pthm/livedom/lib/dom/memdom"
)

// TestResult holds rendered output for assertions.
//
// Bindings update the document asynchronously, so a result can be
// refreshed or polled until the expected markup shows up.
type TestResult struct {
	HTML       string
	StatusCode int
	Headers    http.Header

	node *memdom.Node
}

// NewTestDocument installs a fresh in-memory document as the current
// document and returns it. Anything mounted earlier is disposed.
//
//	func TestCounter(t *testing.T) {
//	    doc := livedom.NewTestDocument()
//	    ...
//	}
func NewTestDocument() *memdom.Document {
	mountMu.Lock()
	if mounted != nil {
		mounted.Dispose()
		mounted = nil
	}
	mountMu.Unlock()

	d := memdom.New()
	SetDocument(d)
	return d
}

// WaitFor polls cond until it returns true or timeout elapses.
func WaitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for {
		if cond() {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(time.Millisecond)
	}
}

// TestRender renders a component built in an in-memory document.
//
//	result, err := livedom.TestRender(counter())
//	if !result.HTMLContains("0") {
//	    t.Fatal("missing initial count")
//	}
func TestRender(c Component) (*TestResult, error) {
	n, ok := c.AsNode().dom.(*memdom.Node)
	if !ok {
		return nil, errors.New("livedom: TestRender needs an in-memory document")
	}
	r := &TestResult{StatusCode: http.StatusOK, Headers: make(http.Header), node: n}
	if err := r.Refresh(); err != nil {
		return nil, err
	}
	return r, nil
}

// Refresh re-renders the component.
func (r *TestResult) Refresh() error {
	if r.node == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := r.node.Render(context.Background(), &buf); err != nil {
		return err
	}
	r.HTML = buf.String()
	return nil
}

// WaitForHTML re-renders until the HTML contains substr or timeout
// elapses.
func (r *TestResult) WaitForHTML(timeout time.Duration, substr string) bool {
	return WaitFor(timeout, func() bool {
		return r.Refresh() == nil && r.HTMLContains(substr)
	})
}

// TestEvent posts an event for c to h the way the client does.
//
//	result, err := livedom.TestEvent(host, button, "click", "")
//	if !result.HasStatus(http.StatusNoContent) {
//	    t.Fatal("event rejected")
//	}
func TestEvent(h *Host, c Component, event, value string) (*TestResult, error) {
	token, err := h.Token(c, event)
	if err != nil {
		return nil, err
	}

	form := url.Values{}
	if value != "" {
		form.Set("value", value)
	}
	req := httptest.NewRequest(http.MethodPost, "/_event?t="+url.QueryEscape(token), strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(RequestHeader, "true")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}, nil
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLContainsAny checks if the HTML contains any of the given substrings.
func (r *TestResult) HTMLContainsAny(substrs ...string) bool {
	for _, s := range substrs {
		if strings.Contains(r.HTML, s) {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}
