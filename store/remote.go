package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pthm/livedom/lib/encoding"
	"github.com/pthm/livedom/lib/report"
)

// ErrContentType is returned for a response body that is neither
// msgpack nor JSON.
var ErrContentType = errors.New("store: unsupported content type")

// Remote is a Relation backed by an HTTP service. Records missing from
// the table are fetched in the background and start out Loading;
// mutations are applied locally as Saving and relayed to the service.
// Background failures mark the record Error and are reported with
// report.KindFetch.
//
// Responses may be msgpack (application/msgpack) or JSON.
type Remote[K comparable, V any] struct {
	*Relation[K, V]

	endpoint func(id K) string
	client   *http.Client

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type remoteOptions struct {
	client *http.Client
}

// RemoteOption configures a Remote.
type RemoteOption func(*remoteOptions)

// WithClient sets the HTTP client.
func WithClient(c *http.Client) RemoteOption {
	return func(o *remoteOptions) { o.client = c }
}

// WithTimeout uses a client with the given request timeout.
func WithTimeout(d time.Duration) RemoteOption {
	return func(o *remoteOptions) { o.client = &http.Client{Timeout: d} }
}

// NewRemote creates a remote relation. endpoint returns the URL of the
// record for id.
func NewRemote[K comparable, V any](endpoint func(id K) string, opts ...RemoteOption) *Remote[K, V] {
	o := remoteOptions{client: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Remote[K, V]{
		Relation: NewRelation[K, V](),
		endpoint: endpoint,
		client:   o.client,
		ctx:      ctx,
		cancel:   cancel,
	}
	r.created = Loading
	r.changed = Saving
	r.missing = func(id K) {
		r.background("remote.fetch", func(ctx context.Context) error { return r.Fetch(ctx, id) })
	}
	r.mutated = func(id K, m Mutator[V]) {
		r.background("remote.relay", func(ctx context.Context) error { return r.Relay(ctx, id, m) })
	}
	return r
}

func (r *Remote[K, V]) background(op string, fn func(ctx context.Context) error) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := fn(r.ctx); err != nil && r.ctx.Err() == nil {
			report.Report(&report.Error{Op: op, Kind: report.KindFetch, Err: err})
		}
	}()
}

// Wait blocks until every background request has finished.
func (r *Remote[K, V]) Wait() { r.wg.Wait() }

// Close cancels background requests and waits for them.
func (r *Remote[K, V]) Close() {
	r.cancel()
	r.wg.Wait()
}

// Fetch loads the record for id from the service and stores it as
// Ready. On failure an existing record is marked Error.
func (r *Remote[K, V]) Fetch(ctx context.Context, id K) error {
	var v V
	if _, err := r.do(ctx, http.MethodGet, id, nil, &v); err != nil {
		_ = r.SetStatus(id, Error)
		return err
	}
	r.Set(id, v, Ready)
	return nil
}

// Relay sends a mutation of id to the service. Serializable mutators
// are POSTed as msgpack; a MutatorFunc cannot be sent, so the whole
// record is PUT instead. A record in the response replaces the local
// one; otherwise the local record is marked Ready.
func (r *Remote[K, V]) Relay(ctx context.Context, id K, m Mutator[V]) error {
	v, _, ok := r.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}

	method, payload := http.MethodPost, any(m)
	if _, isFunc := m.(MutatorFunc[V]); isFunc {
		method, payload = http.MethodPut, v
	}
	body, err := encoding.Marshal(payload)
	if err != nil {
		_ = r.SetStatus(id, Error)
		return fmt.Errorf("failed to encode %v: %w", id, err)
	}

	var out V
	got, err := r.do(ctx, method, id, body, &out)
	if err != nil {
		_ = r.SetStatus(id, Error)
		return err
	}
	if got {
		r.Set(id, out, Ready)
		return nil
	}
	return r.SetStatus(id, Ready)
}

// do performs a request and decodes the response into out. It reports
// whether the response carried a body.
func (r *Remote[K, V]) do(ctx context.Context, method string, id K, body []byte, out *V) (bool, error) {
	url := r.endpoint(id)

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/msgpack, application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/msgpack")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("fetch failed: %s %s returned %s", method, url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := decode(resp.Header.Get("Content-Type"), data, out); err != nil {
		return false, fmt.Errorf("failed to parse response from %s: %w", url, err)
	}
	return true, nil
}

func decode(contentType string, data []byte, out any) error {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrContentType, contentType)
	}
	switch {
	case mt == "application/msgpack" || mt == "application/x-msgpack" || mt == "application/vnd.msgpack":
		return encoding.Unmarshal(data, out)
	case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return json.Unmarshal(data, out)
	default:
		return fmt.Errorf("%w: %q", ErrContentType, mt)
	}
}
