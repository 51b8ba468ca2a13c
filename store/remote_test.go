package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pthm/livedom/lib/encoding"
	"github.com/pthm/livedom/lib/report"
)

// rename is a serializable mutator.
type rename struct {
	Title string `msgpack:"title"`
}

func (m rename) Mutate(t todo) todo {
	t.Title = m.Title
	return t
}

type request struct {
	Method      string
	Path        string
	ContentType string
	Body        []byte
}

type todoServer struct {
	*httptest.Server
	mu       sync.Mutex
	requests []request
}

func newTodoServer(t *testing.T) *todoServer {
	s := &todoServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos/1", func(w http.ResponseWriter, r *http.Request) {
		data, _ := encoding.Marshal(todo{Title: "from msgpack"})
		w.Header().Set("Content-Type", "application/msgpack")
		w.Write(data)
	})
	mux.HandleFunc("GET /todos/2", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(todo{Title: "from json", Done: true})
	})
	mux.HandleFunc("GET /todos/3", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /todos/4", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		io.WriteString(w, "title: nope")
	})
	mux.HandleFunc("PUT /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := s.record(r)
		var m rename
		if err := encoding.Unmarshal(body, &m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(todo{Title: strings.ToUpper(m.Title)})
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *todoServer) record(r *http.Request) []byte {
	body, _ := io.ReadAll(r.Body)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	return body
}

func (s *todoServer) remote() *Remote[string, todo] {
	return NewRemote[string, todo](func(id string) string { return s.URL + "/todos/" + id })
}

type fetchErrors struct {
	mu     sync.Mutex
	errors []*report.Error
}

func (h *fetchErrors) HandleError(err *report.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err)
}

func (h *fetchErrors) HandlePanic(*report.PanicError) {}

func TestRemoteGetFetches(t *testing.T) {
	srv := newTodoServer(t)
	r := srv.remote()
	defer r.Close()

	v, s := r.Get("1", todo{Title: "placeholder"})
	if v.Title != "placeholder" || s != Loading {
		t.Fatalf("Get() = %+v, %s, want placeholder, loading", v, s)
	}
	r.Get("2", todo{})
	r.Wait()

	for id, want := range map[string]todo{
		"1": {Title: "from msgpack"},
		"2": {Title: "from json", Done: true},
	} {
		got, s, ok := r.Lookup(id)
		if !ok || s != Ready {
			t.Errorf("%s: status = %s, ok = %v", id, s, ok)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: record (-want +got):\n%s", id, diff)
		}
	}

	// Known keys are served locally.
	if _, s := r.Get("1", todo{}); s != Ready {
		t.Errorf("second Get status = %s", s)
	}
}

func TestRemoteFetchFailure(t *testing.T) {
	h := &fetchErrors{}
	report.SetHandler(h)
	defer report.SetHandler(nil)

	srv := newTodoServer(t)
	r := srv.remote()
	defer r.Close()

	r.Get("3", todo{})
	r.Get("4", todo{})
	r.Wait()

	for _, id := range []string{"3", "4"} {
		if _, s, _ := r.Lookup(id); s != Error {
			t.Errorf("%s: status = %s, want error", id, s)
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.errors) != 2 {
		t.Fatalf("reported %d errors, want 2", len(h.errors))
	}
	var sawContentType bool
	for _, err := range h.errors {
		if err.Kind != report.KindFetch || err.Op != "remote.fetch" {
			t.Errorf("reported %v", err)
		}
		if errors.Is(err, ErrContentType) {
			sawContentType = true
		}
	}
	if !sawContentType {
		t.Error("text/plain response should fail with ErrContentType")
	}
}

func TestRemoteRelayFunc(t *testing.T) {
	srv := newTodoServer(t)
	r := srv.remote()
	defer r.Close()

	r.Insert("7", todo{Title: "walk"})
	if err := r.Mutate("7", toggle); err != nil {
		t.Fatal(err)
	}
	if _, s, _ := r.Lookup("7"); s != Saving && s != Ready {
		t.Errorf("status right after Mutate = %s", s)
	}
	r.Wait()

	got, s, _ := r.Lookup("7")
	if s != Ready || !got.Done {
		t.Errorf("after relay = %+v, %s", got, s)
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if len(srv.requests) != 1 {
		t.Fatalf("server saw %d requests", len(srv.requests))
	}
	req := srv.requests[0]
	if req.Method != http.MethodPut || req.Path != "/todos/7" || req.ContentType != "application/msgpack" {
		t.Errorf("request = %s %s (%s)", req.Method, req.Path, req.ContentType)
	}
	var sent todo
	if err := encoding.Unmarshal(req.Body, &sent); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(todo{Title: "walk", Done: true}, sent); diff != "" {
		t.Errorf("sent record (-want +got):\n%s", diff)
	}
}

func TestRemoteRelayMutator(t *testing.T) {
	srv := newTodoServer(t)
	r := srv.remote()
	defer r.Close()

	r.Insert("8", todo{Title: "call"})
	if err := r.Relay(context.Background(), "8", rename{Title: "call mum"}); err != nil {
		t.Fatalf("Relay failed: %v", err)
	}

	got, s, _ := r.Lookup("8")
	if s != Ready || got.Title != "CALL MUM" {
		t.Errorf("after relay = %+v, %s", got, s)
	}
	srv.mu.Lock()
	defer srv.mu.Unlock()
	if len(srv.requests) != 1 || srv.requests[0].Method != http.MethodPost {
		t.Errorf("requests = %+v", srv.requests)
	}
}

func TestRemoteRelayMissing(t *testing.T) {
	srv := newTodoServer(t)
	r := srv.remote()
	defer r.Close()

	if err := r.Relay(context.Background(), "none", toggle); !IsNotFound(err) {
		t.Errorf("Relay(missing) = %v", err)
	}
}

func TestDecode(t *testing.T) {
	var v todo
	if err := decode("application/problem+json", []byte(`{"title":"x"}`), &v); err != nil || v.Title != "x" {
		t.Errorf("+json decode = %+v, %v", v, err)
	}
	if err := decode("", []byte("x"), &v); !errors.Is(err, ErrContentType) {
		t.Errorf("empty content type = %v", err)
	}
	if err := decode("application/msgpack", []byte{0xc1}, &v); !errors.Is(err, encoding.ErrInvalidFormat) {
		t.Errorf("bad msgpack = %v", err)
	}
}
