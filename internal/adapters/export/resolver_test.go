package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "vitalsum/internal/platform/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Options{BaseURL: srv.URL + "/api"})
}

func TestResolve_OK(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/export/demo" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"download_ids": ["d1", "d2", "d3"]}}`))
	})

	desc, err := c.Resolve(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if desc.ExportID != "demo" {
		t.Fatalf("ExportID = %q", desc.ExportID)
	}
	if len(desc.DownloadIDs) != 3 || desc.DownloadIDs[0] != "d1" || desc.DownloadIDs[2] != "d3" {
		t.Fatalf("DownloadIDs = %v, order must be preserved", desc.DownloadIDs)
	}
}

func TestResolve_EmptyDownloadList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"download_ids": []}}`))
	})
	desc, err := c.Resolve(context.Background(), "demo")
	if err != nil {
		t.Fatalf("empty list is valid, got error: %v", err)
	}
	if len(desc.DownloadIDs) != 0 {
		t.Fatalf("DownloadIDs = %v, want empty", desc.DownloadIDs)
	}
}

func TestResolve_InvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})
	_, err := c.Resolve(context.Background(), "demo")
	if !perr.IsCode(err, perr.ErrorCodeMalformedResponse) {
		t.Fatalf("want MalformedResponse, got %v (code %v)", err, perr.CodeOf(err))
	}
}

func TestResolve_MissingKeyPath(t *testing.T) {
	cases := map[string]string{
		"no data key":         `{"meta": {}}`,
		"no download_ids key": `{"data": {"other": 1}}`,
		"data not an object":  `{"data": 42}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := c.Resolve(context.Background(), "demo")
			if !perr.IsCode(err, perr.ErrorCodeMalformedResponse) {
				t.Fatalf("want MalformedResponse, got %v (code %v)", err, perr.CodeOf(err))
			}
		})
	}
}

func TestResolve_BadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	})
	_, err := c.Resolve(context.Background(), "huge")
	if !perr.IsCode(err, perr.ErrorCodeMalformedResponse) {
		t.Fatalf("want MalformedResponse, got %v (code %v)", err, perr.CodeOf(err))
	}
}

func TestResolve_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close() // nothing listening anymore

	c := NewClient(Options{BaseURL: base})
	_, err := c.Resolve(context.Background(), "demo")
	if !perr.IsCode(err, perr.ErrorCodeNetwork) {
		t.Fatalf("want Network, got %v (code %v)", err, perr.CodeOf(err))
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Options{})
	if c.BaseURL() != "http://localhost:8000/api" {
		t.Fatalf("default BaseURL = %q", c.BaseURL())
	}
}
