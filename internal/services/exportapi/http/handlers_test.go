package http_test

import (
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "vitalsum/internal/platform/net/http"
	"vitalsum/internal/services/exportapi/domain"
	exphttp "vitalsum/internal/services/exportapi/http"
	"vitalsum/internal/services/exportapi/repo"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/api/export", func(rr phttp.Router) {
		exphttp.Register(rr, exphttp.Deps{Catalog: repo.NewBuiltin()})
	})
	ts := httptest.NewServer(r.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func getBody(t *testing.T, url string) (int, string, stdhttp.Header) {
	t.Helper()
	resp, err := stdhttp.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(b), resp.Header
}

func TestResolveKnownExports(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		exportID string
		want     int
	}{
		{"demo", 1},
		{"small", 2},
		{"large", 8},
	}
	for _, tc := range cases {
		t.Run(tc.exportID, func(t *testing.T) {
			status, body, _ := getBody(t, ts.URL+"/api/export/"+tc.exportID)
			if status != stdhttp.StatusOK {
				t.Fatalf("status = %d, want 200", status)
			}

			var env struct {
				Data struct {
					DownloadIDs []string `json:"download_ids"`
				} `json:"data"`
			}
			if err := json.Unmarshal([]byte(body), &env); err != nil {
				t.Fatalf("unmarshal envelope: %v", err)
			}
			if len(env.Data.DownloadIDs) != tc.want {
				t.Fatalf("download_ids = %v, want %d entries", env.Data.DownloadIDs, tc.want)
			}
		})
	}
}

func TestResolveUnknownExportIs404(t *testing.T) {
	ts := newTestServer(t)

	status, body, _ := getBody(t, ts.URL+"/api/export/nope")
	if status != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if !strings.Contains(body, "unknown export") {
		t.Fatalf("body = %q, want unknown export message", body)
	}
}

func TestDataServesHeaderThenRows(t *testing.T) {
	ts := newTestServer(t)

	status, body, hdr := getBody(t, ts.URL+"/api/export/demo/demo-001/data")
	if status != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if ct := hdr.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q, want text/plain", ct)
	}

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if lines[0] != domain.Header {
		t.Fatalf("first line = %q, want header", lines[0])
	}
	if len(lines) != 8 {
		t.Fatalf("line count = %d, want header plus 7 rows", len(lines))
	}

	// the demo fixture carries one deliberately short row
	malformed := 0
	for _, ln := range lines[1:] {
		if strings.Count(ln, ",") != 3 {
			malformed++
		}
	}
	if malformed != 1 {
		t.Fatalf("malformed rows = %d, want 1", malformed)
	}
}

func TestDataUnknownDownloadIs404(t *testing.T) {
	ts := newTestServer(t)

	status, _, _ := getBody(t, ts.URL+"/api/export/demo/missing/data")
	if status != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestFixturesAreDeterministic(t *testing.T) {
	a := domain.BuiltinDatasets()
	b := domain.BuiltinDatasets()
	if len(a) != len(b) {
		t.Fatalf("dataset count changed between calls")
	}
	for i := range a {
		if len(a[i].Downloads) != len(b[i].Downloads) {
			t.Fatalf("%s: download count changed", a[i].ExportID)
		}
		for j := range a[i].Downloads {
			if a[i].Downloads[j].Body() != b[i].Downloads[j].Body() {
				t.Fatalf("%s/%s: body not deterministic", a[i].ExportID, a[i].Downloads[j].ID)
			}
		}
	}
}
