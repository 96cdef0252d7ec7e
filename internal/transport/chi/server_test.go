package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/kailas-cloud/kbase/internal/tools"
	healthuc "github.com/kailas-cloud/kbase/internal/usecase/health"
)

// --- Mocks ---

type mockDispatcher struct {
	gotArgs json.RawMessage
}

func (m *mockDispatcher) Tools() []tools.Definition {
	return []tools.Definition{{Name: "list_categories", InputSchema: &jsonschema.Schema{Type: "object"}}}
}

func (m *mockDispatcher) Call(_ context.Context, name string, args json.RawMessage) tools.Response {
	m.gotArgs = args
	return tools.Response{Content: []tools.TextBlock{{Type: "text", Text: "called " + name}}}
}

type mockHealth struct {
	report healthuc.Report
}

func (m *mockHealth) Check(_ context.Context) healthuc.Report { return m.report }

// --- Helpers ---

func newRouter(d ToolDispatcher, h HealthChecker, mcp http.Handler) http.Handler {
	r := chi.NewRouter()
	NewServer(d, h, mcp, nil).Mount(r)
	return r
}

func okHealth() *mockHealth {
	return &mockHealth{report: healthuc.Report{
		Status: healthuc.Healthy,
		Checks: map[string]healthuc.CheckResult{"documents": healthuc.CheckOK},
	}}
}

// --- Tests ---

func TestListTools(t *testing.T) {
	r := newRouter(&mockDispatcher{}, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/tools", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var body struct {
		Tools []tools.Definition `json:"tools"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Tools) != 1 || body.Tools[0].Name != "list_categories" {
		t.Errorf("tools = %+v", body.Tools)
	}
}

func TestCallTool(t *testing.T) {
	d := &mockDispatcher{}
	r := newRouter(d, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/tools/list_categories", strings.NewReader(`{"format":"json"}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if string(d.gotArgs) != `{"format":"json"}` {
		t.Errorf("dispatcher got %s", d.gotArgs)
	}
	var resp tools.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text() != "called list_categories" {
		t.Errorf("Text() = %q", resp.Text())
	}
}

func TestCallTool_UnknownAnsweredByDispatcher(t *testing.T) {
	d := &mockDispatcher{}
	r := newRouter(d, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/tools/nope", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp tools.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text() != "called nope" {
		t.Errorf("Text() = %q", resp.Text())
	}
}

func TestCallTool_UnknownWithRealDispatcher(t *testing.T) {
	d, err := tools.New(nil, nil, nil, nil)
	if err != nil {
		t.Fatalf("tools.New: %v", err)
	}
	r := newRouter(d, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/tools/nope", strings.NewReader(`{}`)))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var resp tools.Response
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Text() != "Unknown tool: nope" || resp.IsError {
		t.Errorf("resp = %+v", resp)
	}
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		status healthuc.Status
		want   int
	}{
		{healthuc.Healthy, http.StatusOK},
		{healthuc.Degraded, http.StatusOK},
		{healthuc.Unhealthy, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			h := &mockHealth{report: healthuc.Report{Status: tc.status, Checks: map[string]healthuc.CheckResult{}}}
			r := newRouter(&mockDispatcher{}, h, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest("GET", "/health", http.NoBody))

			if rr.Code != tc.want {
				t.Errorf("status = %d, want %d", rr.Code, tc.want)
			}
			var body HealthResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Status != string(tc.status) {
				t.Errorf("body status = %q", body.Status)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newRouter(&mockDispatcher{}, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestMCPMounted(t *testing.T) {
	called := false
	mcp := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})
	r := newRouter(&mockDispatcher{}, okHealth(), mcp)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/mcp", http.NoBody))

	if !called || rr.Code != http.StatusAccepted {
		t.Errorf("mcp handler not reached: called=%v status=%d", called, rr.Code)
	}
}

func TestMCPDisabled(t *testing.T) {
	r := newRouter(&mockDispatcher{}, okHealth(), nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("POST", "/mcp", http.NoBody))
	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}
