package search

import (
	"context"
	"errors"
	"testing"

	domdoc "github.com/kailas-cloud/kbase/internal/domain/document"
	"github.com/kailas-cloud/kbase/internal/domain/search/request"
	"github.com/kailas-cloud/kbase/internal/domain/search/result"
	docrepo "github.com/kailas-cloud/kbase/internal/repository/document"
)

// --- Mocks ---

type mockLister struct {
	docs         []domdoc.Document
	err          error
	lastCategory string
}

func (m *mockLister) ListByCategory(_ context.Context, category string) ([]domdoc.Document, error) {
	m.lastCategory = category
	return m.docs, m.err
}

func sampleService(t *testing.T) *Service {
	t.Helper()
	repo, err := docrepo.Load(context.Background(), docrepo.SampleLoader{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(repo)
}

func makeRequest(t *testing.T, query, category string, k int) *request.Request {
	t.Helper()
	r, err := request.New(query, category, k)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return &r
}

func resultIDs(rs []result.Result) []string {
	out := make([]string, len(rs))
	for i := range rs {
		out[i] = rs[i].ID()
	}
	return out
}

// --- Tests ---

func TestSearch_Kubernetes(t *testing.T) {
	svc := sampleService(t)
	rs, err := svc.Search(context.Background(), makeRequest(t, "kubernetes", "", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 1 || rs[0].ID() != "doc-005" {
		t.Fatalf("got %v, want [doc-005]", resultIDs(rs))
	}
}

func TestSearch_RankedDescending(t *testing.T) {
	svc := sampleService(t)
	rs, err := svc.Search(context.Background(), makeRequest(t, "architecture", "", 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := resultIDs(rs)
	if len(got) != 2 || got[0] != "doc-004" || got[1] != "doc-002" {
		t.Fatalf("got %v, want [doc-004 doc-002]", got)
	}
	if rs[0].Score() != 20 || rs[1].Score() != 8 {
		t.Errorf("scores = %v, %v; want 20, 8", rs[0].Score(), rs[1].Score())
	}
}

func TestSearch_StableTies(t *testing.T) {
	svc := sampleService(t)
	rs, err := svc.Search(context.Background(), makeRequest(t, "eventual consistency", "", 10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := resultIDs(rs)
	want := []string{"doc-002", "doc-003", "doc-004"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tie order = %v, want store order %v", got, want)
			break
		}
		if rs[i].Score() != 2 {
			t.Errorf("score[%d] = %v, want 2", i, rs[i].Score())
		}
	}
}

func TestSearch_NonIncreasingScores(t *testing.T) {
	svc := sampleService(t)
	for _, q := range []string{"e", "a", "event", "pattern", "s"} {
		rs, err := svc.Search(context.Background(), makeRequest(t, q, "", 10))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(rs); i++ {
			if rs[i].Score() > rs[i-1].Score() {
				t.Errorf("query %q: score[%d]=%v > score[%d]=%v", q, i, rs[i].Score(), i-1, rs[i-1].Score())
			}
		}
		for i := range rs {
			if rs[i].Score() <= 0 {
				t.Errorf("query %q: non-positive score kept", q)
			}
		}
	}
}

func TestSearch_MaxResultsBound(t *testing.T) {
	svc := sampleService(t)
	for k := 1; k <= request.MaxResults; k++ {
		rs, err := svc.Search(context.Background(), makeRequest(t, "e", "", k))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rs) > k {
			t.Errorf("max_results=%d returned %d", k, len(rs))
		}
	}
}

func TestSearch_NoMatch(t *testing.T) {
	svc := sampleService(t)
	rs, err := svc.Search(context.Background(), makeRequest(t, "zebra-unicorn-42", "", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 0 {
		t.Errorf("expected empty result, got %v", resultIDs(rs))
	}
}

func TestSearch_CategoryFilter(t *testing.T) {
	svc := sampleService(t)
	rs, err := svc.Search(context.Background(), makeRequest(t, "event", "Architecture", 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range rs {
		d := rs[i].Document()
		if d.Category() != "architecture" {
			t.Errorf("result %s has category %q", d.ID(), d.Category())
		}
	}
	if len(rs) == 0 {
		t.Error("expected architecture matches for 'event'")
	}

	rs, _ = svc.Search(context.Background(), makeRequest(t, "kubernetes", "security", 5))
	if len(rs) != 0 {
		t.Errorf("category filter should eliminate doc-005, got %v", resultIDs(rs))
	}
}

func TestSearch_PassesCategory(t *testing.T) {
	m := &mockLister{}
	svc := New(m)
	if _, err := svc.Search(context.Background(), makeRequest(t, "q", "devops", 5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.lastCategory != "devops" {
		t.Errorf("lastCategory = %q", m.lastCategory)
	}
}

func TestSearch_ListerError(t *testing.T) {
	boom := errors.New("boom")
	svc := New(&mockLister{err: boom})
	_, err := svc.Search(context.Background(), makeRequest(t, "q", "", 5))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSearch_Idempotent(t *testing.T) {
	svc := sampleService(t)
	a, _ := svc.Search(context.Background(), makeRequest(t, "scaling", "", 5))
	b, _ := svc.Search(context.Background(), makeRequest(t, "scaling", "", 5))
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID() != b[i].ID() || a[i].Score() != b[i].Score() {
			t.Errorf("result %d differs", i)
		}
	}
}
