package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/kbase/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	doc, err := New("doc-001", "API Auth", "Security", "\n  First line\n\n  Second\n",
		[]string{"Auth", "api"}, "2024-01-15", "2024-10-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ID() != "doc-001" {
		t.Errorf("ID() = %q", doc.ID())
	}
	if doc.Title() != "API Auth" {
		t.Errorf("Title() = %q", doc.Title())
	}
	if doc.Category() != "security" {
		t.Errorf("Category() = %q, want lowercased", doc.Category())
	}
	if got := strings.Join(doc.Tags(), ","); got != "auth,api" {
		t.Errorf("Tags() = %q", got)
	}
	if doc.Created() != "2024-01-15" || doc.Updated() != "2024-10-20" {
		t.Errorf("dates = %q %q", doc.Created(), doc.Updated())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name                              string
		id, title, category, content, upd string
	}{
		{"empty id", "", "t", "c", "body", ""},
		{"bad id", "doc 1", "t", "c", "body", ""},
		{"long id", strings.Repeat("a", 257), "t", "c", "body", ""},
		{"empty title", "doc-1", "  ", "c", "body", ""},
		{"empty category", "doc-1", "t", "", "body", ""},
		{"blank content", "doc-1", "t", "c", "\n\t ", ""},
		{"bad date", "doc-1", "t", "c", "body", "20-10-2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.id, tc.title, tc.category, tc.content, nil, "", tc.upd)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidDocument) {
				t.Errorf("expected ErrInvalidDocument, got %v", err)
			}
		})
	}
}

func TestNew_ContentTooLarge(t *testing.T) {
	_, err := New("doc-1", "t", "c", strings.Repeat("x", MaxContentSize+1), nil, "", "")
	if err == nil {
		t.Fatal("expected error for oversized content")
	}
}

func TestNew_DropsBlankTags(t *testing.T) {
	doc, err := New("doc-1", "t", "c", "body", []string{" Go ", "", "  "}, "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Tags(); len(got) != 1 || got[0] != "go" {
		t.Errorf("Tags() = %v, want [go]", got)
	}
}

func TestTags_ReturnsCopy(t *testing.T) {
	doc := Reconstruct("doc-1", "t", "c", "body", []string{"a", "b"}, "", "")
	tags := doc.Tags()
	tags[0] = "mutated"
	if doc.Tags()[0] != "a" {
		t.Error("Tags mutation leaked into document")
	}
}

func TestTags_Nil(t *testing.T) {
	doc := Reconstruct("doc-1", "t", "c", "body", nil, "", "")
	if doc.Tags() != nil {
		t.Errorf("Tags() = %v, want nil", doc.Tags())
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"\n        Authentication is critical.\n\n        1. Use OAuth\n", "Authentication is critical."},
		{"single", "single"},
		{"  \n\t\n  x  \ny", "x"},
		{"", ""},
	}
	for _, tc := range tests {
		doc := Reconstruct("d", "t", "c", tc.content, nil, "", "")
		if got := doc.Summary(); got != tc.want {
			t.Errorf("Summary(%q) = %q, want %q", tc.content, got, tc.want)
		}
	}
}

func TestBody_Trims(t *testing.T) {
	doc := Reconstruct("d", "t", "c", "\n\n  hello\n  world  \n", nil, "", "")
	if got := doc.Body(); got != "hello\n  world" {
		t.Errorf("Body() = %q", got)
	}
}

func TestCategoryMatches(t *testing.T) {
	doc := Reconstruct("d", "t", "devops", "body", nil, "", "")
	for _, c := range []string{"devops", "DevOps", "DEVOPS"} {
		if !doc.CategoryMatches(c) {
			t.Errorf("CategoryMatches(%q) = false", c)
		}
	}
	if doc.CategoryMatches("dev") {
		t.Error("CategoryMatches must not match a prefix")
	}
}
