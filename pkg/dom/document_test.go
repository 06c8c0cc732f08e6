package dom

import "testing"

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument()

	if doc.Node.Kind != KindDocument {
		t.Errorf("Kind = %v, want %v", doc.Node.Kind, KindDocument)
	}
	if doc.Tag() != "html" {
		t.Errorf("Tag() = %q, want %q", doc.Tag(), "html")
	}
	if doc.Lang != "en" {
		t.Errorf("Lang = %q, want %q", doc.Lang, "en")
	}
	if doc.Head == nil || doc.Head.Tag() != "head" {
		t.Errorf("Head = %v, want head element", doc.Head)
	}
	if doc.Body == nil || doc.Body.Tag() != "body" {
		t.Errorf("Body = %v, want body element", doc.Body)
	}
	if len(doc.Node.Children) != 0 {
		t.Errorf("Children = %v, want none before assembly", doc.Node.Children)
	}
}

func TestDocumentAssembleOnce(t *testing.T) {
	doc := NewDocument()
	doc.Node.Preprocess()

	if len(doc.Node.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2 after assembly", len(doc.Node.Children))
	}
	if doc.Node.Children[0] != doc.Head {
		t.Error("Children[0] should be Head")
	}
	if doc.Node.Children[1] != doc.Body {
		t.Error("Children[1] should be Body")
	}
	if lang, _ := doc.Node.Attr("lang"); lang != "en" {
		t.Errorf(`Attr("lang") = %q, want %q`, lang, "en")
	}
}

// Preprocess may run many times over a document's lifetime; the skeleton
// must be appended on the first pass only.
func TestDocumentAssembleGuarded(t *testing.T) {
	doc := NewDocument()
	doc.Node.Preprocess()
	doc.Node.Preprocess()
	doc.Node.Preprocess()

	if len(doc.Node.Children) != 2 {
		t.Errorf("len(Children) = %d, want 2 after repeated preprocessing", len(doc.Node.Children))
	}
}

// buildSkeleton itself appends unconditionally. This pins down the
// duplication the assemble guard exists to prevent: remove the guard
// and every render pass would add another head and body.
func TestBuildSkeletonUnguardedDuplicates(t *testing.T) {
	doc := NewDocument()
	doc.buildSkeleton()
	doc.buildSkeleton()

	if len(doc.Node.Children) != 4 {
		t.Errorf("len(Children) = %d after two unguarded builds, want 4", len(doc.Node.Children))
	}
}

func TestDocumentTitle(t *testing.T) {
	doc := NewDocument()
	doc.Title = "Home"
	doc.Node.Preprocess()

	if len(doc.Head.Children) != 1 {
		t.Fatalf("len(Head.Children) = %d, want 1", len(doc.Head.Children))
	}
	title := doc.Head.Children[0]
	if title.Tag() != "title" {
		t.Errorf("Head.Children[0].Tag() = %q, want %q", title.Tag(), "title")
	}
	if len(title.Children) != 1 || title.Children[0].Text != "Home" {
		t.Errorf("title children = %v, want single text leaf %q", title.Children, "Home")
	}
}

func TestDocumentEmptyTitleOmitted(t *testing.T) {
	doc := NewDocument()
	doc.Node.Preprocess()

	if len(doc.Head.Children) != 0 {
		t.Errorf("Head.Children = %v, want none without a title", doc.Head.Children)
	}
}

func TestDocumentTitleAfterCallerContent(t *testing.T) {
	doc := NewDocument()
	doc.Title = "Docs"
	meta := Meta().SetAttr("charset", "utf-8")
	doc.Head.Append(meta)
	doc.Node.Preprocess()

	if len(doc.Head.Children) != 2 {
		t.Fatalf("len(Head.Children) = %d, want 2", len(doc.Head.Children))
	}
	if doc.Head.Children[0] != meta {
		t.Error("Head.Children[0] should be the caller's meta")
	}
	if doc.Head.Children[1].Tag() != "title" {
		t.Errorf("Head.Children[1].Tag() = %q, want %q", doc.Head.Children[1].Tag(), "title")
	}
}

func TestDocumentLangOverride(t *testing.T) {
	doc := NewDocument()
	doc.Lang = "de"
	doc.Node.Preprocess()

	if lang, _ := doc.Node.Attr("lang"); lang != "de" {
		t.Errorf(`Attr("lang") = %q, want %q`, lang, "de")
	}
}
