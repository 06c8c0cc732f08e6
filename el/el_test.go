package el

import (
	"reflect"
	"testing"

	"github.com/htmlkit-dev/htmlkit/pkg/dom"
)

var (
	_ dom.Node      = Node{}
	_ dom.Kind      = Kind(0)
	_ dom.Attr      = Attr{}
	_ dom.Component = Component(nil)
	_ dom.Document  = Document{}
)

func TestElementConstructorsMatchDOM(t *testing.T) {
	args := []any{
		dom.ID("root"),
		dom.Class("one", "two"),
		"hello",
		dom.Span("child"),
	}

	got := Div(args...)
	want := dom.Div(args...)

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Div() mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestElementNamesMatchDOM(t *testing.T) {
	cases := []struct {
		name string
		got  *Node
		want *dom.Node
	}{
		{"time", Time_("now"), dom.Time_("now")},
		{"map", Map_(), dom.Map_()},
		{"link", Link(dom.Rel("stylesheet")), dom.Link(dom.Rel("stylesheet"))},
	}

	for _, tc := range cases {
		if !reflect.DeepEqual(tc.got, tc.want) {
			t.Fatalf("%s element mismatch:\n got: %#v\nwant: %#v", tc.name, tc.got, tc.want)
		}
	}
}

func TestIsVoidElement(t *testing.T) {
	if !IsVoidElement("br") {
		t.Fatalf("IsVoidElement(\"br\") expected true")
	}
	if IsVoidElement("div") {
		t.Fatalf("IsVoidElement(\"div\") expected false")
	}
}

func TestTextHelpersMatchDOM(t *testing.T) {
	if !reflect.DeepEqual(Text("hi"), dom.Text("hi")) {
		t.Fatalf("Text() mismatch")
	}
	if !reflect.DeepEqual(Textf("%d", 7), dom.Textf("%d", 7)) {
		t.Fatalf("Textf() mismatch")
	}
	if !reflect.DeepEqual(Comment("c"), dom.Comment("c")) {
		t.Fatalf("Comment() mismatch")
	}
}

func TestAttributeHelpersMatchDOM(t *testing.T) {
	cases := []struct {
		name string
		got  Attr
		want dom.Attr
	}{
		{"id", ID("x"), dom.ID("x")},
		{"class", Class("a", "b"), dom.Class("a", "b")},
		{"data", Data("k", "v"), dom.Data("k", "v")},
		{"href", Href("/"), dom.Href("/")},
		{"disabled", Disabled(), dom.Disabled()},
		{"tabindex", TabIndex(2), dom.TabIndex(2)},
	}

	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s attribute mismatch: got %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestGroupingHelpers(t *testing.T) {
	frag := Fragment(Span("a"), Span("b"))
	if frag.Kind != dom.KindFragment || len(frag.Children) != 2 {
		t.Fatalf("Fragment() = {%v, %d children}, want fragment with 2", frag.Kind, len(frag.Children))
	}

	if If(false, Span()) != nil {
		t.Fatalf("If(false) expected nil")
	}
	if Unless(true, Span()) != nil {
		t.Fatalf("Unless(true) expected nil")
	}
	if Nothing() != nil {
		t.Fatalf("Nothing() expected nil")
	}

	items := Range([]int{1, 2}, func(n, _ int) *Node { return Li(Textf("%d", n)) })
	if len(items) != 2 {
		t.Fatalf("Range() returned %d nodes, want 2", len(items))
	}
}

func TestNewValidatesTag(t *testing.T) {
	if _, err := New("div"); err != nil {
		t.Fatalf("New(\"div\") error = %v", err)
	}
	if _, err := New("not a tag"); err == nil {
		t.Fatalf("New with invalid tag expected error")
	}
}

func TestNewDocumentMatchesDOM(t *testing.T) {
	doc := NewDocument()
	if doc.Lang != "en" || doc.Head == nil || doc.Body == nil {
		t.Fatalf("NewDocument() = %+v, want en document with head and body", doc)
	}
}
