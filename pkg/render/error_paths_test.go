package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/htmlkit-dev/htmlkit/pkg/dom"
)

func TestRenderNilNode(t *testing.T) {
	r := NewRenderer(RendererConfig{})

	got, err := r.RenderToString(nil)
	if err == nil {
		t.Fatal("RenderToString(nil) error = nil, want RenderError")
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("RenderToString(nil) error = %T, want *RenderError", err)
	}
	if got != "" {
		t.Errorf("RenderToString(nil) = %q, want empty string", got)
	}
}

func TestRenderNilChild(t *testing.T) {
	node := dom.Div()
	node.Children = append(node.Children, nil)

	r := NewRenderer(RendererConfig{})
	_, err := r.RenderToString(node)

	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("RenderToString() error = %v, want *RenderError", err)
	}
	if rerr.Tag != "div" {
		t.Errorf("RenderError.Tag = %q, want %q", rerr.Tag, "div")
	}
	if !strings.Contains(rerr.Reason, "nil child") {
		t.Errorf("RenderError.Reason = %q, want nil child mention", rerr.Reason)
	}
}

func TestRenderSelfReference(t *testing.T) {
	node := dom.Div()
	node.Append(node)

	r := NewRenderer(RendererConfig{})
	_, err := r.RenderToString(node)

	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("RenderToString() error = %v, want *RenderError", err)
	}
	if !strings.Contains(rerr.Reason, "itself") {
		t.Errorf("RenderError.Reason = %q, want self-reference mention", rerr.Reason)
	}
}

func TestRenderEmptyTagElement(t *testing.T) {
	// A zero-value element has no tag; only the factories guarantee one.
	node := &dom.Node{Kind: dom.KindElement}

	r := NewRenderer(RendererConfig{})
	_, err := r.RenderToString(node)

	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("RenderToString() error = %v, want *RenderError", err)
	}
	if !strings.Contains(rerr.Reason, "empty tag") {
		t.Errorf("RenderError.Reason = %q, want empty tag mention", rerr.Reason)
	}
}

func TestRenderToStringAllOrNothing(t *testing.T) {
	node := dom.Div().Append(dom.P().AddText("good"))
	node.Children = append(node.Children, nil)

	r := NewRenderer(RendererConfig{})
	got, err := r.RenderToString(node)
	if err == nil {
		t.Fatal("RenderToString() error = nil, want RenderError")
	}
	if got != "" {
		t.Errorf("RenderToString() = %q, want empty string on error", got)
	}
}

func TestRenderErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *RenderError
		want string
	}{
		{"with tag", &RenderError{Tag: "div", Reason: "nil child"}, "render: <div>: nil child"},
		{"without tag", &RenderError{Reason: "nil node"}, "render: nil node"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
