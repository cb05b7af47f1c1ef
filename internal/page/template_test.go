package page

import (
	"context"
	"strings"
	"testing"
)

func TestTemplate_Empty(t *testing.T) {
	g := &Templator{}
	out, err := g.Template(context.Background(), Params{Title: "imagebatch", Dir: "/tmp/run"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, `<div class="grid">`) {
		t.Error("missing grid container")
	}
	if strings.Contains(html, "<figure>") {
		t.Error("empty gallery should have no tiles")
	}
	if !strings.Contains(html, "/tmp/run") {
		t.Error("missing output path")
	}
}

func TestTemplate_Items(t *testing.T) {
	g := &Templator{}
	out, err := g.Template(context.Background(), Params{
		Title: "imagebatch",
		Dir:   "/tmp/run",
		Items: []Item{
			{File: "001-a-red-bicycle.png", Prompt: "a red bicycle"},
			{File: "002-a-red-bicycle.png", Prompt: `a "quoted" <prompt>`},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := string(out)
	if strings.Count(html, "<figure>") != 2 {
		t.Errorf("want 2 tiles, html:\n%s", html)
	}
	if !strings.Contains(html, `href="001-a-red-bicycle.png"`) {
		t.Error("tile not linked to image file")
	}
	if !strings.Contains(html, `loading="lazy"`) {
		t.Error("images should be lazy-loaded")
	}
	if strings.Contains(html, "<prompt>") {
		t.Error("prompt text not escaped")
	}
}
