package feed

import (
	"context"
	"strings"
	"testing"

	"imagebatch/internal/batch"
)

func TestGenerate(t *testing.T) {
	g := &Generator{}
	out, err := g.Generate(context.Background(), "imagebatch", []batch.Result{
		{Prompt: "a red bicycle", File: "001-a-red-bicycle.png"},
		{Prompt: "neon lighting", File: "002-neon-lighting.png"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rss := string(out)
	if !strings.Contains(rss, "<rss") {
		t.Error("output is not rss")
	}
	if !strings.Contains(rss, "a red bicycle") || !strings.Contains(rss, "002-neon-lighting.png") {
		t.Errorf("feed missing items:\n%s", rss)
	}
}

func TestGenerate_Empty(t *testing.T) {
	g := &Generator{}
	out, err := g.Generate(context.Background(), "imagebatch", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "<rss") {
		t.Error("empty feed should still be valid rss")
	}
}
