package prompt

import (
	"context"
	"math/rand"
	"strings"
	"testing"
)

func newTestRandomizer() *Randomizer {
	return &Randomizer{rnd: rand.New(rand.NewSource(1))}
}

func TestSequence_RandomCounts(t *testing.T) {
	r := newTestRandomizer()
	ctx := context.Background()

	for n := 1; n <= 50; n++ {
		prompts := r.Sequence(ctx, n, "")
		if len(prompts) != n {
			t.Fatalf("Sequence(%d) returned %d prompts", n, len(prompts))
		}
		for i, p := range prompts {
			if p == "" {
				t.Fatalf("Sequence(%d) prompt %d is empty", n, i)
			}
			if !strings.Contains(p, " of ") || !strings.Contains(p, ", ") {
				t.Errorf("prompt %q does not match \"<style> of <subject>, <lighting>\"", p)
			}
		}
	}
}

func TestSequence_FixedPrompt(t *testing.T) {
	r := newTestRandomizer()
	prompts := r.Sequence(context.Background(), 3, "a red bicycle")

	if len(prompts) != 3 {
		t.Fatalf("got %d prompts, want 3", len(prompts))
	}
	for i, p := range prompts {
		if p != "a red bicycle" {
			t.Errorf("prompt %d = %q, want %q", i, p, "a red bicycle")
		}
	}
}
