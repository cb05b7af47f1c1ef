package prompt

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/samber/do"
	"github.com/samber/lo"

	"imagebatch/internal/log"
)

var subjects = []string{
	"a lobster astronaut",
	"a brutalist lighthouse",
	"a cozy reading nook",
	"a cyberpunk noodle shop",
	"a Vienna street at dusk",
	"a minimalist product photo",
	"a surreal underwater library",
	"a futuristic solarpunk city",
	"a retro vaporwave landscape",
}

var styles = []string{
	"ultra-detailed studio photo",
	"35mm film still",
	"isometric illustration",
	"editorial photography",
	"soft watercolor",
	"architectural render",
	"high-contrast monochrome",
	"low-poly 3d render",
	"oil painting",
}

var lighting = []string{
	"golden hour",
	"overcast soft light",
	"neon lighting",
	"dramatic rim light",
	"candlelight",
	"foggy atmosphere",
	"bioluminescent glow",
}

type Randomizer struct {
	rnd *rand.Rand
}

func NewRandomizer(i *do.Injector) (*Randomizer, error) {
	return &Randomizer{rnd: rand.New(rand.NewSource(time.Now().UTC().UnixNano()))}, nil
}

// Sequence returns exactly count prompts. A non-empty fixed prompt is
// repeated count times; otherwise each prompt is assembled from one
// random style, subject, and lighting entry.
func (r *Randomizer) Sequence(ctx context.Context, count int, fixed string) []string {
	log := log.FromContextOrDiscard(ctx).WithGroup("randomizer")
	log.Info("building prompts", "count", count, "fixed", fixed != "")

	if fixed != "" {
		return lo.Times(count, func(_ int) string { return fixed })
	}
	return lo.Times(count, func(_ int) string {
		return fmt.Sprintf("%s of %s, %s",
			styles[r.rnd.Intn(len(styles))],
			subjects[r.rnd.Intn(len(subjects))],
			lighting[r.rnd.Intn(len(lighting))])
	})
}
