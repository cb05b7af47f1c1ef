package feed

import (
	"context"
	"time"

	"github.com/gorilla/feeds"
	"github.com/samber/do"

	"imagebatch/internal/batch"
	"imagebatch/internal/log"
)

const Name = "feed.xml"

// Generator renders an RSS feed of the run's results so galleries can
// be followed from a reader when mirrored somewhere public.
type Generator struct{}

func NewGenerator(i *do.Injector) (*Generator, error) {
	return &Generator{}, nil
}

func (g *Generator) Generate(ctx context.Context, title string, results []batch.Result) ([]byte, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("feed")
	log.Info("generating rss feed", "items", len(results))

	now := time.Now()
	feed := feeds.Feed{
		Title:       title,
		Description: "Batch-generated images",
		Link:        &feeds.Link{Href: "index.html"},
		Updated:     now,
	}
	for _, r := range results {
		feed.Add(&feeds.Item{
			Title:   r.Prompt,
			Link:    &feeds.Link{Href: r.File},
			Created: now,
		})
	}

	rss, err := feed.ToRss()
	return []byte(rss), err
}
