// Package batch fans a set of generation requests out over concurrent
// fetches and collects the results that survive.
package batch

import (
	"context"
	"fmt"

	"github.com/samber/do"

	"imagebatch/internal/image"
	"imagebatch/internal/log"
	"imagebatch/internal/slug"
	"imagebatch/internal/store"
)

// Request is one image to produce. Index is 1-based and unique within
// a batch, which keeps filenames collision-free without any locking.
type Request struct {
	Index  int
	Prompt string
	Params image.Params
}

// Result is one successful generation, referencing a file that exists
// in the output directory.
type Result struct {
	Prompt string `json:"prompt"`
	File   string `json:"file"`
}

// Filename builds the deterministic output name for a request:
// zero-padded index, dash, prompt slug truncated to 40 characters.
func Filename(index int, prompt string) string {
	return fmt.Sprintf("%03d-%s.png", index, truncate(slug.Make(prompt), 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Fetcher materializes a single request as a file. A failure is
// reported as absence, never as an error; nothing about one request
// may disturb its siblings.
type Fetcher struct {
	generator image.Generator
	uploader  store.Uploader
}

func NewFetcher(i *do.Injector) (*Fetcher, error) {
	return &Fetcher{
		generator: do.MustInvoke[image.Generator](i),
		uploader:  do.MustInvoke[store.Uploader](i),
	}, nil
}

func (f *Fetcher) Fetch(ctx context.Context, req Request) (Result, bool) {
	log := log.FromContextOrDiscard(ctx).WithGroup("fetch").With(
		"index", req.Index,
		"prompt", truncate(req.Prompt, 40),
	)

	data, err := f.generator.Generate(ctx, req.Params)
	if err != nil {
		log.Error("generation failed", "err", err)
		return Result{}, false
	}

	name := Filename(req.Index, req.Prompt)
	err = f.uploader.Upload(ctx, store.UploadParams{
		Name:        name,
		Data:        data,
		ContentType: "image/png",
		Metadata: map[string]string{
			"prompt": req.Prompt,
			"model":  req.Params.Model,
		},
	})
	if err != nil {
		log.Error("write failed", "err", err)
		return Result{}, false
	}

	return Result{Prompt: req.Prompt, File: name}, true
}
