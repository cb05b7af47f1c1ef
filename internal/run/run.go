package run

import (
	"context"
	"os"

	"github.com/samber/do"
	"github.com/samber/lo"

	"imagebatch/internal/batch"
	"imagebatch/internal/config"
	"imagebatch/internal/feed"
	"imagebatch/internal/image"
	"imagebatch/internal/log"
	"imagebatch/internal/manifest"
	"imagebatch/internal/page"
	"imagebatch/internal/prompt"
	"imagebatch/internal/store"
)

const galleryName = "index.html"

// Runner drives one run end to end: prompts, concurrent generation,
// then the manifest, gallery, and feed artifacts.
type Runner struct {
	cfg          *config.Config
	randomizer   *prompt.Randomizer
	orchestrator *batch.Orchestrator
	templator    *page.Templator
	manifest     *manifest.Writer
	feed         *feed.Generator
	uploader     store.Uploader
	invalidator  store.Invalidator
}

func NewRunner(i *do.Injector) (*Runner, error) {
	r := &Runner{
		cfg:          do.MustInvoke[*config.Config](i),
		randomizer:   do.MustInvoke[*prompt.Randomizer](i),
		orchestrator: do.MustInvoke[*batch.Orchestrator](i),
		templator:    do.MustInvoke[*page.Templator](i),
		manifest:     do.MustInvoke[*manifest.Writer](i),
		feed:         do.MustInvoke[*feed.Generator](i),
		uploader:     do.MustInvoke[store.Uploader](i),
	}
	if r.cfg.Distribution != "" {
		r.invalidator = do.MustInvoke[store.Invalidator](i)
	}
	return r, nil
}

func (r *Runner) Run(ctx context.Context) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("run")

	if err := os.MkdirAll(r.cfg.OutDir, 0755); err != nil {
		return err
	}
	log.Info("output directory ready", "dir", r.cfg.OutDir)

	prompts := r.randomizer.Sequence(ctx, r.cfg.Count, r.cfg.Prompt)
	reqs := lo.Map(prompts, func(p string, i int) batch.Request {
		return batch.Request{
			Index:  i + 1,
			Prompt: p,
			Params: image.Params{
				Model:   r.cfg.Model,
				Prompt:  p,
				Size:    r.cfg.Size,
				Quality: r.cfg.Quality,
			},
		}
	})

	results := r.orchestrator.Run(ctx, reqs)

	if err := r.manifest.Write(ctx, results); err != nil {
		return err
	}

	html, err := r.templator.Template(ctx, page.Params{
		Title: "imagebatch",
		Dir:   r.cfg.OutDir,
		Items: lo.Map(results, func(res batch.Result, _ int) page.Item {
			return page.Item{File: res.File, Prompt: res.Prompt}
		}),
	})
	if err != nil {
		return err
	}
	if err := r.uploader.Upload(ctx, store.UploadParams{
		Name:        galleryName,
		Data:        html,
		ContentType: "text/html",
	}); err != nil {
		return err
	}

	rss, err := r.feed.Generate(ctx, "imagebatch", results)
	if err != nil {
		return err
	}
	if err := r.uploader.Upload(ctx, store.UploadParams{
		Name:        feed.Name,
		Data:        rss,
		ContentType: "application/rss+xml",
	}); err != nil {
		return err
	}

	if r.invalidator != nil {
		paths := lo.Map(results, func(res batch.Result, _ int) string { return "/" + res.File })
		paths = append(paths, "/"+manifest.Name, "/"+galleryName, "/"+feed.Name)
		if err := r.invalidator.Invalidate(ctx, paths); err != nil {
			return err
		}
	}

	log.Info("run complete",
		"requested", len(reqs),
		"succeeded", len(results),
		"gallery", r.cfg.OutDir+"/"+galleryName,
	)
	return nil
}
