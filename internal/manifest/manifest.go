// Package manifest records the successful outputs of one run for
// downstream tooling.
package manifest

import (
	"context"
	"encoding/json"

	"github.com/samber/do"

	"imagebatch/internal/batch"
	"imagebatch/internal/log"
	"imagebatch/internal/store"
)

const Name = "prompts.json"

type Writer struct {
	uploader store.Uploader
}

func NewWriter(i *do.Injector) (*Writer, error) {
	return &Writer{uploader: do.MustInvoke[store.Uploader](i)}, nil
}

// Write serializes the ordered successful results. Failed requests
// leave no trace here.
func (w *Writer) Write(ctx context.Context, results []batch.Result) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("manifest")
	log.Info("writing manifest", "entries", len(results))

	if results == nil {
		results = []batch.Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return w.uploader.Upload(ctx, store.UploadParams{
		Name:        Name,
		Data:        data,
		ContentType: "application/json",
	})
}
