package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/samber/do"

	"imagebatch/internal/log"
)

type UploadParams struct {
	Name        string
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

type Uploader interface {
	Upload(context.Context, UploadParams) error
}

// DirUploader writes artifacts into the run's output directory.
type DirUploader struct {
	Dir string
}

func NewDirUploader(i *do.Injector) (*DirUploader, error) {
	return &DirUploader{Dir: do.MustInvokeNamed[string](i, "out_dir")}, nil
}

func (u *DirUploader) Upload(ctx context.Context, params UploadParams) error {
	log := log.FromContextOrDiscard(ctx).WithGroup("dir")
	log.Info("writing", "file", params.Name, "bytes", len(params.Data))
	return os.WriteFile(filepath.Join(u.Dir, params.Name), params.Data, 0644)
}

// MultiUploader fans one artifact out to every wrapped uploader.
type MultiUploader []Uploader

func (m MultiUploader) Upload(ctx context.Context, params UploadParams) error {
	for _, u := range m {
		if err := u.Upload(ctx, params); err != nil {
			return err
		}
	}
	return nil
}
