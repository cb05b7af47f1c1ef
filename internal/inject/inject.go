package inject

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/samber/do"

	"imagebatch/internal/batch"
	"imagebatch/internal/config"
	"imagebatch/internal/feed"
	"imagebatch/internal/image"
	"imagebatch/internal/log"
	"imagebatch/internal/manifest"
	"imagebatch/internal/page"
	"imagebatch/internal/param"
	"imagebatch/internal/prompt"
	"imagebatch/internal/run"
	"imagebatch/internal/store"
)

// Setup wires the full component graph for one run. AWS providers are
// lazy and only resolved when SSM credentials or the S3 mirror are in
// play.
func Setup(ctx context.Context, cfg *config.Config) *do.Injector {
	log := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, &http.Client{})

	do.Provide(injector, func(i *do.Injector) (aws.Config, error) {
		return awsconfig.LoadDefaultConfig(ctx)
	})
	do.Provide(injector, func(i *do.Injector) (*ssm.Client, error) {
		return ssm.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*s3.Client, error) {
		return s3.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})
	do.Provide(injector, func(i *do.Injector) (*cloudfront.Client, error) {
		return cloudfront.NewFromConfig(do.MustInvoke[aws.Config](i)), nil
	})

	do.Provide[param.Fetcher](injector, param.NewParameterStoreFetcher)
	do.ProvideNamed(injector, "openai_api_key", func(i *do.Injector) (string, error) {
		if cfg.APIKeyParam != "" {
			return do.MustInvoke[param.Fetcher](i).Fetch(ctx, cfg.APIKeyParam)
		}
		return cfg.APIKey, nil
	})
	do.ProvideNamedValue(injector, "openai_base_url", cfg.BaseURL)
	do.ProvideNamedValue(injector, "out_dir", cfg.OutDir)
	do.ProvideNamedValue(injector, "s3_bucket", cfg.S3Bucket)
	do.ProvideNamedValue(injector, "distribution", cfg.Distribution)

	do.Provide[image.Generator](injector, image.NewOpenAIGenerator)
	do.Provide(injector, prompt.NewRandomizer)
	do.Provide(injector, store.NewDirUploader)
	do.Provide(injector, store.NewS3Uploader)
	do.Provide[store.Uploader](injector, func(i *do.Injector) (store.Uploader, error) {
		dir := do.MustInvoke[*store.DirUploader](i)
		if cfg.S3Bucket == "" {
			return dir, nil
		}
		return store.MultiUploader{dir, do.MustInvoke[*store.S3Uploader](i)}, nil
	})
	do.Provide[store.Invalidator](injector, store.NewCloudFrontInvalidator)
	do.Provide(injector, batch.NewFetcher)
	do.Provide(injector, batch.NewOrchestrator)
	do.Provide(injector, page.NewTemplator)
	do.Provide(injector, manifest.NewWriter)
	do.Provide(injector, feed.NewGenerator)
	do.Provide(injector, run.NewRunner)

	return injector
}
